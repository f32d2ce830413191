// Package bushfire estimates the radiant heat flux received by a structure
// exposed to a bushfire flame front, after Midgley & Tan, "A methodology for
// determining minimum separation distance between a structure and bushfire
// hazard" (2006). The kernel composes a worst case geometric view factor,
// an atmospheric transmittance and the flame emissive power into a design
// heat flux for a given separation distance.
package bushfire

import (
	"fmt"
	"math"
	"sync"
)

// Methodology constants shared by every model. The Default values seed the
// corresponding Model fields and may be overridden per instance before the
// first evaluation.
const (
	// HeatOfCombustion is the heat of combustion of fine fuels in kJ/kg.
	HeatOfCombustion = 18600.0
	// DefaultFlameWidth is the flame front width in metres.
	DefaultFlameWidth = 100.0
	// DefaultFlameTemperature is the flame temperature in kelvin.
	DefaultFlameTemperature = 1200.0
	// DefaultEmissivity is the flame emissivity.
	DefaultEmissivity = 0.95
	// DefaultSigma is the Stefan-Boltzmann constant in kW/(m²·K⁴).
	DefaultSigma = 5.67e-11
	// DefaultAmbientTemperature is the ambient air temperature in kelvin.
	DefaultAmbientTemperature = 308.0
	// DefaultRelativeHumidity is the ambient relative humidity as a fraction.
	DefaultRelativeHumidity = 0.25
)

// Site describes the terrain and exposure conditions of an assessment.
type Site struct {
	// Slope is the effective site slope under the fire run in radians,
	// 0 <= Slope < pi.
	Slope float64
	// ReceiverHeight is the height of the receiving element above local
	// ground in metres.
	ReceiverHeight float64
	// FDI is the design fire danger index.
	FDI float64
}

// Vegetation models the flame behaviour of a fuel structure. Implementations
// are provided by package veg; any type satisfying the contract can drive a
// Model.
type Vegetation interface {
	// RateOfSpread returns the forward rate of spread of the fire front in
	// km/h for the given site conditions.
	RateOfSpread(site Site) float64
	// FlameLength returns the flame length in metres given the site
	// conditions and the rate of spread already derived for them.
	FlameLength(site Site, rateOfSpread float64) float64
}

// Model evaluates the radiant heat flux methodology for one vegetation
// class on one site. The flame geometry derived from them is computed once
// on first use and reused by every subsequent evaluation, so a Model is
// cheap to query repeatedly and safe for concurrent use as long as the
// exported fields are not mutated after the first evaluation.
type Model struct {
	// FlameWidth is the flame front width in metres.
	FlameWidth float64
	// FlameTemperature is the flame temperature in kelvin.
	FlameTemperature float64
	// Emissivity is the flame emissivity.
	Emissivity float64
	// Sigma is the Stefan-Boltzmann constant in kW/(m²·K⁴).
	Sigma float64
	// AmbientTemperature is the ambient air temperature in kelvin.
	AmbientTemperature float64
	// RelativeHumidity is the ambient relative humidity as a fraction.
	RelativeHumidity float64

	veg  Vegetation
	site Site

	once         sync.Once
	rateOfSpread float64
	flameLength  float64
}

// NewModel returns a Model for the vegetation class on the given site. The
// returned model carries the default flame and atmosphere constants;
// override the exported fields before the first evaluation to depart from
// them.
//
// NewModel returns ErrInvalidParameter if v is nil, if the slope is outside
// [0,pi), if the receiver height is negative or if any site value is not
// finite.
func NewModel(v Vegetation, site Site) (*Model, error) {
	if v == nil {
		return nil, fmt.Errorf("nil vegetation: %w", ErrInvalidParameter)
	}
	if !finite(site.Slope) || site.Slope < 0 || site.Slope >= math.Pi {
		return nil, fmt.Errorf("slope %g rad outside [0,pi): %w", site.Slope, ErrInvalidParameter)
	}
	if !finite(site.ReceiverHeight) || site.ReceiverHeight < 0 {
		return nil, fmt.Errorf("receiver height %g m: %w", site.ReceiverHeight, ErrInvalidParameter)
	}
	if !finite(site.FDI) {
		return nil, fmt.Errorf("fire danger index %g: %w", site.FDI, ErrInvalidParameter)
	}
	return &Model{
		FlameWidth:         DefaultFlameWidth,
		FlameTemperature:   DefaultFlameTemperature,
		Emissivity:         DefaultEmissivity,
		Sigma:              DefaultSigma,
		AmbientTemperature: DefaultAmbientTemperature,
		RelativeHumidity:   DefaultRelativeHumidity,
		veg:                v,
		site:               site,
	}, nil
}

// derive computes the flame geometry. Called exactly once per model.
func (m *Model) derive() {
	m.rateOfSpread = m.veg.RateOfSpread(m.site)
	m.flameLength = m.veg.FlameLength(m.site, m.rateOfSpread)
}

// RateOfSpread returns the forward rate of spread in km/h for the model's
// vegetation and site. The underlying formula is evaluated once and cached.
func (m *Model) RateOfSpread() float64 {
	m.once.Do(m.derive)
	return m.rateOfSpread
}

// FlameLength returns the flame length in metres for the model's vegetation
// and site. The underlying formula is evaluated once and cached.
func (m *Model) FlameLength() float64 {
	m.once.Do(m.derive)
	return m.flameLength
}

// Site returns the site conditions the model was built for.
func (m *Model) Site() Site {
	return m.site
}
