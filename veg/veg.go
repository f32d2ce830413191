// Package veg provides the vegetation classifications of the bushfire
// radiant heat methodology. Each classification carries the empirical fuel
// loads and flame behaviour correlations for its fuel structure and plugs
// into a bushfire.Model.
package veg

import (
	"fmt"
	"math"

	"github.com/hazmath/bushfire"
)

// ForestWoodland models the flame behaviour of forest and woodland fuel
// structures. Rate of spread follows the McArthur forest fire behaviour
// correlation, flame length the corresponding flame height fit.
type ForestWoodland struct {
	// OverallFuelLoad is the total fine fuel load in tonnes per hectare.
	OverallFuelLoad float64
	// SurfaceFuelLoad is the surface fine fuel load in tonnes per
	// hectare.
	SurfaceFuelLoad float64
}

var _ bushfire.Vegetation = ForestWoodland{}

// Forest returns the forest classification: tall eucalypt fuel structures
// with an overall fine fuel load of 35 t/ha of which 25 t/ha is surface
// fuel.
func Forest() ForestWoodland {
	return ForestWoodland{OverallFuelLoad: 35, SurfaceFuelLoad: 25}
}

// Woodland returns the woodland classification: open canopy fuel
// structures with an overall fine fuel load of 25 t/ha of which 15 t/ha is
// surface fuel.
func Woodland() ForestWoodland {
	return ForestWoodland{OverallFuelLoad: 25, SurfaceFuelLoad: 15}
}

// NewForestWoodland returns a forest or woodland flame model with custom
// fuel loads in tonnes per hectare. It returns an error wrapping
// bushfire.ErrInvalidParameter if either load is negative or not finite.
func NewForestWoodland(overallFuelLoad, surfaceFuelLoad float64) (ForestWoodland, error) {
	if math.IsNaN(overallFuelLoad) || math.IsInf(overallFuelLoad, 0) || overallFuelLoad < 0 {
		return ForestWoodland{}, fmt.Errorf("overall fuel load %g t/ha: %w", overallFuelLoad, bushfire.ErrInvalidParameter)
	}
	if math.IsNaN(surfaceFuelLoad) || math.IsInf(surfaceFuelLoad, 0) || surfaceFuelLoad < 0 {
		return ForestWoodland{}, fmt.Errorf("surface fuel load %g t/ha: %w", surfaceFuelLoad, bushfire.ErrInvalidParameter)
	}
	return ForestWoodland{OverallFuelLoad: overallFuelLoad, SurfaceFuelLoad: surfaceFuelLoad}, nil
}

// RateOfSpread implements bushfire.Vegetation. The forward rate of spread
// in km/h grows linearly with the fire danger index and surface fuel load
// and exponentially with site slope.
func (v ForestWoodland) RateOfSpread(site bushfire.Site) float64 {
	return 0.0012 * site.FDI * v.SurfaceFuelLoad * math.Exp(0.069*site.Slope)
}

// FlameLength implements bushfire.Vegetation: half the sum of the spread
// driven flame height and the fuel load contribution.
func (v ForestWoodland) FlameLength(site bushfire.Site, rateOfSpread float64) float64 {
	return (13*rateOfSpread + 0.24*v.OverallFuelLoad) / 2
}
