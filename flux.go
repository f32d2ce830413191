package bushfire

import (
	"fmt"

	"github.com/hazmath/bushfire/internal/opt"
)

// Separation search parameters.
const (
	// sepTol is the absolute tolerance on a minimum separation distance
	// in metres, one millimetre.
	sepTol = 1e-3
	// sepMax caps the outward bracketing of a separation distance search
	// in metres.
	sepMax = 1e5
)

// RadiantHeatFlux returns the design radiant heat flux in kW/m² on a
// receiver at the given separation distance in metres. The flux composes
// the worst case view factor, the flame emissive power and the
// atmospheric transmittance over the worst case path.
func (m *Model) RadiantHeatFlux(separation float64) (float64, error) {
	phi, angle, err := m.ViewFactor(separation)
	if err != nil {
		return 0, err
	}
	tau, err := m.TransmittanceFactor(angle, separation)
	if err != nil {
		return 0, err
	}
	t4 := m.FlameTemperature * m.FlameTemperature
	t4 *= t4
	return phi * m.Emissivity * m.Sigma * t4 * tau, nil
}

// RadiantHeatFluxes evaluates RadiantHeatFlux at each separation distance.
// The first failing distance aborts the batch and the returned error wraps
// its index.
func (m *Model) RadiantHeatFluxes(separations []float64) ([]float64, error) {
	fluxes := make([]float64, len(separations))
	var err error
	for i, d := range separations {
		fluxes[i], err = m.RadiantHeatFlux(d)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return fluxes, nil
}

// envelopeEdge returns the smallest admissible separation distance in
// metres, just clear of the flame envelope.
func (m *Model) envelopeEdge() float64 {
	half := 0.5 * m.FlameLength()
	if half == 0 {
		return 1e-6
	}
	return half * (1 + 1e-9)
}

// MinimumSeparation returns the smallest separation distance in metres at
// which the radiant heat flux does not exceed limit kW/m². The returned
// distance meets the limit, clears the flame envelope and overshoots the
// exact crossing by no more than two millimetres. If the limit is already
// met at the envelope edge the edge distance is returned.
//
// MinimumSeparation returns ErrInvalidParameter if limit is not positive
// and finite, and ErrNoConvergence if no distance under 100 km meets the
// limit.
func (m *Model) MinimumSeparation(limit float64) (float64, error) {
	if !finite(limit) || limit <= 0 {
		return 0, fmt.Errorf("flux limit %g kW/m²: %w", limit, ErrInvalidParameter)
	}
	lo := m.envelopeEdge()
	rlo, err := m.RadiantHeatFlux(lo)
	if err != nil {
		return 0, err
	}
	if rlo <= limit {
		return lo, nil
	}
	// Double outward until the limit is met, then bisect the crossing.
	hi := 2 * lo
	if hi < 10 {
		hi = 10
	}
	for {
		if hi > sepMax {
			return 0, fmt.Errorf("flux above %g kW/m² everywhere under %g m: %w", limit, sepMax, ErrNoConvergence)
		}
		rhi, err := m.RadiantHeatFlux(hi)
		if err != nil {
			return 0, err
		}
		if rhi <= limit {
			break
		}
		lo = hi
		hi *= 2
	}
	var fluxErr error
	x, err := opt.Bisect(func(d float64) float64 {
		r, err := m.RadiantHeatFlux(d)
		if err != nil && fluxErr == nil {
			fluxErr = err
		}
		return r - limit
	}, lo, hi, sepTol, 200)
	if fluxErr != nil {
		return 0, fluxErr
	}
	if err != nil {
		return 0, fmt.Errorf("separation search in [%g, %g] m: %w", lo, hi, ErrNoConvergence)
	}
	// Land on the tolerable side of the crossing.
	return x + sepTol, nil
}
