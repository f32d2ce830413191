package bushfire

import (
	"fmt"
	"math"

	"github.com/hazmath/bushfire/internal/opt"
)

// Worst case flame angle search domain and tolerances.
const (
	// angleTol is the absolute tolerance on the worst case flame angle
	// in radians.
	angleTol = 1e-5
	// solverMaxEval bounds objective evaluations in the angle search.
	solverMaxEval = 500
)

// pathLength returns the flame to receiver path length in metres for a
// candidate flame angle. The flame is hinged halfway along its length, so
// tilting sweeps the radiating midline toward or away from the receiver.
func (m *Model) pathLength(angle, separation float64) float64 {
	return separation - 0.5*m.FlameLength()*math.Cos(angle)
}

// viewFactorAt evaluates the view factor of the flame panel seen by the
// receiver with the flame inclined at angle radians from horizontal. The
// flame is a plane rectangle of width FlameWidth; the receiver is a
// differential element ReceiverHeight above ground on the sloped site.
// The panel splits at the receiver normal into an upper and a lower
// rectangle whose corner view factors sum, each spanning the half width
// either side of the receiver.
func (m *Model) viewFactorAt(angle, separation float64) float64 {
	flameLen := m.FlameLength()
	p := m.pathLength(angle, separation)
	tanSlope := math.Tan(m.site.Slope)
	x1 := (flameLen*math.Sin(angle) - 0.5*flameLen*math.Cos(angle)*tanSlope - separation*tanSlope - m.site.ReceiverHeight) / p
	x2 := (m.site.ReceiverHeight + p*tanSlope) / p
	y := 0.5 * m.FlameWidth / p
	return (cornerFactor(x1, y) + cornerFactor(x2, y)) / pi
}

// cornerFactor is the view factor integral of a rectangle with side
// ratios x and y seen from a differential element on the normal through
// one corner. The left/right symmetry of the flame about the receiver is
// folded into the caller's 1/pi normalization.
func cornerFactor(x, y float64) float64 {
	sx := math.Sqrt(1 + x*x)
	sy := math.Sqrt(1 + y*y)
	return x/sx*math.Atan(y/sx) + y/sy*math.Atan(x/sy)
}

// checkSeparation validates a separation distance against the flame
// envelope. The receiver must clear half the flame length so that no
// candidate flame angle can reach past it.
func (m *Model) checkSeparation(separation float64) error {
	if !finite(separation) {
		return fmt.Errorf("separation %g m: %w", separation, ErrInvalidParameter)
	}
	if half := 0.5 * m.FlameLength(); separation <= half {
		return fmt.Errorf("separation %g m does not clear half flame length %g m: %w", separation, half, ErrFlameEnvelope)
	}
	return nil
}

// ViewFactor returns the worst case view factor of the flame seen from a
// receiver at the given separation distance in metres, together with the
// flame angle in radians attaining it. The angle is searched over [0,pi]
// to within angleTol.
//
// ViewFactor returns ErrFlameEnvelope if the separation does not clear
// half the flame length and ErrNoConvergence if the angle search exhausts
// its evaluation budget.
func (m *Model) ViewFactor(separation float64) (phi, angle float64, err error) {
	if err = m.checkSeparation(separation); err != nil {
		return 0, 0, err
	}
	var negPhi float64
	angle, negPhi, err = opt.Minimize(func(a float64) float64 {
		return -m.viewFactorAt(a, separation)
	}, 0, pi, angleTol, solverMaxEval)
	if err != nil {
		return 0, 0, fmt.Errorf("worst case angle at %g m: %w", separation, ErrNoConvergence)
	}
	return -negPhi, angle, nil
}

// ViewFactors evaluates ViewFactor at each separation distance. The first
// failing distance aborts the batch and the returned error wraps its
// index.
func (m *Model) ViewFactors(separations []float64) (phis, angles []float64, err error) {
	phis = make([]float64, len(separations))
	angles = make([]float64, len(separations))
	for i, d := range separations {
		phis[i], angles[i], err = m.ViewFactor(d)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return phis, angles, nil
}
