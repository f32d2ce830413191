package opt

import "errors"

// ErrBracket is returned when a root finder is handed an interval whose
// endpoint function values do not straddle zero.
var ErrBracket = errors.New("opt: interval does not bracket a root")

// Bisect finds a root of f on [a,b] by bisection. f(a) and f(b) must have
// opposite signs. The returned abscissa is within tol of a true root.
// Bisect returns ErrBracket if the interval does not bracket a sign change
// and ErrMaxIterations if the interval has not collapsed to tol after
// maxIter halvings.
func Bisect(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	if a >= b {
		panic("opt: Bisect interval not ordered")
	}
	if tol <= 0 || maxIter < 1 {
		panic("opt: Bisect tolerance and iterations must be positive")
	}
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, ErrBracket
	}
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (a + b)
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if (fm > 0) == (fa > 0) {
			a, fa = mid, fm
		} else {
			b = mid
		}
		if b-a <= tol {
			return 0.5 * (a + b), nil
		}
	}
	return 0.5 * (a + b), ErrMaxIterations
}
