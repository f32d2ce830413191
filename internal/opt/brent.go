// Package opt implements the one dimensional numeric searches used by the
// radiant heat kernel: bounded scalar minimization and bracketed root finding.
package opt

import (
	"errors"
	"math"
)

// ErrMaxIterations is returned when a search exhausts its iteration
// budget before reaching the requested tolerance.
var ErrMaxIterations = errors.New("opt: maximum iterations exceeded")

const (
	// goldenMean is (3-sqrt(5))/2, the golden section step fraction.
	goldenMean = 0.38196601125010515
	// sqrtEps is sqrt(2^-52), the floor on relative tolerance.
	sqrtEps = 1.4901161193847656e-8
)

// Minimize finds a local minimizer of f on the closed interval [a,b] using
// Brent's bounded method: golden section search with parabolic
// interpolation steps where the fit is trustworthy. It returns the
// minimizer and the function value there. The minimizer is located to
// within an absolute tolerance tol of the true minimizer.
//
// f is never evaluated at the interval endpoints. Minimize returns
// ErrMaxIterations if the interval has not collapsed to tolerance after
// maxIter evaluations of f.
func Minimize(f func(float64) float64, a, b, tol float64, maxIter int) (x, fx float64, err error) {
	if a >= b {
		panic("opt: Minimize interval not ordered")
	}
	if tol <= 0 || maxIter < 1 {
		panic("opt: Minimize tolerance and iterations must be positive")
	}
	// xf tracks the best point seen, nfc the second best and fulc the
	// third. rat is the step taken this iteration, e the step before last.
	fulc := a + goldenMean*(b-a)
	nfc, xf := fulc, fulc
	var rat, e float64
	x = xf
	fx = f(x)
	nev := 1
	fnfc, ffulc := fx, fx
	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + tol/3
	tol2 := 2 * tol1

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		golden := true
		if math.Abs(e) > tol1 {
			// Fit a parabola through the three best points and step to
			// its vertex when the step is sane and stays inside [a,b].
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat
			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				golden = false
				rat = p / q
				x = xf + rat
				if x-a < tol2 || b-x < tol2 {
					rat = tol1 * sign(xm-xf)
				}
			}
		}
		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}
		x = xf + sign(rat)*math.Max(math.Abs(rat), tol1)
		fu := f(x)
		nev++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || nfc == xf {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || fulc == xf || fulc == nfc {
				fulc, ffulc = x, fu
			}
		}
		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + tol/3
		tol2 = 2 * tol1
		if nev >= maxIter {
			return xf, fx, ErrMaxIterations
		}
	}
	return xf, fx, nil
}

// sign returns -1, 1 or, for x == 0, 1 so that a zero step still moves.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
