// Package solve provides scalar root finding for inverting model curves.
package solve

import (
	"errors"
	"math"
)

var (
	// ErrBracket indicates f(a) and f(b) do not straddle zero.
	ErrBracket = errors.New("solve: root not bracketed")

	// ErrMaxIterations indicates the solver ran out of iterations before
	// reaching the requested tolerance.
	ErrMaxIterations = errors.New("solve: maximum iterations exceeded")
)

const (
	xtol    = 2e-12
	maxIter = 100
)

var eps = math.Nextafter(1, 2) - 1

// Brent finds a root of f in [a, b] using Brent's method: bisection
// safeguarding inverse quadratic interpolation. f(a) and f(b) must have
// opposite signs or ErrBracket is returned.
func Brent(f func(float64) float64, a, b float64) (float64, error) {
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 || math.IsNaN(fa) || math.IsNaN(fb) {
		return math.NaN(), ErrBracket
	}

	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*eps*math.Abs(b) + xtol/2
		m := (c - b) / 2

		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation would not help; bisect.
			d = m
			e = m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				r := fb / fc
				t := fa / fc
				p = s * (2*m*t*(t-r) - (b-a)*(r-1))
				q = (t - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)

		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
	return b, ErrMaxIterations
}
