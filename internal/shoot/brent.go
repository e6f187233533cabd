package shoot

import "math"

// eps is the double-precision machine epsilon.
const eps = 2.220446049250313e-16

// brent isolates a root of f in [a, b] given f(a) f(b) < 0, combining
// inverse quadratic interpolation, secant steps, and bisection. Convergence
// means either the residual magnitude meets tol or the bracket width shrinks
// below tol; a steep residual can change sign between adjacent floats without
// ever dipping under tol, and the root is pinned just the same. The returned
// bool is false only when maxIter evaluations run out with neither criterion
// met.
func brent(f func(float64) float64, a, b, fa, fb, tol float64, maxIter int) (float64, float64, int, bool) {
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c, fc := a, fa
	d := b - a
	e := d
	iters := 0

	for iters < maxIter {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		if fb == 0 || math.Abs(fb) <= tol {
			return b, fb, iters, true
		}

		// Bracket narrower than the caller's tolerance (or rounding
		// granularity, whichever is larger): the root is isolated.
		tol1 := 2*eps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 {
			return b, fb, iters, true
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Interpolation step: secant, or inverse quadratic when all
			// three points are distinct.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		iters++

		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return b, fb, iters, math.Abs(fb) <= tol
}
