package calculus

import (
	"math"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/units"
)

// derivativeStep is the half-width used by the central-difference
// stencils.
const derivativeStep = 1e-7

// Integrate approximates the integral of f over [a, b] with Simpson's
// rule on n panels. An odd n is rounded up to the next even value.
func Integrate(f func(float64) float64, a, b float64, n int) units.Scalar {
	if n%2 == 1 {
		n++
	}
	h := (b - a) / float64(n)
	total := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			total += 2 * f(x)
		} else {
			total += 4 * f(x)
		}
	}
	return units.Scalarf(total * h / 3)
}

// Derivative approximates f'(x) with a central difference.
func Derivative(f func(float64) float64, x float64) units.Scalar {
	h := derivativeStep
	return units.Scalarf((f(x+h) - f(x-h)) / (2 * h))
}

// Gradient approximates the vector of partial derivatives of f at x
// with central differences, one axis at a time.
func Gradient(f func([]float64) float64, x []float64) (algebra.Vector, error) {
	h := derivativeStep
	components := make([]float64, len(x))
	plus := make([]float64, len(x))
	minus := make([]float64, len(x))
	for i := range x {
		copy(plus, x)
		copy(minus, x)
		plus[i] += h
		minus[i] -= h
		components[i] = (f(plus) - f(minus)) / (2 * h)
	}
	return algebra.NewVector(components, units.Unitless)
}

// Limit approximates the two-sided limit of f at x0 by sampling at
// distance eps on either side. The one-sided values must agree within
// 10*eps or a LimitError is returned.
func Limit(f func(float64) float64, x0, eps float64) (units.Scalar, error) {
	left := f(x0 - eps)
	right := f(x0 + eps)
	if math.Abs(left-right) > eps*10 {
		return units.Scalar{}, &LimitError{X0: x0, Left: left, Right: right}
	}
	return units.Scalarf((left + right) / 2), nil
}
