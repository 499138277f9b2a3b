package calculus

import (
	"fmt"
	"math"
	"strings"
)

// Polynomial holds coefficients in ascending-power order:
// coefficients[i] multiplies x^i.
type Polynomial struct {
	coefficients []float64
}

// NewPolynomial copies the coefficient slice. An empty slice is the
// zero polynomial.
func NewPolynomial(coefficients []float64) Polynomial {
	c := make([]float64, len(coefficients))
	copy(c, coefficients)
	return Polynomial{coefficients: c}
}

// Degree returns the polynomial degree; the zero polynomial has
// degree -1.
func (p Polynomial) Degree() int { return len(p.coefficients) - 1 }

// Coefficient returns the coefficient of x^i, or zero beyond the
// degree.
func (p Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.coefficients) {
		return 0
	}
	return p.coefficients[i]
}

// Evaluate computes p(x) with Horner's method.
func (p Polynomial) Evaluate(x float64) float64 {
	result := 0.0
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result*x + p.coefficients[i]
	}
	return result
}

// AsFunc adapts the polynomial to the numeric helpers' function shape.
func (p Polynomial) AsFunc() func(float64) float64 {
	return p.Evaluate
}

func (p Polynomial) String() string {
	var terms []string
	for i, c := range p.coefficients {
		if math.Abs(c) <= 1e-10 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%g", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%gx", c))
		default:
			terms = append(terms, fmt.Sprintf("%gx^%d", c, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
