// Package validate provides domain and invariant checks shared by the
// higher-level kernel packages. Checks return structured errors rather
// than booleans so callers can surface the offending values directly.
package validate

import (
	"fmt"
	"math"

	"github.com/chazu/armature/pkg/algebra"
)

// invariantTol bounds how far a checked quantity may drift from its
// invariant value.
const invariantTol = 1e-9

// DomainError reports a value outside its allowed interval.
type DomainError struct {
	Value     float64
	Domain    string
	Parameter string
}

func (e *DomainError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("%s = %g outside domain %s", e.Parameter, e.Value, e.Domain)
	}
	return fmt.Sprintf("value %g outside domain %s", e.Value, e.Domain)
}

// InvariantError reports a mathematical object violating a structural
// invariant, with the violating position and values attached.
type InvariantError struct {
	Invariant string
	Detail    string
	Row       int
	Col       int
	Expected  float64
	Got       float64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %q violated: %s", e.Invariant, e.Detail)
}

// CheckDomain verifies min <= value <= max. NaN bounds disable the
// corresponding side.
func CheckDomain(value, min, max float64, parameter string) error {
	hasMin := !math.IsNaN(min)
	hasMax := !math.IsNaN(max)
	if hasMin && value < min {
		return &DomainError{Value: value, Domain: domainString(min, max, hasMin, hasMax), Parameter: parameter}
	}
	if hasMax && value > max {
		return &DomainError{Value: value, Domain: domainString(min, max, hasMin, hasMax), Parameter: parameter}
	}
	return nil
}

func domainString(min, max float64, hasMin, hasMax bool) string {
	lower := "(-inf, "
	if hasMin {
		lower = fmt.Sprintf("[%g, ", min)
	}
	upper := "inf)"
	if hasMax {
		upper = fmt.Sprintf("%g]", max)
	}
	return lower + upper
}

// CheckPositive verifies value >= 0.
func CheckPositive(value float64, parameter string) error {
	return CheckDomain(value, 0, math.NaN(), parameter)
}

// CheckUnitInterval verifies value lies in [0, 1].
func CheckUnitInterval(value float64, parameter string) error {
	return CheckDomain(value, 0, 1, parameter)
}

// CheckOrthogonal verifies M^T * M = I elementwise within tolerance.
func CheckOrthogonal(m algebra.Matrix) error {
	if !m.IsSquare() {
		return &InvariantError{
			Invariant: "orthogonal_matrix",
			Detail:    fmt.Sprintf("matrix is %s, not square", m.Shape()),
		}
	}
	product, err := m.Transpose().Mul(m)
	if err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			expected := 0.0
			if i == j {
				expected = 1.0
			}
			got := product.At(i, j)
			if math.Abs(got-expected) > invariantTol {
				return &InvariantError{
					Invariant: "orthogonal_matrix",
					Detail:    "M^T * M != I",
					Row:       i,
					Col:       j,
					Expected:  expected,
					Got:       got,
				}
			}
		}
	}
	return nil
}

// CheckUnitVector verifies ||v|| = 1 within tolerance.
func CheckUnitVector(v algebra.Vector) error {
	norm := v.Norm().Value
	if math.Abs(norm-1) > invariantTol {
		return &InvariantError{
			Invariant: "unit_vector",
			Detail:    fmt.Sprintf("||v|| = %g, want 1", norm),
			Expected:  1,
			Got:       norm,
		}
	}
	return nil
}
