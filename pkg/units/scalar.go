package units

import (
	"fmt"
	"math"
)

// relTol is the relative tolerance used by Equal.
const relTol = 1e-9

// Scalar is an immutable floating value paired with a Unit.
// All arithmetic between Scalars enforces unit compatibility before
// computing a result; there is no silent coercion.
type Scalar struct {
	Value float64
	Unit  Unit
}

// NewScalar pairs a value with a unit.
func NewScalar(value float64, unit Unit) Scalar {
	return Scalar{Value: value, Unit: unit}
}

// Scalarf creates a dimensionless scalar.
func Scalarf(value float64) Scalar {
	return Scalar{Value: value, Unit: Unitless}
}

func (s Scalar) String() string {
	if s.Unit.IsDimensionless() {
		return fmt.Sprintf("%g", s.Value)
	}
	return fmt.Sprintf("%g %s", s.Value, s.Unit)
}

// Add returns s + other. The units must be compatible.
func (s Scalar) Add(other Scalar) (Scalar, error) {
	if err := s.Unit.CheckCompatible(other.Unit, "addition"); err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value + other.Value, Unit: s.Unit}, nil
}

// Sub returns s - other. The units must be compatible.
func (s Scalar) Sub(other Scalar) (Scalar, error) {
	if err := s.Unit.CheckCompatible(other.Unit, "subtraction"); err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value - other.Value, Unit: s.Unit}, nil
}

// Scale multiplies by a bare float, keeping the unit.
func (s Scalar) Scale(f float64) Scalar {
	return Scalar{Value: s.Value * f, Unit: s.Unit}
}

// Mul multiplies by another Scalar. Only dimensionless multipliers are
// allowed; the kernel has no compound-unit algebra.
func (s Scalar) Mul(other Scalar) (Scalar, error) {
	if !other.Unit.IsDimensionless() {
		return Scalar{}, &UnitError{
			Left:  s.Unit,
			Right: other.Unit,
			Op:    "multiplication (only dimensionless multipliers allowed)",
		}
	}
	return Scalar{Value: s.Value * other.Value, Unit: s.Unit}, nil
}

// Div divides by another Scalar. Only dimensionless divisors are allowed,
// and the divisor must be non-zero.
func (s Scalar) Div(other Scalar) (Scalar, error) {
	if other.Value == 0 {
		return Scalar{}, &DivideByZeroError{Op: "scalar division"}
	}
	if !other.Unit.IsDimensionless() {
		return Scalar{}, &UnitError{
			Left:  s.Unit,
			Right: other.Unit,
			Op:    "division (only dimensionless divisors allowed)",
		}
	}
	return Scalar{Value: s.Value / other.Value, Unit: s.Unit}, nil
}

// Neg returns the negated scalar.
func (s Scalar) Neg() Scalar {
	return Scalar{Value: -s.Value, Unit: s.Unit}
}

// Abs returns the absolute value.
func (s Scalar) Abs() Scalar {
	return Scalar{Value: math.Abs(s.Value), Unit: s.Unit}
}

// Equal compares values with relative tolerance 1e-9 and units exactly.
func (s Scalar) Equal(other Scalar) bool {
	if s.Unit != other.Unit {
		return false
	}
	return Close(s.Value, other.Value, relTol)
}

// Less reports s < other. The units must be compatible.
func (s Scalar) Less(other Scalar) (bool, error) {
	if err := s.Unit.CheckCompatible(other.Unit, "comparison"); err != nil {
		return false, err
	}
	return s.Value < other.Value, nil
}

// LessEq reports s <= other. The units must be compatible.
func (s Scalar) LessEq(other Scalar) (bool, error) {
	if err := s.Unit.CheckCompatible(other.Unit, "comparison"); err != nil {
		return false, err
	}
	return s.Value <= other.Value, nil
}

// IsZero reports whether the value is within tol of zero.
// A non-positive tol falls back to 1e-10.
func (s Scalar) IsZero(tol float64) bool {
	if tol <= 0 {
		tol = 1e-10
	}
	return math.Abs(s.Value) < tol
}

// Convert checks compatibility with the target unit and retags the value.
// No conversion factor is applied: Armature carries no factor table, so
// Convert is identity-only. Converting between units that need a factor
// (cm to m, say) is a known limitation, not a silent conversion.
func (s Scalar) Convert(target Unit) (Scalar, error) {
	if err := s.Unit.CheckCompatible(target, "unit conversion"); err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value, Unit: target}, nil
}

// Close reports whether a and b agree within relative tolerance rel,
// treating exact equality (including both zero) as close.
func Close(a, b, rel float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	// Absolute floor so values that should be zero but carry float noise
	// still compare equal to zero.
	return diff <= math.Max(rel*largest, 1e-12)
}
