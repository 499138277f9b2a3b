package units

import "fmt"

// UnitError reports an attempt to combine incompatible units.
// It carries both operand units and the operation name so callers can
// inspect the failure programmatically.
type UnitError struct {
	Left  Unit
	Right Unit
	Op    string
}

func (e *UnitError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("incompatible units: %s (%s) and %s (%s) in %s",
			e.Left, e.Left.Dim, e.Right, e.Right.Dim, e.Op)
	}
	return fmt.Sprintf("incompatible units: %s (%s) and %s (%s)",
		e.Left, e.Left.Dim, e.Right, e.Right.Dim)
}

// AngleUnitError reports a radians/degrees mismatch. Degrees are never
// silently converted to radians; the caller must convert explicitly.
type AngleUnitError struct {
	Want AngleKind
	Got  AngleKind
	Op   string
}

func (e *AngleUnitError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("angle unit mismatch: want %s, got %s in %s", e.Want, e.Got, e.Op)
	}
	return fmt.Sprintf("angle unit mismatch: want %s, got %s", e.Want, e.Got)
}

// DivideByZeroError reports a division whose divisor is zero.
type DivideByZeroError struct {
	Op string
}

func (e *DivideByZeroError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("division by zero in %s", e.Op)
	}
	return "division by zero"
}
