// Package units implements the dimension-tagged unit system underlying
// every numeric value in Armature. Units carry a physical dimension
// (length, angle, time, mass, or dimensionless) and a display symbol.
// Angle units additionally carry a sub-kind: radians and degrees are
// never silently convertible.
package units

// Dimension is the physical dimension of a unit.
type Dimension int

const (
	Dimensionless Dimension = iota
	Length
	Angle
	Time
	Mass
)

func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case Length:
		return "length"
	case Angle:
		return "angle"
	case Time:
		return "time"
	case Mass:
		return "mass"
	default:
		return "unknown"
	}
}

// AngleKind distinguishes radians from degrees. Only meaningful when
// the dimension is Angle.
type AngleKind int

const (
	AngleNone AngleKind = iota // not an angle unit
	Radians
	Degrees
)

func (k AngleKind) String() string {
	switch k {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "none"
	}
}

// Unit is an immutable dimension tag plus display symbol.
// Units compare structurally: same dimension, same symbol, same angle kind.
type Unit struct {
	Dim    Dimension
	Symbol string
	Kind   AngleKind // AngleNone unless Dim == Angle
}

// Predefined common units.
var (
	Unitless    = Unit{Dim: Dimensionless}
	Meter       = Unit{Dim: Length, Symbol: "m"}
	Centimeter  = Unit{Dim: Length, Symbol: "cm"}
	Millimeter  = Unit{Dim: Length, Symbol: "mm"}
	Radian      = Unit{Dim: Angle, Symbol: "rad", Kind: Radians}
	Degree      = Unit{Dim: Angle, Symbol: "deg", Kind: Degrees}
	Second      = Unit{Dim: Time, Symbol: "s"}
	Millisecond = Unit{Dim: Time, Symbol: "ms"}
	Kilogram    = Unit{Dim: Mass, Symbol: "kg"}
	Gram        = Unit{Dim: Mass, Symbol: "g"}
)

func (u Unit) String() string {
	return u.Symbol
}

// BySymbol resolves a display symbol to a predefined unit. An empty
// symbol resolves to Unitless.
func BySymbol(symbol string) (Unit, bool) {
	switch symbol {
	case "":
		return Unitless, true
	case "m":
		return Meter, true
	case "cm":
		return Centimeter, true
	case "mm":
		return Millimeter, true
	case "rad":
		return Radian, true
	case "deg":
		return Degree, true
	case "s":
		return Second, true
	case "ms":
		return Millisecond, true
	case "kg":
		return Kilogram, true
	case "g":
		return Gram, true
	default:
		return Unit{}, false
	}
}

// IsDimensionless reports whether the unit carries no physical dimension.
func (u Unit) IsDimensionless() bool {
	return u.Dim == Dimensionless
}

// Compatible reports whether two units may be combined in an operation.
// Dimensions must match; angle units further require matching sub-kind.
func (u Unit) Compatible(other Unit) bool {
	if u.Dim != other.Dim {
		return false
	}
	if u.Dim == Angle {
		return u.Kind == other.Kind
	}
	return true
}

// CheckCompatible returns a UnitError (or AngleUnitError when both
// operands are angles of different sub-kind) if the units cannot be
// combined in the named operation.
func (u Unit) CheckCompatible(other Unit, op string) error {
	if u.Compatible(other) {
		return nil
	}
	if u.Dim == Angle && other.Dim == Angle {
		return &AngleUnitError{Want: u.Kind, Got: other.Kind, Op: op}
	}
	return &UnitError{Left: u, Right: other, Op: op}
}
