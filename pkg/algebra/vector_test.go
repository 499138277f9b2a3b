package algebra

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/armature/pkg/units"
)

func TestVectorAdd(t *testing.T) {
	a := MustVector([]float64{1, 2, 3}, units.Meter)
	b := MustVector([]float64{4, 5, 6}, units.Meter)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !sum.Equal(MustVector([]float64{5, 7, 9}, units.Meter)) {
		t.Errorf("sum = %s, want [5, 7, 9] m", sum)
	}
}

func TestVectorAdd_DimensionMismatch(t *testing.T) {
	a := MustVector([]float64{1, 2}, units.Meter)
	b := MustVector([]float64{1, 2, 3}, units.Meter)
	_, err := a.Add(b)
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %T: %v", err, err)
	}
}

func TestVectorAdd_UnitMismatch(t *testing.T) {
	a := MustVector([]float64{1, 2, 3}, units.Meter)
	b := MustVector([]float64{1, 2, 3}, units.Second)
	var unitErr *units.UnitError
	if _, err := a.Add(b); !errors.As(err, &unitErr) {
		t.Fatalf("expected UnitError, got %T: %v", err, err)
	}
}

func TestVectorInSpace_LabelMismatch(t *testing.T) {
	if _, err := NewVectorInSpace([]float64{1, 2}, "R3", units.Unitless); err == nil {
		t.Error("R3 label on a 2-component vector should be rejected")
	}
}

func TestVectorDot_KeepsUnit(t *testing.T) {
	a := MustVector([]float64{1, 2, 3}, units.Meter)
	b := MustVector([]float64{4, 5, 6}, units.Meter)
	d, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if d.Value != 32 {
		t.Errorf("dot = %g, want 32", d.Value)
	}
	// Deliberate simplification: same unit, not unit squared.
	if d.Unit != units.Meter {
		t.Errorf("dot unit = %s, want m", d.Unit)
	}
}

func TestVectorCross_SelfIsZero(t *testing.T) {
	v := MustVector([]float64{1.5, -2, 7}, units.Unitless)
	c, err := v.Cross(v)
	if err != nil {
		t.Fatalf("Cross failed: %v", err)
	}
	if !c.IsZero(0) {
		t.Errorf("v x v = %s, want zero vector", c)
	}
}

func TestVectorCross_2DRejected(t *testing.T) {
	a := MustVector([]float64{1, 2}, units.Unitless)
	if _, err := a.Cross(a); err == nil {
		t.Error("cross product of 2D vectors should be rejected")
	}
}

func TestVectorNormalize(t *testing.T) {
	v := MustVector([]float64{3, 4, 0}, units.Meter)
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := n.Norm().Value; math.Abs(got-1.0) > 1e-9 {
		t.Errorf("normalized norm = %g, want 1", got)
	}
	// Normalized result is always dimensionless.
	if n.Unit() != units.Unitless {
		t.Errorf("normalized unit = %s, want dimensionless", n.Unit())
	}
}

func TestVectorNormalize_Zero(t *testing.T) {
	v := Zero(3, units.Meter)
	_, err := v.Normalize()
	var zv *ZeroVectorError
	if !errors.As(err, &zv) {
		t.Fatalf("expected ZeroVectorError, got %T: %v", err, err)
	}
}

func TestVectorScaleScalar_DimensionedMultiplierRejected(t *testing.T) {
	v := MustVector([]float64{1, 2, 3}, units.Meter)
	if _, err := v.ScaleScalar(units.NewScalar(2, units.Meter)); err == nil {
		t.Error("dimensioned multiplier should be rejected")
	}
}

func TestVectorDiv_ByZero(t *testing.T) {
	v := MustVector([]float64{1, 2, 3}, units.Meter)
	var dz *units.DivideByZeroError
	if _, err := v.Div(0); !errors.As(err, &dz) {
		t.Fatalf("expected DivideByZeroError, got %T: %v", err, err)
	}
}

func TestBasis(t *testing.T) {
	b, err := Basis(3, 1, units.Unitless)
	if err != nil {
		t.Fatalf("Basis failed: %v", err)
	}
	if b.At(0) != 0 || b.At(1) != 1 || b.At(2) != 0 {
		t.Errorf("basis(3, 1) = %s, want [0, 1, 0]", b)
	}
	if _, err := Basis(3, 5, units.Unitless); err == nil {
		t.Error("out-of-range basis index should be rejected")
	}
}
