package units

import (
	"errors"
	"testing"
)

func TestUnitCompatible(t *testing.T) {
	cases := []struct {
		name string
		a, b Unit
		want bool
	}{
		{"same length", Meter, Meter, true},
		{"different length symbols", Meter, Centimeter, true},
		{"length vs mass", Meter, Kilogram, false},
		{"radians vs radians", Radian, Radian, true},
		{"radians vs degrees", Radian, Degree, false},
		{"dimensionless vs dimensionless", Unitless, Unitless, true},
		{"dimensionless vs length", Unitless, Meter, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compatible(tc.b); got != tc.want {
				t.Errorf("Compatible(%s, %s) = %v, want %v", tc.a.Dim, tc.b.Dim, got, tc.want)
			}
		})
	}
}

func TestCheckCompatible_AngleMismatchIsAngleError(t *testing.T) {
	err := Radian.CheckCompatible(Degree, "rotation")
	var angleErr *AngleUnitError
	if !errors.As(err, &angleErr) {
		t.Fatalf("expected AngleUnitError, got %T: %v", err, err)
	}
	if angleErr.Want != Radians || angleErr.Got != Degrees {
		t.Errorf("wrong kinds in error: want radians/degrees, got %s/%s", angleErr.Want, angleErr.Got)
	}
}

func TestCheckCompatible_DimensionMismatchIsUnitError(t *testing.T) {
	err := Meter.CheckCompatible(Second, "addition")
	var unitErr *UnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("expected UnitError, got %T: %v", err, err)
	}
	if unitErr.Op != "addition" {
		t.Errorf("error should carry operation, got %q", unitErr.Op)
	}
}

func TestScalarAdd(t *testing.T) {
	a := NewScalar(1.5, Meter)
	b := NewScalar(2.5, Meter)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !sum.Equal(NewScalar(4.0, Meter)) {
		t.Errorf("1.5m + 2.5m = %s, want 4m", sum)
	}
}

func TestScalarAdd_IncompatibleUnits(t *testing.T) {
	a := NewScalar(1.0, Meter)
	b := NewScalar(1.0, Second)
	if _, err := a.Add(b); err == nil {
		t.Error("adding meters to seconds should fail")
	}
}

func TestScalarAdd_DegreesToRadians(t *testing.T) {
	a := NewScalar(1.0, Radian)
	b := NewScalar(90.0, Degree)
	_, err := a.Add(b)
	var angleErr *AngleUnitError
	if !errors.As(err, &angleErr) {
		t.Fatalf("radians + degrees must fail with AngleUnitError, got %T: %v", err, err)
	}
}

func TestScalarMul_DimensionedMultiplierRejected(t *testing.T) {
	a := NewScalar(2.0, Meter)
	b := NewScalar(3.0, Meter)
	if _, err := a.Mul(b); err == nil {
		t.Error("meter * meter should be rejected (no compound-unit algebra)")
	}
}

func TestScalarMul_DimensionlessMultiplier(t *testing.T) {
	a := NewScalar(2.0, Meter)
	got, err := a.Mul(Scalarf(3.0))
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	if !got.Equal(NewScalar(6.0, Meter)) {
		t.Errorf("2m * 3 = %s, want 6m", got)
	}
}

func TestScalarDiv_ByZero(t *testing.T) {
	a := NewScalar(1.0, Meter)
	_, err := a.Div(Scalarf(0))
	var dz *DivideByZeroError
	if !errors.As(err, &dz) {
		t.Fatalf("expected DivideByZeroError, got %T: %v", err, err)
	}
}

func TestScalarEqual_Tolerance(t *testing.T) {
	a := NewScalar(1.0, Meter)
	b := NewScalar(1.0+1e-12, Meter)
	if !a.Equal(b) {
		t.Error("values within 1e-9 relative tolerance should compare equal")
	}
	c := NewScalar(1.0, Centimeter)
	if a.Equal(c) {
		t.Error("equal values with different unit symbols must not compare equal")
	}
}

func TestScalarConvert_IdentityOnly(t *testing.T) {
	a := NewScalar(100.0, Centimeter)
	got, err := a.Convert(Meter)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	// Identity-only: value is retagged, not scaled.
	if got.Value != 100.0 || got.Unit != Meter {
		t.Errorf("Convert = %s, want value 100 retagged to m", got)
	}

	if _, err := a.Convert(Second); err == nil {
		t.Error("converting length to time should fail")
	}
}

func TestScalarLess(t *testing.T) {
	a := NewScalar(1.0, Meter)
	b := NewScalar(2.0, Meter)
	less, err := a.Less(b)
	if err != nil || !less {
		t.Errorf("1m < 2m should be true, got %v err %v", less, err)
	}
	if _, err := a.Less(NewScalar(1.0, Kilogram)); err == nil {
		t.Error("comparing meters with kilograms should fail")
	}
}
