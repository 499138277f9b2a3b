package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/units"
)

func TestCheckDomain(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		min     float64
		max     float64
		wantErr bool
	}{
		{"inside", 0.5, 0, 1, false},
		{"at lower bound", 0, 0, 1, false},
		{"at upper bound", 1, 0, 1, false},
		{"below", -0.1, 0, 1, true},
		{"above", 1.1, 0, 1, true},
		{"no upper bound", 1e9, 0, math.NaN(), false},
		{"no lower bound", -1e9, math.NaN(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDomain(tt.value, tt.min, tt.max, "t")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckDomain(%g) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				var domErr *DomainError
				if !errors.As(err, &domErr) {
					t.Fatalf("expected DomainError, got %T", err)
				}
				if domErr.Value != tt.value || domErr.Parameter != "t" {
					t.Fatalf("DomainError fields = %+v", domErr)
				}
			}
		})
	}
}

func TestCheckPositiveAndUnitInterval(t *testing.T) {
	if err := CheckPositive(3, "length"); err != nil {
		t.Fatalf("CheckPositive(3): %v", err)
	}
	if err := CheckPositive(-1, "length"); err == nil {
		t.Fatal("CheckPositive(-1) passed")
	}
	if err := CheckUnitInterval(0.7, "alpha"); err != nil {
		t.Fatalf("CheckUnitInterval(0.7): %v", err)
	}
	if err := CheckUnitInterval(2, "alpha"); err == nil {
		t.Fatal("CheckUnitInterval(2) passed")
	}
}

func TestCheckOrthogonal(t *testing.T) {
	theta := 0.6
	rotation := algebra.MustMatrix([][]float64{
		{math.Cos(theta), -math.Sin(theta)},
		{math.Sin(theta), math.Cos(theta)},
	})
	if err := CheckOrthogonal(rotation); err != nil {
		t.Fatalf("rotation matrix reported non-orthogonal: %v", err)
	}

	sheared := algebra.MustMatrix([][]float64{
		{1, 0.5},
		{0, 1},
	})
	err := CheckOrthogonal(sheared)
	var invErr *InvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvariantError, got %v", err)
	}
	if invErr.Invariant != "orthogonal_matrix" {
		t.Fatalf("invariant = %q", invErr.Invariant)
	}
}

func TestCheckUnitVector(t *testing.T) {
	unit, err := algebra.NewVector([]float64{0.6, 0.8}, units.Unitless)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	if err := CheckUnitVector(unit); err != nil {
		t.Fatalf("(0.6, 0.8) reported non-unit: %v", err)
	}

	long, err := algebra.NewVector([]float64{3, 4}, units.Unitless)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	checkErr := CheckUnitVector(long)
	var invErr *InvariantError
	if !errors.As(checkErr, &invErr) {
		t.Fatalf("expected InvariantError, got %v", checkErr)
	}
	if invErr.Got != 5 {
		t.Fatalf("Got = %g, want 5", invErr.Got)
	}
}
