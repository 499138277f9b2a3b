package algebra

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/armature/pkg/units"
)

func TestNewMatrix_RaggedRejected(t *testing.T) {
	_, err := NewMatrix([][]float64{{1, 2}, {3}})
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError for ragged rows, got %T: %v", err, err)
	}
}

func TestMatrixAddSub_RoundTrip(t *testing.T) {
	a := MustMatrix([][]float64{{1, 2}, {3, 4}})
	b := MustMatrix([][]float64{{5, -1}, {0.5, 2}})
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	back, err := sum.Sub(b)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if !back.Equal(a) {
		t.Errorf("(A+B)-B = %v, want A", back)
	}
}

func TestMatrixAdd_ShapeMismatch(t *testing.T) {
	a := MustMatrix([][]float64{{1, 2}})
	b := MustMatrix([][]float64{{1}, {2}})
	if _, err := a.Add(b); err == nil {
		t.Error("adding 1x2 and 2x1 should fail")
	}
}

func TestMatrixMul_InnerDimension(t *testing.T) {
	a := MustMatrix([][]float64{{1, 2, 3}}) // 1x3
	b := MustMatrix([][]float64{{1}, {2}})  // 2x1
	if _, err := a.Mul(b); err == nil {
		t.Error("1x3 times 2x1 should fail on inner dimensions")
	}
}

func TestMatrixMul(t *testing.T) {
	a := MustMatrix([][]float64{{1, 2}, {3, 4}})
	b := MustMatrix([][]float64{{5, 6}, {7, 8}})
	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	want := MustMatrix([][]float64{{19, 22}, {43, 50}})
	if !got.Equal(want) {
		t.Errorf("product = %v, want %v", got, want)
	}
}

func TestMatrixDeterminant(t *testing.T) {
	cases := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"1x1", MustMatrix([][]float64{{7}}), 7},
		{"2x2", MustMatrix([][]float64{{1, 2}, {3, 4}}), -2},
		{"3x3", MustMatrix([][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}), 24},
		{"singular", MustMatrix([][]float64{{1, 2}, {2, 4}}), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.m.Determinant()
			if err != nil {
				t.Fatalf("Determinant failed: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("det = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestMatrixDeterminant_NonSquare(t *testing.T) {
	m := MustMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	if _, err := m.Determinant(); err == nil {
		t.Error("determinant of non-square matrix should fail")
	}
}

func TestMatrixInverse_RoundTrip(t *testing.T) {
	m := MustMatrix([][]float64{{4, 7}, {2, 6}})
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	prod, err := m.Mul(inv)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	if !prod.Equal(Identity(2)) {
		t.Errorf("M * M^-1 = %v, want identity", prod)
	}
}

func TestMatrixInverse_Singular(t *testing.T) {
	// All-zero row.
	m := MustMatrix([][]float64{{1, 2}, {0, 0}})
	_, err := m.Inverse()
	var sing *SingularMatrixError
	if !errors.As(err, &sing) {
		t.Fatalf("expected SingularMatrixError, got %T: %v", err, err)
	}
}

func TestMatrixApply(t *testing.T) {
	m := MustMatrix([][]float64{{1, 0, 0}, {0, 1, 0}}) // 2x3 projection
	v := MustVector([]float64{3, 4, 5}, units.Meter)
	got, err := m.Apply(v)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got.Dimension() != 2 || got.Space() != "R2" {
		t.Errorf("result space = %s, want R2", got.Space())
	}
	if got.Unit() != units.Meter {
		t.Errorf("result unit = %s, want m", got.Unit())
	}
	if got.At(0) != 3 || got.At(1) != 4 {
		t.Errorf("result = %s, want [3, 4]", got)
	}
}

func TestMatrixApply_ColumnMismatch(t *testing.T) {
	m := Identity(3)
	v := MustVector([]float64{1, 2}, units.Unitless)
	if _, err := m.Apply(v); err == nil {
		t.Error("applying 3x3 matrix to 2D vector should fail")
	}
}

func TestMatrixTranspose(t *testing.T) {
	m := MustMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	got := m.Transpose()
	want := MustMatrix([][]float64{{1, 4}, {2, 5}, {3, 6}})
	if !got.Equal(want) {
		t.Errorf("transpose = %v, want %v", got, want)
	}
}
