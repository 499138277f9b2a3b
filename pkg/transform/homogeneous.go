package transform

import (
	"fmt"
	"math"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
)

// homogeneousWTol bounds how small the w component may get before the
// perspective divide is rejected as degenerate.
const homogeneousWTol = 1e-10

// Homogeneous is a 4x4 transform over homogeneous 3D coordinates.
// Points map as [x y z 1] and divide through by w; directions map as
// [x y z 0] and skip the divide.
type Homogeneous struct {
	matrix algebra.Matrix
}

var _ Transform = Homogeneous{}

// NewHomogeneous wraps a 4x4 matrix.
func NewHomogeneous(m algebra.Matrix) (Homogeneous, error) {
	if m.Rows() != 4 || m.Cols() != 4 {
		return Homogeneous{}, &algebra.DimensionError{
			Op:   "homogeneous construction",
			Want: "4x4",
			Got:  m.Shape(),
		}
	}
	return Homogeneous{matrix: m}, nil
}

// FromAffine embeds a 3D affine transform into the upper-left block of
// a 4x4 matrix with the translation in the last column.
func FromAffine(a Affine) (Homogeneous, error) {
	if a.Dimension() != 3 {
		return Homogeneous{}, &algebra.DimensionError{
			Op:   "homogeneous embedding",
			Want: "3",
			Got:  fmt.Sprintf("%d", a.Dimension()),
		}
	}
	rows := make([][]float64, 4)
	for i := 0; i < 3; i++ {
		rows[i] = make([]float64, 4)
		for j := 0; j < 3; j++ {
			rows[i][j] = a.Linear().At(i, j)
		}
		rows[i][3] = a.Translation().At(i)
	}
	rows[3] = []float64{0, 0, 0, 1}
	return Homogeneous{matrix: algebra.MustMatrix(rows)}, nil
}

// AsMatrix returns the underlying 4x4 matrix.
func (h Homogeneous) AsMatrix() algebra.Matrix { return h.matrix }

func (h Homogeneous) String() string {
	return fmt.Sprintf("Homogeneous(%s)", h.matrix.Shape())
}

func (h Homogeneous) applyRaw(x, y, z, w float64) [4]float64 {
	in := [4]float64{x, y, z, w}
	var out [4]float64
	for i := 0; i < 4; i++ {
		var sum float64
		for j := 0; j < 4; j++ {
			sum += h.matrix.At(i, j) * in[j]
		}
		out[i] = sum
	}
	return out
}

// ApplyToPoint maps the point through homogeneous coordinates and
// performs the perspective divide. A near-zero w is rejected.
func (h Homogeneous) ApplyToPoint(p geometry.Point) (geometry.Point, error) {
	if p.Dimension() != 3 {
		return geometry.Point{}, &algebra.DimensionError{
			Op:   "homogeneous application",
			Want: "3",
			Got:  fmt.Sprintf("%d", p.Dimension()),
		}
	}
	out := h.applyRaw(p.X(), p.Y(), p.Z(), 1)
	if math.Abs(out[3]) < homogeneousWTol {
		return geometry.Point{}, &PerspectiveDivideError{W: out[3]}
	}
	v, err := algebra.NewVector([]float64{out[0] / out[3], out[1] / out[3], out[2] / out[3]}, p.Position().Unit())
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.PointFromVector(v), nil
}

// ApplyToVector maps a direction with w = 0, skipping the divide.
func (h Homogeneous) ApplyToVector(v algebra.Vector) (algebra.Vector, error) {
	if v.Dimension() != 3 {
		return algebra.Vector{}, &algebra.DimensionError{
			Op:   "homogeneous application",
			Want: "3",
			Got:  fmt.Sprintf("%d", v.Dimension()),
		}
	}
	out := h.applyRaw(v.At(0), v.At(1), v.At(2), 0)
	return algebra.NewVector([]float64{out[0], out[1], out[2]}, v.Unit())
}

// Compose returns the matrix product h * other, applying other first.
func (h Homogeneous) Compose(other Homogeneous) (Homogeneous, error) {
	m, err := h.matrix.Mul(other.matrix)
	if err != nil {
		return Homogeneous{}, err
	}
	return Homogeneous{matrix: m}, nil
}

// Inverse inverts the underlying matrix.
func (h Homogeneous) Inverse() (Homogeneous, error) {
	inv, err := h.matrix.Inverse()
	if err != nil {
		return Homogeneous{}, err
	}
	return Homogeneous{matrix: inv}, nil
}
