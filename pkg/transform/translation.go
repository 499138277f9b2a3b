package transform

import (
	"fmt"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
)

// Translation shifts points by a fixed offset. Directions are
// unaffected: translating a vector returns it unchanged.
type Translation struct {
	offset algebra.Vector
}

var _ Transform = Translation{}

// NewTranslation creates a translation by the given offset vector.
func NewTranslation(offset algebra.Vector) Translation {
	return Translation{offset: offset}
}

// Offset returns the translation offset.
func (t Translation) Offset() algebra.Vector { return t.offset }

func (t Translation) String() string {
	return fmt.Sprintf("Translation(%s)", t.offset)
}

// ApplyToPoint shifts the point by the offset. The offset's unit must
// be compatible with the point's unit.
func (t Translation) ApplyToPoint(p geometry.Point) (geometry.Point, error) {
	return p.Translate(t.offset)
}

// ApplyToVector returns the vector unchanged: free vectors have no
// position to shift.
func (t Translation) ApplyToVector(v algebra.Vector) (algebra.Vector, error) {
	return v, nil
}

// Compose returns the translation by the sum of both offsets.
func (t Translation) Compose(other Translation) (Translation, error) {
	sum, err := t.offset.Add(other.offset)
	if err != nil {
		return Translation{}, err
	}
	return Translation{offset: sum}, nil
}

// Inverse returns the translation by the negated offset.
func (t Translation) Inverse() Translation {
	return Translation{offset: t.offset.Neg()}
}
