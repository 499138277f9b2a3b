package geometry

// Polyhedron is a 3D solid bounded by at least four polygonal faces.
type Polyhedron struct {
	faces []Polygon
}

// NewPolyhedron creates a polyhedron from faces. Every face must be 3D.
func NewPolyhedron(faces []Polygon) (Polyhedron, error) {
	if len(faces) < 4 {
		return Polyhedron{}, &GeometryError{Op: "polyhedron creation", Reason: "polyhedron must have at least 4 faces"}
	}
	for _, f := range faces {
		if f.Dimension() != 3 {
			return Polyhedron{}, &GeometryError{Op: "polyhedron creation", Reason: "all faces must be in 3D space"}
		}
	}
	cp := make([]Polygon, len(faces))
	copy(cp, faces)
	return Polyhedron{faces: cp}, nil
}

// Kind implements Primitive.
func (ph Polyhedron) Kind() Kind { return KindPolyhedron }

// NumFaces returns the face count.
func (ph Polyhedron) NumFaces() int { return len(ph.faces) }

// Face returns the face at index i.
func (ph Polyhedron) Face(i int) Polygon { return ph.faces[i] }

// Faces returns a copy of the face slice.
func (ph Polyhedron) Faces() []Polygon {
	cp := make([]Polygon, len(ph.faces))
	copy(cp, ph.faces)
	return cp
}

// Vertices returns the unique vertices across all faces, in first-seen
// order, using the point equality tolerance.
func (ph Polyhedron) Vertices() []Point {
	var unique []Point
	for _, f := range ph.faces {
		for _, v := range f.Vertices() {
			seen := false
			for _, u := range unique {
				if u.Equal(v) {
					seen = true
					break
				}
			}
			if !seen {
				unique = append(unique, v)
			}
		}
	}
	return unique
}
