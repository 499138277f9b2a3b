// Package kinematics models reference frames, joints, and kinematic
// chains. Frames live in a FrameGraph arena and refer to each other by
// index; there is no hidden global frame beyond the graph's own world
// root.
package kinematics

import (
	"fmt"

	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/transform"
)

// FrameID indexes a frame inside its FrameGraph arena.
type FrameID int

const noParent FrameID = -1

// frame is one arena record. transform maps coordinates in this frame
// to the parent frame; nil means identity.
type frame struct {
	name      string
	parent    FrameID
	transform *transform.Affine
	children  []FrameID
}

// FrameGraph owns every frame in a kinematic tree. The zero value is
// not usable; construct with NewFrameGraph, which seeds the world root.
type FrameGraph struct {
	frames []frame
}

// NewFrameGraph creates a graph containing only the world root frame.
func NewFrameGraph() *FrameGraph {
	return &FrameGraph{
		frames: []frame{{name: "world", parent: noParent}},
	}
}

// World returns the id of the root frame.
func (g *FrameGraph) World() FrameID { return 0 }

// Len returns the number of frames in the arena.
func (g *FrameGraph) Len() int { return len(g.frames) }

func (g *FrameGraph) valid(id FrameID) bool {
	return id >= 0 && int(id) < len(g.frames)
}

// AddFrame appends a frame under the given parent. The transform maps
// the new frame's coordinates into the parent's; nil means identity.
// Duplicate names and unknown parents are rejected.
func (g *FrameGraph) AddFrame(name string, parent FrameID, tf *transform.Affine) (FrameID, error) {
	if !g.valid(parent) {
		return 0, &MissingFrameError{Name: fmt.Sprintf("#%d", parent)}
	}
	for _, f := range g.frames {
		if f.name == name {
			return 0, &DuplicateFrameError{Name: name}
		}
	}
	id := FrameID(len(g.frames))
	g.frames = append(g.frames, frame{name: name, parent: parent, transform: tf})
	g.frames[parent].children = append(g.frames[parent].children, id)
	return id, nil
}

// Name returns the name of the frame, or a MissingFrameError for an
// out-of-range id.
func (g *FrameGraph) Name(id FrameID) (string, error) {
	if !g.valid(id) {
		return "", &MissingFrameError{Name: fmt.Sprintf("#%d", id)}
	}
	return g.frames[id].name, nil
}

// Parent returns the parent of a frame. The boolean is false for the
// world root.
func (g *FrameGraph) Parent(id FrameID) (FrameID, bool, error) {
	if !g.valid(id) {
		return 0, false, &MissingFrameError{Name: fmt.Sprintf("#%d", id)}
	}
	p := g.frames[id].parent
	if p == noParent {
		return 0, false, nil
	}
	return p, true, nil
}

// Find locates a frame by name with a depth-first walk from the world
// root. Frames detached by Reparent cycles are unreachable.
func (g *FrameGraph) Find(name string) (FrameID, error) {
	visited := make(map[FrameID]bool, len(g.frames))
	stack := []FrameID{g.World()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		if g.frames[id].name == name {
			return id, nil
		}
		// Push in reverse so earlier children are visited first.
		children := g.frames[id].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return 0, &MissingFrameError{Name: name}
}

// toParent maps a point from the frame into its parent's coordinates.
func (g *FrameGraph) toParent(id FrameID, p geometry.Point) (geometry.Point, error) {
	f := g.frames[id]
	if f.parent == noParent || f.transform == nil {
		return p, nil
	}
	return f.transform.ApplyToPoint(p)
}

// ToWorld maps a point expressed in the given frame into world
// coordinates by walking parent links. A repeated frame on the walk is
// reported as a CircularDependencyError carrying the visited path.
func (g *FrameGraph) ToWorld(id FrameID, p geometry.Point) (geometry.Point, error) {
	if !g.valid(id) {
		return geometry.Point{}, &MissingFrameError{Name: fmt.Sprintf("#%d", id)}
	}
	current := id
	point := p
	visited := make(map[FrameID]bool)
	var path []string
	for g.frames[current].parent != noParent {
		if visited[current] {
			return geometry.Point{}, &CircularDependencyError{Path: path}
		}
		visited[current] = true
		path = append(path, g.frames[current].name)

		mapped, err := g.toParent(current, point)
		if err != nil {
			return geometry.Point{}, err
		}
		point = mapped
		current = g.frames[current].parent
	}
	return point, nil
}

// Reparent moves a frame under a new parent without touching its
// transform. It can create cycles; ToWorld detects them. Reparenting
// the world root is rejected.
func (g *FrameGraph) Reparent(id, newParent FrameID) error {
	if !g.valid(id) || !g.valid(newParent) {
		return &MissingFrameError{Name: fmt.Sprintf("#%d", id)}
	}
	if id == g.World() {
		return fmt.Errorf("world root cannot be reparented")
	}
	old := g.frames[id].parent
	if old != noParent {
		siblings := g.frames[old].children
		for i, c := range siblings {
			if c == id {
				g.frames[old].children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	g.frames[id].parent = newParent
	g.frames[newParent].children = append(g.frames[newParent].children, id)
	return nil
}
