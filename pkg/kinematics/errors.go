package kinematics

import (
	"fmt"
	"strings"
)

// MissingFrameError reports a lookup for a frame the graph does not
// contain.
type MissingFrameError struct {
	Name string
}

func (e *MissingFrameError) Error() string {
	return fmt.Sprintf("frame not found: %q", e.Name)
}

// DuplicateFrameError reports an attempt to add a frame under a name
// the graph already holds.
type DuplicateFrameError struct {
	Name string
}

func (e *DuplicateFrameError) Error() string {
	return fmt.Sprintf("frame already exists: %q", e.Name)
}

// CircularDependencyError reports a cycle discovered while walking
// parent links. Path lists the frame names visited before the repeat.
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular frame dependency: %s", strings.Join(e.Path, " -> "))
}

// ChainError reports a malformed kinematic chain or a parameter list
// that does not match its joints.
type ChainError struct {
	Reason string
	Want   int
	Got    int
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%s: want %d, got %d", e.Reason, e.Want, e.Got)
}
