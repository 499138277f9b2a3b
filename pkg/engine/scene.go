package engine

import (
	"fmt"

	"github.com/chazu/armature/pkg/kinematics"
)

// scene accumulates the output of one evaluation. Builtins append to
// it as the script runs; it is never shared between evaluations.
type scene struct {
	frames    *kinematics.FrameGraph
	values    map[string]string
	findings  []Finding
	intersect int // counter for intersection value keys
}

func newScene() *scene {
	return &scene{
		frames: kinematics.NewFrameGraph(),
		values: make(map[string]string),
	}
}

// finding records a non-fatal kernel diagnostic.
func (s *scene) finding(source string, err error) {
	s.findings = append(s.findings, Finding{Source: source, Message: err.Error()})
}

// record stores a named result value.
func (s *scene) record(key, value string) {
	s.values[key] = value
}

// nextIntersectKey returns a deterministic key for the next
// intersection result.
func (s *scene) nextIntersectKey() string {
	s.intersect++
	return fmt.Sprintf("intersect#%d", s.intersect)
}

// result assembles the final EvalResult.
func (s *scene) result(errs []EvalError) *EvalResult {
	return &EvalResult{
		Frames:   s.frames,
		Values:   s.values,
		Findings: s.findings,
		Errors:   errs,
	}
}
