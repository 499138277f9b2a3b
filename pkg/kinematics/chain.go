package kinematics

import (
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/units"
)

// KinematicChain is an ordered run of frames connected by joints.
// A chain of n frames carries exactly n-1 joints; joint i connects
// frame i to frame i+1.
type KinematicChain struct {
	graph  *FrameGraph
	frames []FrameID
	joints []Joint
}

// NewKinematicChain validates the frame/joint counts and frame ids
// against the graph.
func NewKinematicChain(graph *FrameGraph, frames []FrameID, joints []Joint) (*KinematicChain, error) {
	if len(frames) < 2 {
		return nil, &ChainError{Reason: "chain needs at least two frames", Want: 2, Got: len(frames)}
	}
	if len(joints) != len(frames)-1 {
		return nil, &ChainError{Reason: "chain joint count must be one less than frame count", Want: len(frames) - 1, Got: len(joints)}
	}
	for _, id := range frames {
		if !graph.valid(id) {
			return nil, &MissingFrameError{Name: "#invalid chain frame"}
		}
	}
	return &KinematicChain{graph: graph, frames: frames, joints: joints}, nil
}

// Joints returns the number of joints in the chain.
func (c *KinematicChain) Joints() int { return len(c.joints) }

// ForwardKinematics computes the end effector position for the given
// joint parameters, applying each joint's transform in chain order
// starting from the origin of the first frame.
func (c *KinematicChain) ForwardKinematics(params []units.Scalar) (geometry.Point, error) {
	if len(params) != len(c.joints) {
		return geometry.Point{}, &ChainError{Reason: "parameter count must match joint count", Want: len(c.joints), Got: len(params)}
	}
	point := geometry.Origin(3, units.Meter)
	for i, joint := range c.joints {
		tf, err := joint.Transform(params[i])
		if err != nil {
			return geometry.Point{}, err
		}
		point, err = tf.ApplyToPoint(point)
		if err != nil {
			return geometry.Point{}, err
		}
	}
	return point, nil
}
