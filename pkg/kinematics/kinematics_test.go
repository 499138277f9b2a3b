package kinematics

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/transform"
	"github.com/chazu/armature/pkg/units"
)

func meterVector(t *testing.T, coords ...float64) algebra.Vector {
	t.Helper()
	v, err := algebra.NewVector(coords, units.Meter)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	return v
}

func meterPoint(t *testing.T, coords ...float64) geometry.Point {
	t.Helper()
	p, err := geometry.NewPoint(coords, units.Meter)
	if err != nil {
		t.Fatalf("NewPoint: %v", err)
	}
	return p
}

func translationAffine(t *testing.T, coords ...float64) *transform.Affine {
	t.Helper()
	a := transform.FromTranslation(transform.NewTranslation(meterVector(t, coords...)))
	return &a
}

func TestFrameGraphAddAndFind(t *testing.T) {
	g := NewFrameGraph()
	base, err := g.AddFrame("base", g.World(), translationAffine(t, 1, 0, 0))
	if err != nil {
		t.Fatalf("AddFrame base: %v", err)
	}
	arm, err := g.AddFrame("arm", base, translationAffine(t, 0, 1, 0))
	if err != nil {
		t.Fatalf("AddFrame arm: %v", err)
	}

	found, err := g.Find("arm")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found != arm {
		t.Fatalf("Find returned %d, want %d", found, arm)
	}

	_, err = g.Find("gripper")
	var missing *MissingFrameError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFrameError, got %v", err)
	}
	if missing.Name != "gripper" {
		t.Fatalf("missing frame name = %q", missing.Name)
	}
}

func TestFrameGraphRejectsDuplicateNames(t *testing.T) {
	g := NewFrameGraph()
	if _, err := g.AddFrame("base", g.World(), nil); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	_, err := g.AddFrame("base", g.World(), nil)
	var dup *DuplicateFrameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFrameError, got %v", err)
	}
}

func TestToWorldChainsTransforms(t *testing.T) {
	g := NewFrameGraph()
	base, err := g.AddFrame("base", g.World(), translationAffine(t, 1, 0, 0))
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	arm, err := g.AddFrame("arm", base, translationAffine(t, 0, 2, 0))
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}

	got, err := g.ToWorld(arm, meterPoint(t, 0, 0, 3))
	if err != nil {
		t.Fatalf("ToWorld: %v", err)
	}
	want := meterPoint(t, 1, 2, 3)
	if !got.Equal(want) {
		t.Fatalf("ToWorld = %s, want %s", got, want)
	}
}

func TestToWorldIdentityForNilTransform(t *testing.T) {
	g := NewFrameGraph()
	id, err := g.AddFrame("floating", g.World(), nil)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	p := meterPoint(t, 4, 5, 6)
	got, err := g.ToWorld(id, p)
	if err != nil {
		t.Fatalf("ToWorld: %v", err)
	}
	if !got.Equal(p) {
		t.Fatalf("identity frame moved point: %s", got)
	}
}

func TestToWorldDetectsCycle(t *testing.T) {
	g := NewFrameGraph()
	a, err := g.AddFrame("a", g.World(), nil)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	b, err := g.AddFrame("b", a, nil)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	c, err := g.AddFrame("c", b, nil)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	// Close the loop a -> b -> c -> a.
	if err := g.Reparent(a, c); err != nil {
		t.Fatalf("Reparent: %v", err)
	}

	_, err = g.ToWorld(a, meterPoint(t, 0, 0, 0))
	var cycle *CircularDependencyError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected CircularDependencyError, got %v", err)
	}
	if len(cycle.Path) == 0 {
		t.Fatal("cycle path is empty")
	}
}

func TestRevoluteJointRequiresRadians(t *testing.T) {
	j := RevoluteJoint{Axis: transform.AxisZ}
	_, err := j.Transform(units.NewScalar(90, units.Degree))
	var angleErr *units.AngleUnitError
	if !errors.As(err, &angleErr) {
		t.Fatalf("expected AngleUnitError, got %v", err)
	}
}

func TestPrismaticJointRequiresLength(t *testing.T) {
	j := PrismaticJoint{Axis: meterVector(t, 1, 0, 0)}
	_, err := j.Transform(units.NewScalar(1, units.Radian))
	var unitErr *units.UnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("expected UnitError, got %v", err)
	}
}

func TestChainJointCountEnforced(t *testing.T) {
	g := NewFrameGraph()
	base, _ := g.AddFrame("base", g.World(), nil)
	tip, _ := g.AddFrame("tip", base, nil)

	_, err := NewKinematicChain(g, []FrameID{g.World(), base, tip}, []Joint{
		RevoluteJoint{Axis: transform.AxisZ},
	})
	var chainErr *ChainError
	if !errors.As(err, &chainErr) {
		t.Fatalf("expected ChainError, got %v", err)
	}
	if chainErr.Want != 2 || chainErr.Got != 1 {
		t.Fatalf("ChainError want/got = %d/%d", chainErr.Want, chainErr.Got)
	}
}

func TestForwardKinematicsPrismaticThenRevolute(t *testing.T) {
	g := NewFrameGraph()
	base, _ := g.AddFrame("base", g.World(), nil)
	mid, _ := g.AddFrame("mid", base, nil)
	tip, _ := g.AddFrame("tip", mid, nil)

	chain, err := NewKinematicChain(g, []FrameID{base, mid, tip}, []Joint{
		PrismaticJoint{Axis: meterVector(t, 1, 0, 0)},
		RevoluteJoint{Axis: transform.AxisZ},
	})
	if err != nil {
		t.Fatalf("NewKinematicChain: %v", err)
	}

	// Slide 2m along x, then turn 90 degrees about z: (2,0,0) -> (0,2,0).
	got, err := chain.ForwardKinematics([]units.Scalar{
		units.NewScalar(2, units.Meter),
		units.NewScalar(math.Pi/2, units.Radian),
	})
	if err != nil {
		t.Fatalf("ForwardKinematics: %v", err)
	}
	want := meterPoint(t, 0, 2, 0)
	if !got.Equal(want) {
		t.Fatalf("ForwardKinematics = %s, want %s", got, want)
	}
}

func TestForwardKinematicsParameterCount(t *testing.T) {
	g := NewFrameGraph()
	base, _ := g.AddFrame("base", g.World(), nil)
	tip, _ := g.AddFrame("tip", base, nil)
	chain, err := NewKinematicChain(g, []FrameID{base, tip}, []Joint{
		RevoluteJoint{Axis: transform.AxisX},
	})
	if err != nil {
		t.Fatalf("NewKinematicChain: %v", err)
	}
	_, err = chain.ForwardKinematics(nil)
	var chainErr *ChainError
	if !errors.As(err, &chainErr) {
		t.Fatalf("expected ChainError, got %v", err)
	}
}

func TestPositionConstraint(t *testing.T) {
	c := PositionConstraint{Target: meterPoint(t, 1, 0, 0)}

	ok, err := c.IsSatisfied(meterPoint(t, 1, 0, 0))
	if err != nil {
		t.Fatalf("IsSatisfied: %v", err)
	}
	if !ok {
		t.Fatal("exact target not satisfied")
	}

	ok, err = c.IsSatisfied(meterPoint(t, 2, 0, 0))
	if err != nil {
		t.Fatalf("IsSatisfied: %v", err)
	}
	if ok {
		t.Fatal("point 1m away reported satisfied")
	}

	violation, err := c.Violation(meterPoint(t, 4, 4, 0))
	if err != nil {
		t.Fatalf("Violation: %v", err)
	}
	if !units.Close(violation.Value, 5, 1e-9) {
		t.Fatalf("violation = %g, want 5", violation.Value)
	}
}
