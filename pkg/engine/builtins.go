package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/calculus"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/transform"
	"github.com/chazu/armature/pkg/units"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms scene script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: solve-for -> solve_for
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator).
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters (not a
		// minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing kernel values through zygomys
// ---------------------------------------------------------------------------

// sexpScalar wraps a units.Scalar.
type sexpScalar struct {
	s units.Scalar
}

func (s *sexpScalar) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(scalar %s)", s.s)
}
func (s *sexpScalar) Type() *zygo.RegisteredType { return nil }

// sexpVector wraps an algebra.Vector.
type sexpVector struct {
	v algebra.Vector
}

func (v *sexpVector) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %s)", v.v)
}
func (v *sexpVector) Type() *zygo.RegisteredType { return nil }

// sexpPoint wraps a geometry.Point.
type sexpPoint struct {
	p geometry.Point
}

func (p *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(point %s)", p.p)
}
func (p *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpLine wraps a geometry.Line.
type sexpLine struct {
	l geometry.Line
}

func (l *sexpLine) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(line %s)", l.l.Point())
}
func (l *sexpLine) Type() *zygo.RegisteredType { return nil }

// sexpPlane wraps a geometry.Plane.
type sexpPlane struct {
	pl geometry.Plane
}

func (p *sexpPlane) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(plane %s)", p.pl.Point())
}
func (p *sexpPlane) Type() *zygo.RegisteredType { return nil }

// sexpTransform wraps a transform for frame construction.
type sexpTransform struct {
	rotation    *transform.Rotation
	translation *transform.Translation
	desc        string
}

func (t *sexpTransform) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(transform %s)", t.desc)
}
func (t *sexpTransform) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string and returns
// the keyword name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword
// argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toUnit resolves a :unit keyword value to a units.Unit.
func toUnit(s zygo.Sexp) (units.Unit, error) {
	symbol, err := toKeywordString(s)
	if err != nil {
		return units.Unit{}, err
	}
	u, ok := units.BySymbol(symbol)
	if !ok {
		return units.Unit{}, fmt.Errorf("unknown unit %q", symbol)
	}
	return u, nil
}

// toSpatialAxis converts a keyword (:x, :y, :z) to a transform.Axis.
func toSpatialAxis(s zygo.Sexp) (transform.Axis, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected axis keyword (:x, :y, :z): %w", err)
	}
	return transform.ParseAxis(name)
}

// toScalar extracts a units.Scalar; bare numbers become the fallback
// unit.
func toScalar(s zygo.Sexp, fallback units.Unit) (units.Scalar, error) {
	if sc, ok := s.(*sexpScalar); ok {
		return sc.s, nil
	}
	f, err := toFloat64(s)
	if err != nil {
		return units.Scalar{}, err
	}
	return units.NewScalar(f, fallback), nil
}

// toVector extracts an algebra.Vector from a sexpVector.
func toVector(s zygo.Sexp) (algebra.Vector, error) {
	if v, ok := s.(*sexpVector); ok {
		return v.v, nil
	}
	return algebra.Vector{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toPoint extracts a geometry.Point from a sexpPoint.
func toPoint(s zygo.Sexp) (geometry.Point, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.p, nil
	}
	return geometry.Point{}, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
}

// toPrimitive extracts a geometry.Primitive from a geometric sexp.
func toPrimitive(s zygo.Sexp) (geometry.Primitive, error) {
	switch v := s.(type) {
	case *sexpPoint:
		return v.p, nil
	case *sexpLine:
		return v.l, nil
	case *sexpPlane:
		return v.pl, nil
	}
	return nil, fmt.Errorf("expected point, line, or plane, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go
// slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the Armature scene builtins into a zygomys
// environment. The builtins populate the provided scene during
// evaluation. Source must be preprocessed with preprocessSource first.
func registerBuiltins(env *zygo.Zlisp, sc *scene) {

	// -----------------------------------------------------------------------
	// (scalar 2.5 :unit :m)
	// -----------------------------------------------------------------------
	env.AddFunction("scalar", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("scalar requires exactly 1 value, got %d", len(pa.positional))
		}
		value, err := toFloat64(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scalar: %w", err)
		}
		unit := units.Unitless
		if v, ok := pa.kw["unit"]; ok {
			unit, err = toUnit(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("scalar: %w", err)
			}
		}
		return &sexpScalar{s: units.NewScalar(value, unit)}, nil
	})

	// -----------------------------------------------------------------------
	// (vec3 1 2 3 :unit :m)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 components, got %d", len(pa.positional))
		}
		components := make([]float64, 3)
		for i, arg := range pa.positional {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: component %d: %w", i, err)
			}
			components[i] = f
		}
		unit := units.Unitless
		if v, ok := pa.kw["unit"]; ok {
			u, err := toUnit(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
			}
			unit = u
		}
		vec, err := algebra.NewVector(components, unit)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
		}
		return &sexpVector{v: vec}, nil
	})

	// -----------------------------------------------------------------------
	// (point 1 2 3 :unit :m)
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 3 {
			return zygo.SexpNull, fmt.Errorf("point requires exactly 3 coordinates, got %d", len(pa.positional))
		}
		coords := make([]float64, 3)
		for i, arg := range pa.positional {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("point: coordinate %d: %w", i, err)
			}
			coords[i] = f
		}
		unit := units.Meter
		if v, ok := pa.kw["unit"]; ok {
			u, err := toUnit(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("point: %w", err)
			}
			unit = u
		}
		p, err := geometry.NewPoint(coords, unit)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: %w", err)
		}
		return &sexpPoint{p: p}, nil
	})

	// -----------------------------------------------------------------------
	// (line (point ...) (vec3 ...))
	// -----------------------------------------------------------------------
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("line requires a point and a direction, got %d arguments", len(args))
		}
		p, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line: %w", err)
		}
		dir, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line: %w", err)
		}
		l, err := geometry.NewLine(p, dir)
		if err != nil {
			// Degenerate geometry is a finding, not a script error.
			sc.finding("line", err)
			return zygo.SexpNull, nil
		}
		return &sexpLine{l: l}, nil
	})

	// -----------------------------------------------------------------------
	// (plane (point ...) (vec3 ...))
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("plane requires a point and a normal, got %d arguments", len(args))
		}
		p, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		normal, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		pl, err := geometry.NewPlane(p, normal)
		if err != nil {
			sc.finding("plane", err)
			return zygo.SexpNull, nil
		}
		return &sexpPlane{pl: pl}, nil
	})

	// -----------------------------------------------------------------------
	// (rotate :axis :z :angle 1.5708)
	// (rotate :axis (vec3 1 1 1) :angle (scalar 2.094 :unit :rad))
	// -----------------------------------------------------------------------
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		angleSexp, ok := pa.kw["angle"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rotate requires an :angle")
		}
		// Bare numbers are radians; degrees must come through
		// (scalar ... :unit :deg) and are rejected by the kernel.
		angle, err := toScalar(angleSexp, units.Radian)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: angle: %w", err)
		}

		axisSexp, ok := pa.kw["axis"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rotate requires an :axis")
		}

		var rot transform.Rotation
		if vec, vecErr := toVector(axisSexp); vecErr == nil {
			rot, err = transform.NewAxisRotation(vec, angle)
		} else {
			var axis transform.Axis
			axis, err = toSpatialAxis(axisSexp)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: axis: %w", err)
			}
			rot, err = transform.NewRotation(axis, angle)
		}
		if err != nil {
			sc.finding("rotate", err)
			return zygo.SexpNull, nil
		}
		return &sexpTransform{rotation: &rot, desc: rot.String()}, nil
	})

	// -----------------------------------------------------------------------
	// (translate (vec3 1 0 0 :unit :m))
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("translate requires an offset vector")
		}
		offset, err := toVector(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		tr := transform.NewTranslation(offset)
		return &sexpTransform{translation: &tr, desc: tr.String()}, nil
	})

	// -----------------------------------------------------------------------
	// (frame "arm" :parent "base" :transform (translate ...))
	// -----------------------------------------------------------------------
	env.AddFunction("frame", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("frame requires a name")
		}
		frameName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("frame: name: %w", err)
		}

		parent := sc.frames.World()
		if v, ok := pa.kw["parent"]; ok {
			parentName, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("frame: parent: %w", err)
			}
			parent, err = sc.frames.Find(parentName)
			if err != nil {
				sc.finding("frame", err)
				return zygo.SexpNull, nil
			}
		}

		var affine *transform.Affine
		if v, ok := pa.kw["transform"]; ok {
			tf, ok := v.(*sexpTransform)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("frame: transform: expected transform, got %T", v)
			}
			a, err := tf.toAffine()
			if err != nil {
				sc.finding("frame", err)
				return zygo.SexpNull, nil
			}
			affine = &a
		}

		if _, err := sc.frames.AddFrame(frameName, parent, affine); err != nil {
			sc.finding("frame", err)
			return zygo.SexpNull, nil
		}
		return &zygo.SexpStr{S: frameName}, nil
	})

	// -----------------------------------------------------------------------
	// (intersect (line ...) (plane ...))
	// -----------------------------------------------------------------------
	env.AddFunction("intersect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("intersect requires exactly 2 primitives, got %d", len(args))
		}
		a, err := toPrimitive(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: %w", err)
		}
		b, err := toPrimitive(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: %w", err)
		}

		result, err := geometry.Intersect(a, b, geometry.DefaultTolerance)
		if err != nil {
			sc.finding("intersect", err)
			return zygo.SexpNull, nil
		}
		desc := result.String()
		sc.record(sc.nextIntersectKey(), desc)
		if !result.Exists() {
			sc.finding("intersect", fmt.Errorf("%s", result.Reason()))
		}
		return &zygo.SexpStr{S: desc}, nil
	})

	// -----------------------------------------------------------------------
	// (solve-for "x" (list -4 0 1) :guess 3)
	// Coefficients are ascending powers: -4 + 0x + 1x^2 = 0.
	// -----------------------------------------------------------------------
	env.AddFunction("solve_for", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("solve-for requires a variable name and coefficient list")
		}
		varName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solve-for: variable: %w", err)
		}
		items, err := sexpListToSlice(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solve-for: coefficients: %w", err)
		}
		if len(items) == 0 {
			return zygo.SexpNull, fmt.Errorf("solve-for: empty coefficient list")
		}

		guess := 0.0
		if v, ok := pa.kw["guess"]; ok {
			guess, err = toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("solve-for: guess: %w", err)
			}
		}

		// Build the polynomial expression term by term.
		var lhs calculus.Expr
		power := calculus.Expr(calculus.Const(1))
		for i, item := range items {
			coeff, err := toFloat64(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("solve-for: coefficient %d: %w", i, err)
			}
			term := calculus.Mul(calculus.Const(coeff), power)
			if lhs == nil {
				lhs = term
			} else {
				lhs = calculus.Add(lhs, term)
			}
			power = calculus.Mul(power, calculus.Var(varName))
		}

		root, err := calculus.Solve(calculus.Equation{LHS: lhs, RHS: calculus.Const(0)}, varName, guess)
		if err != nil {
			sc.finding("solve-for", err)
			return zygo.SexpNull, nil
		}
		sc.record("solve:"+varName, fmt.Sprintf("%g", root))
		return &zygo.SexpFloat{Val: root}, nil
	})
}

// toAffine lowers a sexpTransform into an affine for frame
// construction.
func (t *sexpTransform) toAffine() (transform.Affine, error) {
	switch {
	case t.rotation != nil:
		return transform.FromRotation(*t.rotation), nil
	case t.translation != nil:
		return transform.FromTranslation(*t.translation), nil
	default:
		return transform.Affine{}, fmt.Errorf("empty transform")
	}
}
