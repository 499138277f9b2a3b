// Package calculus provides symbolic expression trees with numeric
// evaluation, a Newton equation solver, and numeric integration,
// differentiation, and limits. Expressions are evaluated by walking
// the tree against a variable context; nothing is ever compiled or
// interpreted from strings.
package calculus

import (
	"fmt"

	"github.com/chazu/armature/pkg/units"
)

// Expr is a node in a symbolic expression tree. The variant set is
// fixed: Variable, Constant, and BinaryOp.
type Expr interface {
	// Eval computes the node's value against a variable context.
	Eval(context map[string]float64) (float64, error)
	String() string
}

// Variable is a named symbolic variable resolved from the evaluation
// context.
type Variable struct {
	Name string
}

func (v Variable) Eval(context map[string]float64) (float64, error) {
	value, ok := context[v.Name]
	if !ok {
		return 0, &UndefinedVariableError{Name: v.Name}
	}
	return value, nil
}

func (v Variable) String() string { return v.Name }

// Constant is a literal numeric value.
type Constant struct {
	Value float64
}

func (c Constant) Eval(map[string]float64) (float64, error) {
	return c.Value, nil
}

func (c Constant) String() string { return fmt.Sprintf("%g", c.Value) }

// BinaryOp applies one of "+", "-", "*", "/" to two subexpressions.
type BinaryOp struct {
	Left  Expr
	Op    string
	Right Expr
}

func (b BinaryOp) Eval(context map[string]float64) (float64, error) {
	left, err := b.Left.Eval(context)
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval(context)
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, &units.DivideByZeroError{Op: "expression division"}
		}
		return left / right, nil
	default:
		return 0, &UnknownOperatorError{Op: b.Op}
	}
}

func (b BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Convenience constructors for readable expression building.

// Add returns left + right.
func Add(left, right Expr) Expr { return BinaryOp{Left: left, Op: "+", Right: right} }

// Sub returns left - right.
func Sub(left, right Expr) Expr { return BinaryOp{Left: left, Op: "-", Right: right} }

// Mul returns left * right.
func Mul(left, right Expr) Expr { return BinaryOp{Left: left, Op: "*", Right: right} }

// Div returns left / right.
func Div(left, right Expr) Expr { return BinaryOp{Left: left, Op: "/", Right: right} }

// Var returns a Variable node.
func Var(name string) Expr { return Variable{Name: name} }

// Const returns a Constant node.
func Const(value float64) Expr { return Constant{Value: value} }
