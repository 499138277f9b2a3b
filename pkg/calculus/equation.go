package calculus

import (
	"fmt"
	"math"
)

const (
	solveTolerance     = 1e-9
	solveMaxIterations = 100
	solveStep          = 1e-7
	solveDerivativeTol = 1e-12
)

// Equation asserts LHS = RHS over shared variables.
type Equation struct {
	LHS Expr
	RHS Expr
}

func (e Equation) String() string {
	return fmt.Sprintf("%s = %s", e.LHS, e.RHS)
}

// Residual computes |lhs - rhs| for the given variable values.
func (e Equation) Residual(context map[string]float64) (float64, error) {
	left, err := e.LHS.Eval(context)
	if err != nil {
		return 0, err
	}
	right, err := e.RHS.Eval(context)
	if err != nil {
		return 0, err
	}
	return math.Abs(left - right), nil
}

// Solve finds a value of the named variable satisfying the equation
// using Newton's method on the residual with a numeric derivative.
// It returns a NonConvergenceError when the local derivative vanishes
// or the iteration budget runs out.
func Solve(eq Equation, variable string, guess float64) (float64, error) {
	x := guess
	for i := 0; i < solveMaxIterations; i++ {
		residual, err := eq.Residual(map[string]float64{variable: x})
		if err != nil {
			return 0, err
		}
		if math.Abs(residual) < solveTolerance {
			return x, nil
		}

		shifted, err := eq.Residual(map[string]float64{variable: x + solveStep})
		if err != nil {
			return 0, err
		}
		derivative := (shifted - residual) / solveStep
		if math.Abs(derivative) < solveDerivativeTol {
			return 0, &NonConvergenceError{Iterations: i, Reason: "derivative too small"}
		}

		x -= residual / derivative
	}
	return 0, &NonConvergenceError{Iterations: solveMaxIterations, Reason: "iteration budget exhausted"}
}
