package calculus

import "fmt"

// UndefinedVariableError reports an expression evaluated against a
// context missing one of its variables.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable %q not in context", e.Name)
}

// UnknownOperatorError reports a BinaryOp carrying an operator outside
// the supported set.
type UnknownOperatorError struct {
	Op string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %q", e.Op)
}

// NonConvergenceError reports a solver that gave up, either because
// the local derivative vanished or the iteration budget ran out.
type NonConvergenceError struct {
	Iterations int
	Reason     string
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("solver failed to converge after %d iterations: %s", e.Iterations, e.Reason)
}

// DomainError reports a parameter outside a curve's domain.
type DomainError struct {
	Value float64
	Min   float64
	Max   float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("parameter t=%g outside range [%g, %g]", e.Value, e.Min, e.Max)
}

// LimitError reports a point where the one-sided limits disagree.
type LimitError struct {
	X0    float64
	Left  float64
	Right float64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit does not exist at x=%g (left %g, right %g)", e.X0, e.Left, e.Right)
}
