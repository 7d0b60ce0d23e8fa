package entity

// Evaluator is the injected expression-evaluation capability. The core
// never parses or inspects expression text; it only hands the raw string
// over and uses the result.
type Evaluator interface {
	Evaluate(expr string) (any, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator capability.
type EvaluatorFunc func(expr string) (any, error)

func (f EvaluatorFunc) Evaluate(expr string) (any, error) {
	return f(expr)
}
