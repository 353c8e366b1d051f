package intake

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoEvaluator = errors.New("intake: evaluator not configured")

// Evaluate executes a display-rule expression against the wrapped snapshot
// using the configured evaluator and wraps the result.
func (e *Engine) Evaluate(expr string) (Response[any], error) {
	return e.EvaluateWith(RuleContext{}, expr)
}

// EvaluateWith executes expr using ctx, falling back to the wrapped snapshot
// when ctx.Snapshot is nil.
func (e *Engine) EvaluateWith(ctx RuleContext, expr string) (Response[any], error) {
	if expr == "" {
		return Response[any]{}, fmt.Errorf("expression must not be empty")
	}
	evaluator, err := e.resolveEvaluator()
	if err != nil {
		return Response[any]{}, err
	}
	if ctx.Snapshot == nil {
		ctx.Snapshot = e.Snapshot
	}
	ctx = ctx.withDefaults()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapEvaluationError("", expr, ctx.fieldLabel(), evalErr)
	e.ruleLogger().LogEvaluation(RuleLogEvent{
		Engine:   engine,
		Expr:     expr,
		Field:    ctx.fieldLabel(),
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return Response[any]{}, evalErr
	}
	return Response[any]{Value: value}, nil
}

func (e *Engine) resolveEvaluator() (Evaluator, error) {
	evaluator := e.evaluator()
	if evaluator != nil {
		return evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := e.programCache(); cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := e.functionRegistry(); registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	defaultEvaluator := NewExprEvaluator(exprOpts...)
	if defaultEvaluator == nil {
		return nil, ErrNoEvaluator
	}
	e.withEvaluator(defaultEvaluator)
	return defaultEvaluator, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*intake.exprEvaluator":
		return "expr"
	case "*intake.celEvaluator":
		return "cel"
	case "*intake.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
