package intake

import (
	"time"

	"github.com/goliatone/go-intake/pkg/activity"
)

// Engine pairs a snapshot with rule-evaluation configuration. Resolution entry
// points stay pure free functions; the engine only adds convenience methods
// over one snapshot plus the display-rule machinery the wizard uses for step
// gates and badge visibility.
type Engine struct {
	Snapshot Snapshot

	cfg engineConfig
}

// New constructs an Engine around the provided snapshot.
func New(snapshot Snapshot, opts ...Option) *Engine {
	cfg := applyOptions(opts)
	return &Engine{
		Snapshot: snapshot.Clone(),
		cfg:      cfg,
	}
}

// Value resolves the effective value for question against the wrapped
// snapshot.
func (e *Engine) Value(question Question) (any, bool) {
	return ResolveValue(e.Snapshot, question.Field, question.TopLevel, question.AdditionalContext)
}

// Source classifies the provenance of field against the wrapped snapshot.
func (e *Engine) Source(field string) Source {
	return ResolveSource(field, e.Snapshot)
}

// PriorityOptions merges the question's static catalog with the snapshot's
// user and inferred candidates. Non-string candidates are excluded, matching
// the picker contract.
func (e *Engine) PriorityOptions(question Question) PriorityOptions {
	var userValue, inferredValue string
	if raw, ok := e.Snapshot.Meta.Overrides[question.Field]; ok {
		if text, isString := raw.(string); isString {
			userValue = text
		}
	}
	if record, ok := InferredWithMeta(e.Snapshot, question.Field); ok {
		if text, isString := record.Value.(string); isString {
			inferredValue = text
		}
	}
	current, _ := e.Value(question)
	return BuildPriorityOptions(question.Options, userValue, inferredValue, current)
}

// Trace reports the per-layer provenance probe for question.
func (e *Engine) Trace(question Question) Trace {
	return TraceValue(e.Snapshot, question.Field, question.TopLevel, question.AdditionalContext)
}

// RuleContext carries inputs needed when evaluating a display-rule
// expression.
type RuleContext struct {
	Snapshot any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
	Field    string
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) withDefaults() RuleContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx RuleContext) fieldLabel() string {
	if ctx.Field != "" {
		return ctx.Field
	}
	return "unknown"
}

// Response stores a typed result produced by an evaluator.
type Response[T any] struct {
	Value T
}

// Evaluator executes display-rule expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	evaluator     Evaluator
	programCache  ProgramCache
	functions     *FunctionRegistry
	logger        RuleLogger
	activityHooks activity.Hooks
}

func applyOptions(opts []Option) engineConfig {
	cfg := engineConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEvaluator configures the evaluator backend used by Evaluate.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *engineConfig) {
		cfg.evaluator = e
	}
}

func (e *Engine) evaluator() Evaluator {
	return e.cfg.evaluator
}

func (e *Engine) withEvaluator(evaluator Evaluator) {
	e.cfg.evaluator = evaluator
}

func (e *Engine) programCache() ProgramCache {
	return e.cfg.programCache
}

func (e *Engine) functionRegistry() *FunctionRegistry {
	return e.cfg.functions
}

func (e *Engine) ruleLogger() RuleLogger {
	if e.cfg.logger != nil {
		return e.cfg.logger
	}
	return noopRuleLogger{}
}
