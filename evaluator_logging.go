package intake

import "time"

// RuleLogEvent describes an evaluation attempt for logging.
type RuleLogEvent struct {
	Engine   string
	Expr     string
	Field    string
	Duration time.Duration
	Err      error
}

// RuleLogger records display-rule evaluation events.
type RuleLogger interface {
	LogEvaluation(RuleLogEvent)
}

// RuleLoggerFunc adapts a function to RuleLogger.
type RuleLoggerFunc func(RuleLogEvent)

// LogEvaluation implements RuleLogger.
func (f RuleLoggerFunc) LogEvaluation(event RuleLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopRuleLogger struct{}

func (noopRuleLogger) LogEvaluation(RuleLogEvent) {}

// WithRuleLogger attaches a rule logger to the Engine.
func WithRuleLogger(logger RuleLogger) Option {
	return func(cfg *engineConfig) {
		if logger == nil {
			cfg.logger = noopRuleLogger{}
			return
		}
		cfg.logger = logger
	}
}
