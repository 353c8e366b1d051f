package zapsink

import (
	intake "github.com/goliatone/go-intake"
	"go.uber.org/zap"
)

// RuleLogger adapts display-rule evaluation events onto a zap logger.
// Successful evaluations log at debug, failures at warn.
type RuleLogger struct {
	Logger *zap.Logger
}

// LogEvaluation implements intake.RuleLogger.
func (l RuleLogger) LogEvaluation(event intake.RuleLogEvent) {
	if l.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("engine", event.Engine),
		zap.String("expr", event.Expr),
		zap.String("field", event.Field),
		zap.Duration("duration", event.Duration),
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		l.Logger.Warn("rule evaluation failed", fields...)
		return
	}
	l.Logger.Debug("rule evaluated", fields...)
}
