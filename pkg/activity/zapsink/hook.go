// Package zapsink forwards intake activity events to a zap logger so
// deployments without a dedicated activity store still get a structured audit
// trail.
package zapsink

import (
	"context"

	"github.com/goliatone/go-intake/pkg/activity"
	"go.uber.org/zap"
)

// Hook logs every activity event at info level.
type Hook struct {
	Logger *zap.Logger
}

// Notify implements activity.ActivityHook.
func (h Hook) Notify(_ context.Context, event activity.Event) error {
	if h.Logger == nil {
		return nil
	}
	normalized := activity.NormalizeEvent(event)
	fields := []zap.Field{
		zap.String("verb", normalized.Verb),
		zap.String("object_type", normalized.ObjectType),
		zap.String("object_id", normalized.ObjectID),
		zap.Time("occurred_at", normalized.OccurredAt),
	}
	if normalized.ProjectID != "" {
		fields = append(fields, zap.String("project_id", normalized.ProjectID))
	}
	if normalized.Field != "" {
		fields = append(fields, zap.String("field", normalized.Field))
	}
	if normalized.Source != "" {
		fields = append(fields, zap.String("source", normalized.Source))
	}
	if normalized.Channel != "" {
		fields = append(fields, zap.String("channel", normalized.Channel))
	}
	if len(normalized.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", normalized.Metadata))
	}
	h.Logger.Info("intake activity", fields...)
	return nil
}
