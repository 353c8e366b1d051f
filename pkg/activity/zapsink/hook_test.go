package zapsink_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-intake/pkg/activity"
	"github.com/goliatone/go-intake/pkg/activity/zapsink"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHookNotifyLogsStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	hook := zapsink.Hook{Logger: zap.New(core)}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "intake.answer.recorded",
		ObjectType: "intake.field",
		ObjectID:   "industry",
		ProjectID:  "p-1",
		Field:      "industry",
		Source:     "user",
		Channel:    "intake",
		Metadata:   map[string]any{"new_value": "finance"},
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "intake activity" {
		t.Fatalf("unexpected message %q", entry.Message)
	}
	fields := entry.ContextMap()
	if fields["verb"] != "intake.answer.recorded" || fields["project_id"] != "p-1" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields["source"] != "user" || fields["channel"] != "intake" {
		t.Fatalf("expected provenance fields, got %v", fields)
	}
	metadata, ok := fields["metadata"].(map[string]any)
	if !ok || metadata["new_value"] != "finance" {
		t.Fatalf("expected metadata field, got %v", fields["metadata"])
	}
}

func TestHookNotifyOmitsEmptyFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	hook := zapsink.Hook{Logger: zap.New(core)}

	if err := hook.Notify(context.Background(), activity.Event{
		Verb:       "intake.override.cleared",
		ObjectType: "intake.field",
		ObjectID:   "tone",
	}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	fields := logs.All()[0].ContextMap()
	for _, key := range []string{"project_id", "field", "source", "channel", "metadata"} {
		if _, present := fields[key]; present {
			t.Fatalf("expected %q omitted, got %v", key, fields)
		}
	}
}

func TestHookNotifyNilLogger(t *testing.T) {
	hook := zapsink.Hook{}
	if err := hook.Notify(context.Background(), activity.Event{Verb: "intake.answer.recorded"}); err != nil {
		t.Fatalf("expected nil logger tolerated, got %v", err)
	}
}
