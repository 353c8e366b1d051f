package usersink_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-intake/pkg/activity"
	"github.com/goliatone/go-intake/pkg/activity/usersink"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

type recordingSink struct {
	records []usertypes.ActivityRecord
	err     error
}

func (s *recordingSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	s.records = append(s.records, record)
	return s.err
}

func TestHookNotifyMapsEvent(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	actorID := uuid.New()
	userID := uuid.New()
	tenantID := uuid.New()

	event := activity.Event{
		Verb:       "intake.answer.recorded",
		ActorID:    actorID.String(),
		UserID:     userID.String(),
		TenantID:   tenantID.String(),
		ObjectType: "intake.field",
		ObjectID:   "industry",
		Channel:    "intake",
		ProjectID:  "p-1",
		Field:      "industry",
		Source:     "user",
		Recipients: []string{"owner@example.com"},
		Metadata: map[string]any{
			"new_value": "finance",
		},
		OccurredAt: now,
	}

	if err := hook.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	record := sink.records[0]
	if record.ActorID != actorID {
		t.Fatalf("expected actor %s got %s", actorID, record.ActorID)
	}
	if record.UserID != userID {
		t.Fatalf("expected user %s got %s", userID, record.UserID)
	}
	if record.TenantID != tenantID {
		t.Fatalf("expected tenant %s got %s", tenantID, record.TenantID)
	}
	if record.Verb != "intake.answer.recorded" || record.ObjectType != "intake.field" || record.ObjectID != "industry" {
		t.Fatalf("unexpected record payload: %+v", record)
	}
	if record.Channel != "intake" {
		t.Fatalf("expected channel intake got %q", record.Channel)
	}
	if record.OccurredAt != now {
		t.Fatalf("expected occurred_at %v got %v", now, record.OccurredAt)
	}
	if record.Data["project_id"] != "p-1" {
		t.Fatalf("expected project_id metadata got %v", record.Data["project_id"])
	}
	if record.Data["source"] != "user" {
		t.Fatalf("expected source metadata got %v", record.Data["source"])
	}
	if record.Data["new_value"] != "finance" {
		t.Fatalf("expected metadata passthrough got %v", record.Data["new_value"])
	}
	recipients, ok := record.Data["recipients"].([]string)
	if !ok || len(recipients) != 1 || recipients[0] != "owner@example.com" {
		t.Fatalf("expected recipients metadata got %v", record.Data["recipients"])
	}
}

func TestHookNotifyInvalidUUIDsFallBackToNil(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	event := activity.Event{
		Verb:       "intake.answer.recorded",
		ActorID:    "not-a-uuid",
		ObjectType: "intake.field",
		ObjectID:   "industry",
	}
	if err := hook.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if sink.records[0].ActorID != uuid.Nil {
		t.Fatalf("expected nil actor uuid, got %s", sink.records[0].ActorID)
	}
}

func TestHookNotifySkipsIncompleteEvents(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	if err := hook.Notify(context.Background(), activity.Event{ObjectType: "intake.field", ObjectID: "industry"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("expected incomplete event dropped, got %d", len(sink.records))
	}
}

func TestHookNotifyNilSink(t *testing.T) {
	hook := usersink.Hook{}
	if err := hook.Notify(context.Background(), activity.Event{
		Verb:       "intake.answer.recorded",
		ObjectType: "intake.field",
		ObjectID:   "industry",
	}); err != nil {
		t.Fatalf("expected nil sink tolerated, got %v", err)
	}
}

func TestHookNotifyPropagatesSinkError(t *testing.T) {
	boom := errors.New("sink down")
	hook := usersink.Hook{Sink: &recordingSink{err: boom}}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "intake.answer.recorded",
		ObjectType: "intake.field",
		ObjectID:   "industry",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
