package activity

import (
	"strings"
	"time"
)

// FieldEventInput describes the common fields for intake lifecycle events.
type FieldEventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	ProjectID  string
	Channel    string
	Recipients []string
	Metadata   map[string]any
	Field      string
	Source     string
	OldValue   any
	NewValue   any
	Confidence float64
	Rationale  string
	OccurredAt time.Time
}

// BuildAnswerRecordedEvent constructs a normalized activity event for a user
// answering a wizard question.
func BuildAnswerRecordedEvent(input FieldEventInput) Event {
	return buildFieldEvent("intake.answer.recorded", input)
}

// BuildInferenceAppliedEvent constructs a normalized activity event for an
// upstream inference landing on a field.
func BuildInferenceAppliedEvent(input FieldEventInput) Event {
	return buildFieldEvent("intake.inference.applied", input)
}

// BuildOverrideClearedEvent constructs a normalized activity event for a user
// clearing a previously entered value.
func BuildOverrideClearedEvent(input FieldEventInput) Event {
	return buildFieldEvent("intake.override.cleared", input)
}

func buildFieldEvent(verb string, input FieldEventInput) Event {
	const objectType = "intake.field"

	metadata := cloneMap(input.Metadata)
	if input.Field != "" {
		metadata = ensureMetadata(metadata)
		metadata["field"] = input.Field
	}
	if input.Source != "" {
		metadata = ensureMetadata(metadata)
		metadata["source"] = input.Source
	}
	if input.OldValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["old_value"] = input.OldValue
	}
	if input.NewValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["new_value"] = input.NewValue
	}
	if input.Confidence > 0 {
		metadata = ensureMetadata(metadata)
		metadata["confidence"] = input.Confidence
	}
	if input.Rationale != "" {
		metadata = ensureMetadata(metadata)
		metadata["rationale"] = input.Rationale
	}

	recipients := input.Recipients
	if len(recipients) > 0 {
		recipients = append([]string{}, input.Recipients...)
	}

	objectID := strings.TrimSpace(input.Field)
	if objectID == "" {
		objectID = strings.TrimSpace(input.ProjectID)
	}
	if objectID == "" {
		objectID = objectType
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: objectType,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		ProjectID:  strings.TrimSpace(input.ProjectID),
		Field:      strings.TrimSpace(input.Field),
		Source:     strings.TrimSpace(input.Source),
		Recipients: recipients,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
