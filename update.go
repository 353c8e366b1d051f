package intake

// Answer records a user answer on the snapshot. The override is always
// written; the value is mirrored onto the top-level record or the additional
// context map per the question's placement flags, and any inference record for
// the field is discarded since the human answer supersedes it.
//
// A bare string answered to the brand-colors field is promoted to a
// single-element list, matching what the persistence layer stores.
func Answer(snapshot *Snapshot, question Question, value any) error {
	if err := question.Validate(); err != nil {
		return err
	}
	field := CanonicalField(question.Field)
	if field == FieldBrandColors {
		if text, ok := value.(string); ok {
			value = []any{text}
		}
	}

	if snapshot.Meta.Overrides == nil {
		snapshot.Meta.Overrides = map[string]any{}
	}
	snapshot.Meta.Overrides[field] = value
	delete(snapshot.Meta.Inferred, field)

	switch {
	case question.AdditionalContext:
		if snapshot.AdditionalContext == nil {
			snapshot.AdditionalContext = map[string]any{}
		}
		snapshot.AdditionalContext[field] = value
	case question.TopLevel:
		if snapshot.Fields == nil {
			snapshot.Fields = map[string]any{}
		}
		snapshot.Fields[field] = value
	}
	return nil
}

// UpdatePayload builds the partial-update body the persistence client sends
// when a question is answered. The shape branches on the same placement flags
// Answer applies locally; the two must stay in lock-step.
func UpdatePayload(question Question, value any) map[string]any {
	field := CanonicalField(question.Field)
	payload := map[string]any{
		"project_meta": map[string]any{
			"user_overrides": map[string]any{field: value},
		},
	}
	switch {
	case question.AdditionalContext:
		payload["additional_context"] = map[string]any{field: value}
	case question.TopLevel:
		payload[field] = value
	}
	return payload
}
