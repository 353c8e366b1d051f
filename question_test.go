package intake

import "testing"

func wizardQuestions() []Question {
	return []Question{
		{ID: "q-name", Field: FieldProjectName, Kind: InputText, TopLevel: true, Required: true},
		{ID: "q-industry", Field: FieldIndustry, Kind: InputSelect, TopLevel: true, Required: true},
		{ID: "q-tone", Field: "tone", Kind: InputSelect, AdditionalContext: true},
	}
}

func TestActiveQuestionsSkipsAnsweredPrimaryName(t *testing.T) {
	snapshot := snapshotWith(func(s *Snapshot) {
		s.Meta.Overrides[FieldProjectName] = "Acme"
	})

	active := ActiveQuestions(wizardQuestions(), snapshot)
	if len(active) != 2 {
		t.Fatalf("expected primary-name question excluded, got %d questions", len(active))
	}
	if active[0].ID != "q-industry" || active[1].ID != "q-tone" {
		t.Fatalf("expected relative order preserved, got %q then %q", active[0].ID, active[1].ID)
	}
}

func TestActiveQuestionsKeepsUnansweredPrimaryName(t *testing.T) {
	active := ActiveQuestions(wizardQuestions(), NewSnapshot())
	if len(active) != 3 {
		t.Fatalf("expected full list, got %d questions", len(active))
	}
	if active[0].ID != "q-name" {
		t.Fatalf("expected primary-name question first, got %q", active[0].ID)
	}
}

func TestActiveQuestionsEmptyOverrideDoesNotSkip(t *testing.T) {
	snapshot := snapshotWith(func(s *Snapshot) {
		s.Meta.Overrides[FieldProjectName] = ""
	})
	active := ActiveQuestions(wizardQuestions(), snapshot)
	if len(active) != 3 {
		t.Fatalf("expected cleared override to keep the question, got %d", len(active))
	}
}

func TestActiveQuestionsOtherAnsweredFieldsPassThrough(t *testing.T) {
	// The carve-out is a single-field rule: answering any other question never
	// removes it from the list.
	snapshot := snapshotWith(func(s *Snapshot) {
		s.Meta.Overrides[FieldIndustry] = "finance"
		s.Meta.Overrides["tone"] = "friendly"
	})
	active := ActiveQuestions(wizardQuestions(), snapshot)
	if len(active) != 3 {
		t.Fatalf("expected answered non-name questions to pass through, got %d", len(active))
	}
}

func TestQuestionValidate(t *testing.T) {
	if err := (Question{ID: "q", Kind: InputText}).Validate(); err == nil {
		t.Fatalf("expected error for missing field")
	}
	bad := Question{ID: "q", Field: "tone", TopLevel: true, AdditionalContext: true}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for conflicting placement flags")
	}
	good := Question{ID: "q", Field: "tone", AdditionalContext: true}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuestionValueUsesPlacement(t *testing.T) {
	snapshot := snapshotWith(func(s *Snapshot) {
		s.AdditionalContext["tone"] = "friendly"
	})
	question := Question{Field: "tone", AdditionalContext: true}
	if value, ok := question.Value(snapshot); !ok || value != "friendly" {
		t.Fatalf("expected placement-aware lookup, got %v ok=%t", value, ok)
	}
}
