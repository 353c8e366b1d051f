package intake

import (
	"reflect"
	"testing"
)

func TestAnswerTopLevelPlacement(t *testing.T) {
	snapshot := snapshotWith(func(s *Snapshot) {
		s.Meta.Inferred[FieldIndustry] = Inference{Value: "retail", Source: InferenceSourceLLM}
	})
	question := Question{Field: FieldIndustry, Kind: InputSelect, TopLevel: true}

	if err := Answer(&snapshot, question, "finance"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if snapshot.Meta.Overrides[FieldIndustry] != "finance" {
		t.Fatalf("expected override recorded, got %v", snapshot.Meta.Overrides[FieldIndustry])
	}
	if snapshot.Fields[FieldIndustry] != "finance" {
		t.Fatalf("expected top-level mirror, got %v", snapshot.Fields[FieldIndustry])
	}
	if _, ok := snapshot.Meta.Inferred[FieldIndustry]; ok {
		t.Fatalf("expected inference record cleared by user answer")
	}
	if source := ResolveSource(FieldIndustry, snapshot); source != SourceUser {
		t.Fatalf("expected user source after answer, got %s", source)
	}
}

func TestAnswerAdditionalContextPlacement(t *testing.T) {
	snapshot := NewSnapshot()
	question := Question{Field: "tone", Kind: InputSelect, AdditionalContext: true}

	if err := Answer(&snapshot, question, "friendly"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if snapshot.AdditionalContext["tone"] != "friendly" {
		t.Fatalf("expected additional-context mirror, got %v", snapshot.AdditionalContext["tone"])
	}
	if _, ok := snapshot.Fields["tone"]; ok {
		t.Fatalf("expected top-level record untouched")
	}
}

func TestAnswerOverrideOnlyPlacement(t *testing.T) {
	snapshot := NewSnapshot()
	question := Question{Field: "nickname", Kind: InputText}

	if err := Answer(&snapshot, question, "hq"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if snapshot.Meta.Overrides["nickname"] != "hq" {
		t.Fatalf("expected override recorded")
	}
	if len(snapshot.Fields) != 0 || len(snapshot.AdditionalContext) != 0 {
		t.Fatalf("expected no mirror for override-only question")
	}
}

func TestAnswerPromotesBrandColorString(t *testing.T) {
	snapshot := NewSnapshot()
	question := Question{Field: FieldBrandColors, Kind: InputColorSet, TopLevel: true}

	if err := Answer(&snapshot, question, "charcoal"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	want := []any{"charcoal"}
	if !reflect.DeepEqual(snapshot.Fields[FieldBrandColors], want) {
		t.Fatalf("expected promoted color list, got %v", snapshot.Fields[FieldBrandColors])
	}
}

func TestAnswerNormalisesLegacyFieldName(t *testing.T) {
	snapshot := NewSnapshot()
	question := Question{Field: "name", Kind: InputText, TopLevel: true}

	if err := Answer(&snapshot, question, "Acme"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if snapshot.Meta.Overrides[FieldProjectName] != "Acme" {
		t.Fatalf("expected canonical override key, got %v", snapshot.Meta.Overrides)
	}
}

func TestAnswerRejectsConflictingPlacement(t *testing.T) {
	snapshot := NewSnapshot()
	question := Question{Field: "tone", TopLevel: true, AdditionalContext: true}
	if err := Answer(&snapshot, question, "friendly"); err == nil {
		t.Fatalf("expected placement validation error")
	}
}

func TestUpdatePayloadStaysInLockStepWithAnswer(t *testing.T) {
	cases := []struct {
		name     string
		question Question
		value    any
		want     map[string]any
	}{
		{
			name:     "top level",
			question: Question{Field: FieldIndustry, TopLevel: true},
			value:    "finance",
			want: map[string]any{
				FieldIndustry: "finance",
				"project_meta": map[string]any{
					"user_overrides": map[string]any{FieldIndustry: "finance"},
				},
			},
		},
		{
			name:     "additional context",
			question: Question{Field: "tone", AdditionalContext: true},
			value:    "friendly",
			want: map[string]any{
				"additional_context": map[string]any{"tone": "friendly"},
				"project_meta": map[string]any{
					"user_overrides": map[string]any{"tone": "friendly"},
				},
			},
		},
		{
			name:     "override only",
			question: Question{Field: "nickname"},
			value:    "hq",
			want: map[string]any{
				"project_meta": map[string]any{
					"user_overrides": map[string]any{"nickname": "hq"},
				},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UpdatePayload(tc.question, tc.value)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("payload mismatch:\n got %v\nwant %v", got, tc.want)
			}
		})
	}
}
