package intake

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeSnapshotSplitsSections(t *testing.T) {
	payload := map[string]any{
		"project_name": "Acme",
		"industry":     "finance",
		"additional_context": map[string]any{
			"tone": "friendly",
		},
		"crm_data": map[string]any{
			"industry": "finance",
		},
		"project_meta": map[string]any{
			"user_overrides": map[string]any{
				"design_style": "modern",
			},
			"inferred": map[string]any{
				"tone": map[string]any{
					"value":      "friendly",
					"confidence": 0.7,
					"source":     "llm",
					"rationale":  "Derived from description",
				},
			},
		},
	}

	snapshot, err := DecodeSnapshot("p-1", payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snapshot.Fields["project_name"] != "Acme" || snapshot.Fields["industry"] != "finance" {
		t.Fatalf("unexpected fields: %v", snapshot.Fields)
	}
	if _, leaked := snapshot.Fields["additional_context"]; leaked {
		t.Fatalf("section key leaked into fields")
	}
	if snapshot.AdditionalContext["tone"] != "friendly" {
		t.Fatalf("unexpected additional context: %v", snapshot.AdditionalContext)
	}
	if snapshot.CRM["industry"] != "finance" {
		t.Fatalf("unexpected crm section: %v", snapshot.CRM)
	}
	if snapshot.Meta.Overrides["design_style"] != "modern" {
		t.Fatalf("unexpected overrides: %v", snapshot.Meta.Overrides)
	}
	record := snapshot.Meta.Inferred["tone"]
	if record.Value != "friendly" || record.Confidence != 0.7 || record.Source != InferenceSourceLLM {
		t.Fatalf("unexpected inference record: %+v", record)
	}
}

func TestDecodeSnapshotNormalisesAliases(t *testing.T) {
	payload := map[string]any{
		"name":   "Acme",
		"colors": "charcoal",
		"project_meta": map[string]any{
			"user_overrides": map[string]any{
				"style":  "modern",
				"colors": "ivory",
			},
			"inferred": map[string]any{
				"name": map[string]any{"value": "Acme Studio"},
			},
		},
	}

	snapshot, err := DecodeSnapshot("p-1", payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snapshot.Fields[FieldProjectName] != "Acme" {
		t.Fatalf("expected canonical project_name, got %v", snapshot.Fields)
	}
	if _, stale := snapshot.Fields["name"]; stale {
		t.Fatalf("expected alias key removed")
	}
	if !reflect.DeepEqual(snapshot.Fields[FieldBrandColors], []any{"charcoal"}) {
		t.Fatalf("expected promoted color list, got %v", snapshot.Fields[FieldBrandColors])
	}
	if snapshot.Meta.Overrides[FieldDesignStyle] != "modern" {
		t.Fatalf("expected canonical override, got %v", snapshot.Meta.Overrides)
	}
	if !reflect.DeepEqual(snapshot.Meta.Overrides[FieldBrandColors], []any{"ivory"}) {
		t.Fatalf("expected promoted override color list, got %v", snapshot.Meta.Overrides[FieldBrandColors])
	}
	if record := snapshot.Meta.Inferred[FieldProjectName]; record.Value != "Acme Studio" {
		t.Fatalf("expected canonical inference key, got %v", snapshot.Meta.Inferred)
	}
}

func TestDecodeSnapshotAliasNeverOverwritesCanonical(t *testing.T) {
	payload := map[string]any{
		"name":         "Legacy",
		"project_name": "Canonical",
	}
	snapshot, err := DecodeSnapshot("p-1", payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snapshot.Fields[FieldProjectName] != "Canonical" {
		t.Fatalf("expected canonical value kept, got %v", snapshot.Fields[FieldProjectName])
	}
}

func TestDecodeSnapshotBareInferredValue(t *testing.T) {
	payload := map[string]any{
		"project_meta": map[string]any{
			"inferred": map[string]any{
				"tone": "friendly",
			},
		},
	}
	snapshot, err := DecodeSnapshot("p-1", payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	record := snapshot.Meta.Inferred["tone"]
	if record.Value != "friendly" || record.Source != "" {
		t.Fatalf("expected bare value wrapped, got %+v", record)
	}
}

func TestDecodeSnapshotRejectsMalformedSections(t *testing.T) {
	cases := map[string]map[string]any{
		"additional context": {"additional_context": "not a map"},
		"crm":                {"crm_data": []any{"not", "a", "map"}},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshot("p-err", payload)
			if err == nil {
				t.Fatalf("expected decode error")
			}
			if !strings.Contains(err.Error(), "p-err") {
				t.Fatalf("expected project id in error, got %v", err)
			}
		})
	}
}

func TestDecodeSnapshotDoesNotMutateInput(t *testing.T) {
	payload := map[string]any{
		"name": "Acme",
	}
	if _, err := DecodeSnapshot("p-1", payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["name"] != "Acme" {
		t.Fatalf("expected caller payload untouched, got %v", payload)
	}
	if _, renamed := payload["project_name"]; renamed {
		t.Fatalf("expected alias rewrite on the clone only")
	}
}

func TestDecodeSnapshotEmptyPayload(t *testing.T) {
	snapshot, err := DecodeSnapshot("p-1", map[string]any{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(snapshot.Fields) != 0 || len(snapshot.Meta.Overrides) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snapshot)
	}
	// Sub-maps come back allocated so resolution can run immediately.
	if snapshot.Meta.Inferred == nil || snapshot.AdditionalContext == nil {
		t.Fatalf("expected allocated sub-maps")
	}
}
