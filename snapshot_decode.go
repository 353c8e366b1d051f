package intake

import (
	"fmt"

	"github.com/goliatone/go-intake/internal/hydrate"
)

// Section keys on the wire payload. Every other top-level key is a field
// stored directly on the project record.
const (
	payloadMetaKey    = "project_meta"
	payloadContextKey = "additional_context"
	payloadCRMKey     = "crm_data"
	overridesKey      = "user_overrides"
	inferredKey       = "inferred"
)

var snapshotDecoder = hydrate.NewDecoder[Snapshot](
	hydrate.WithPreHook[Snapshot](normalizePayloadAliases),
	hydrate.WithCustomDecoder[Snapshot](decodeSnapshotPayload),
)

// DecodeSnapshot converts a refreshed wire payload, as returned by the
// persistence client, into a Snapshot. Legacy field aliases are normalised and
// a bare string under brand_colors is promoted to a one-element list before
// decoding.
func DecodeSnapshot(projectID string, payload map[string]any) (Snapshot, error) {
	return snapshotDecoder.Decode(hydrate.Context{ProjectID: projectID}, payload)
}

// normalizePayloadAliases rewrites legacy wire names (name, colors, style)
// onto canonical field names wherever field keys appear: the record root, the
// override map, and the inference map.
func normalizePayloadAliases(_ hydrate.Context, payload map[string]any) (map[string]any, error) {
	renameAliases(payload)
	if meta, ok := payload[payloadMetaKey].(map[string]any); ok {
		if overrides, ok := meta[overridesKey].(map[string]any); ok {
			renameAliases(overrides)
			coerceColorList(overrides)
		}
		if inferred, ok := meta[inferredKey].(map[string]any); ok {
			renameAliases(inferred)
		}
	}
	coerceColorList(payload)
	return payload, nil
}

func renameAliases(section map[string]any) {
	for alias, canonical := range fieldAliases {
		value, ok := section[alias]
		if !ok {
			continue
		}
		if _, taken := section[canonical]; !taken {
			section[canonical] = value
		}
		delete(section, alias)
	}
}

func coerceColorList(section map[string]any) {
	if text, ok := section[FieldBrandColors].(string); ok {
		section[FieldBrandColors] = []any{text}
	}
}

func decodeSnapshotPayload(ctx hydrate.Context, payload map[string]any) (Snapshot, error) {
	snapshot := NewSnapshot()

	for key, value := range payload {
		switch key {
		case payloadMetaKey, payloadContextKey, payloadCRMKey:
			continue
		}
		snapshot.Fields[key] = value
	}

	if raw, ok := payload[payloadContextKey]; ok {
		section, ok := raw.(map[string]any)
		if !ok {
			return Snapshot{}, fmt.Errorf("project %q: additional_context is not a map", ctx.ProjectID)
		}
		for key, value := range section {
			snapshot.AdditionalContext[key] = value
		}
	}

	if raw, ok := payload[payloadCRMKey]; ok {
		section, ok := raw.(map[string]any)
		if !ok {
			return Snapshot{}, fmt.Errorf("project %q: crm_data is not a map", ctx.ProjectID)
		}
		for key, value := range section {
			snapshot.CRM[key] = value
		}
	}

	meta, ok := payload[payloadMetaKey].(map[string]any)
	if !ok {
		return snapshot, nil
	}
	if overrides, ok := meta[overridesKey].(map[string]any); ok {
		for key, value := range overrides {
			snapshot.Meta.Overrides[key] = value
		}
	}
	if inferred, ok := meta[inferredKey].(map[string]any); ok {
		for field, raw := range inferred {
			record, ok := raw.(map[string]any)
			if !ok {
				// Bare inferred values appear in older payloads.
				snapshot.Meta.Inferred[field] = Inference{Value: raw}
				continue
			}
			snapshot.Meta.Inferred[field] = decodeInference(record)
		}
	}
	return snapshot, nil
}

func decodeInference(record map[string]any) Inference {
	inference := Inference{Value: record["value"]}
	if confidence, ok := record["confidence"].(float64); ok {
		inference.Confidence = confidence
	}
	if source, ok := record["source"].(string); ok {
		inference.Source = source
	}
	if rationale, ok := record["rationale"].(string); ok {
		inference.Rationale = rationale
	}
	return inference
}
