// Package intake resolves field values, provenance, and picker options for a
// guided intake wizard. Every entry point is a pure function over an immutable
// Snapshot; callers fetch a fresh snapshot per render cycle and the package
// never writes back.
package intake

// Snapshot is the read-only project state every resolution call operates on.
// All sub-maps are present-but-possibly-empty; lookups report absence through
// ok booleans rather than sentinel values.
type Snapshot struct {
	// Fields holds the last persisted value for fields classified as
	// top-level on the project record (project_name, industry, design_style,
	// brand_colors, ...).
	Fields map[string]any `json:"fields"`

	// AdditionalContext holds auxiliary fields not modeled as top-level
	// (selected_pages, tone, ...) plus the nested research_data and
	// scrape_summary maps used for provenance classification.
	AdditionalContext map[string]any `json:"additional_context"`

	// CRM holds the record fetched from a connected business directory.
	// Presence of a key implies CRM provenance regardless of value equality
	// with other sources.
	CRM map[string]any `json:"crm_data"`

	// Meta carries the enrichment layer: explicit user overrides and the
	// machine-inferred candidates produced upstream.
	Meta ProjectMeta `json:"project_meta"`
}

// ProjectMeta is the enrichment section of a snapshot.
type ProjectMeta struct {
	// Overrides maps field name to the value a human explicitly entered.
	// Highest resolution priority.
	Overrides map[string]any `json:"user_overrides"`

	// Inferred maps field name to the inference record proposed upstream.
	Inferred map[string]Inference `json:"inferred"`
}

// Inference is one machine-inferred candidate with its metadata. The record is
// opaque input: this package reads Value and Source, presentation code reads
// the rest.
type Inference struct {
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence,omitempty"`
	Source     string  `json:"source,omitempty"`
	Rationale  string  `json:"rationale,omitempty"`
}

// Inference source tags produced by the upstream enrichment pipeline.
const (
	InferenceSourceLLM     = "llm"
	InferenceSourceScraped = "scraped"
	InferenceSourceHybrid  = "hybrid"
	InferenceSourceDefault = "default"
)

// Names of the nested AdditionalContext maps consulted for scrape provenance.
const (
	researchDataKey  = "research_data"
	scrapeSummaryKey = "scrape_summary"
)

// NewSnapshot returns an empty snapshot with all sub-maps allocated so callers
// can populate it incrementally without nil checks.
func NewSnapshot() Snapshot {
	return Snapshot{
		Fields:            map[string]any{},
		AdditionalContext: map[string]any{},
		CRM:               map[string]any{},
		Meta: ProjectMeta{
			Overrides: map[string]any{},
			Inferred:  map[string]Inference{},
		},
	}
}

// Clone returns a deep-enough copy of the snapshot: every map this package
// reads is detached, so mutating the clone never leaks into the original.
// Values themselves are shared; resolution treats them as immutable.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Fields:            cloneValues(s.Fields),
		AdditionalContext: cloneValues(s.AdditionalContext),
		CRM:               cloneValues(s.CRM),
		Meta: ProjectMeta{
			Overrides: cloneValues(s.Meta.Overrides),
			Inferred:  make(map[string]Inference, len(s.Meta.Inferred)),
		},
	}
	for field, record := range s.Meta.Inferred {
		out.Meta.Inferred[field] = record
	}
	return out
}

// Binding exposes the snapshot sections as a map suitable for rule evaluator
// environments. Inference records are flattened to plain maps so every engine
// backend can traverse them.
func (s Snapshot) Binding() map[string]any {
	inferred := make(map[string]any, len(s.Meta.Inferred))
	for field, record := range s.Meta.Inferred {
		inferred[field] = map[string]any{
			"value":      record.Value,
			"confidence": record.Confidence,
			"source":     record.Source,
			"rationale":  record.Rationale,
		}
	}
	return map[string]any{
		"fields":    cloneValues(s.Fields),
		"context":   cloneValues(s.AdditionalContext),
		"crm":       cloneValues(s.CRM),
		"overrides": cloneValues(s.Meta.Overrides),
		"inferred":  inferred,
	}
}

func cloneValues(origin map[string]any) map[string]any {
	out := make(map[string]any, len(origin))
	for key, value := range origin {
		out[key] = value
	}
	return out
}

// truthy mirrors the upstream pipeline's loose presence check: nil, empty
// strings, empty collections, false, and numeric zero all read as absent.
func truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case []any:
		return len(typed) > 0
	case []string:
		return len(typed) > 0
	case map[string]any:
		return len(typed) > 0
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case float64:
		return typed != 0
	default:
		return true
	}
}

// nestedTruthy reports whether container[section][field] is present and truthy.
func nestedTruthy(container map[string]any, section, field string) bool {
	raw, ok := container[section]
	if !ok {
		return false
	}
	nested, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	return truthy(nested[field])
}
