package intake

import (
	"encoding/json"
)

// Trace captures provenance information for one field lookup across the
// precedence layers that could produce its effective value.
type Trace struct {
	Field  string       `json:"field"`
	Layers []Provenance `json:"layers"`
}

// Provenance details how a specific precedence layer contributed to a traced
// field.
type Provenance struct {
	Layer  string `json:"layer"`
	Value  any    `json:"value,omitempty"`
	Source Source `json:"source,omitempty"`
	Found  bool   `json:"found"`
}

// Layer names reported in traces, ordered strongest to weakest.
const (
	LayerOverride          = "user_override"
	LayerInferred          = "inferred"
	LayerAdditionalContext = "additional_context"
	LayerTopLevel          = "top_level"
)

// TraceValue probes every precedence layer ResolveValue would consult for
// field and reports what each one held. The first layer with Found true is the
// one that wins resolution. Placement layers the question does not use are
// omitted.
func TraceValue(snapshot Snapshot, field string, topLevel, additionalContext bool) Trace {
	trace := Trace{Field: field}

	value, found := snapshot.Meta.Overrides[field]
	trace.Layers = append(trace.Layers, Provenance{
		Layer:  LayerOverride,
		Value:  value,
		Source: SourceUser,
		Found:  found,
	})

	record, ok := snapshot.Meta.Inferred[field]
	probe := Provenance{Layer: LayerInferred, Source: SourceInferred}
	if ok && record.Value != nil {
		probe.Value = record.Value
		probe.Found = true
		switch record.Source {
		case InferenceSourceScraped, InferenceSourceHybrid:
			probe.Source = SourceScraped
		}
	}
	trace.Layers = append(trace.Layers, probe)

	if additionalContext {
		value, found = snapshot.AdditionalContext[field]
		trace.Layers = append(trace.Layers, Provenance{
			Layer: LayerAdditionalContext,
			Value: value,
			Found: found,
		})
	}
	if topLevel {
		value, found = snapshot.Fields[field]
		trace.Layers = append(trace.Layers, Provenance{
			Layer: LayerTopLevel,
			Value: value,
			Found: found,
		})
	}
	return trace
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated via
// ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
