package intake

import "testing"

func TestTraceValueReportsAllLayers(t *testing.T) {
	snapshot := snapshotWith(func(s *Snapshot) {
		s.Meta.Inferred["industry"] = Inference{Value: "finance", Source: InferenceSourceScraped}
		s.Fields["industry"] = "health"
	})

	trace := TraceValue(snapshot, "industry", true, false)
	if trace.Field != "industry" {
		t.Fatalf("unexpected field %q", trace.Field)
	}
	if len(trace.Layers) != 3 {
		t.Fatalf("expected override, inferred, and top-level probes, got %d", len(trace.Layers))
	}
	if trace.Layers[0].Layer != LayerOverride || trace.Layers[0].Found {
		t.Fatalf("expected empty override probe, got %+v", trace.Layers[0])
	}
	if !trace.Layers[1].Found || trace.Layers[1].Value != "finance" || trace.Layers[1].Source != SourceScraped {
		t.Fatalf("expected scraped inference probe, got %+v", trace.Layers[1])
	}
	if trace.Layers[2].Layer != LayerTopLevel || !trace.Layers[2].Found {
		t.Fatalf("expected top-level probe found, got %+v", trace.Layers[2])
	}
}

func TestTraceValueOmitsUnusedPlacements(t *testing.T) {
	trace := TraceValue(NewSnapshot(), "tone", false, false)
	if len(trace.Layers) != 2 {
		t.Fatalf("expected only override and inferred probes, got %d", len(trace.Layers))
	}
}

func TestTraceJSONRoundTrip(t *testing.T) {
	snapshot := snapshotWith(func(s *Snapshot) {
		s.Meta.Overrides["tone"] = "friendly"
	})
	trace := TraceValue(snapshot, "tone", false, true)

	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	restored, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if restored.Field != trace.Field || len(restored.Layers) != len(trace.Layers) {
		t.Fatalf("round trip mismatch: %+v vs %+v", restored, trace)
	}
	if !restored.Layers[0].Found || restored.Layers[0].Value != "friendly" {
		t.Fatalf("expected override probe preserved, got %+v", restored.Layers[0])
	}
}
