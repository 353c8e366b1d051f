package intake

// Canonical field names used across the wizard. The CRM carve-out and the
// activation filter key off these.
const (
	FieldProjectName = "project_name"
	FieldIndustry    = "industry"
	FieldDesignStyle = "design_style"
	FieldBrandColors = "brand_colors"
)

// fieldAliases maps legacy wire names onto canonical field names. Older
// enrichment payloads used the short forms.
var fieldAliases = map[string]string{
	"name":   FieldProjectName,
	"colors": FieldBrandColors,
	"style":  FieldDesignStyle,
}

// CanonicalField normalises a field name, translating legacy aliases onto the
// canonical names the snapshot stores.
func CanonicalField(field string) string {
	if canonical, ok := fieldAliases[field]; ok {
		return canonical
	}
	return field
}

// ResolveValue computes the effective value for field. The fallthrough is
// fixed: user override (existence check, so an explicit empty string still
// wins) > inference record with a defined value > additional-context entry
// when the field is placed there > top-level entry when the field is placed
// there. Absence is (nil, false), never an error.
func ResolveValue(snapshot Snapshot, field string, topLevel, additionalContext bool) (any, bool) {
	if value, ok := snapshot.Meta.Overrides[field]; ok {
		return value, true
	}
	if record, ok := snapshot.Meta.Inferred[field]; ok && record.Value != nil {
		return record.Value, true
	}
	if additionalContext {
		if value, ok := snapshot.AdditionalContext[field]; ok {
			return value, true
		}
	}
	if topLevel {
		if value, ok := snapshot.Fields[field]; ok {
			return value, true
		}
	}
	return nil, false
}

// ResolveSource classifies the provenance of field. The check order is fixed:
//
//  1. user — the override exists and is non-empty. Stricter than ResolveValue:
//     a user-cleared field still resolves to its override value but does not
//     classify as user-sourced here.
//  2. crm — only for the three directory-backed fields, when the mapped CRM
//     key is present and truthy. CRM data is never read by ResolveValue; the
//     asymmetry is deliberate.
//  3. scraped — research_data or scrape_summary carry the field, or the
//     inference record tags itself scraped or hybrid.
//  4. inferred — an inference record exists with a defined value.
//
// When nothing matches the classifier falls back to SourceInferred.
func ResolveSource(field string, snapshot Snapshot) Source {
	if HasUserProvidedValue(snapshot, field) {
		return SourceUser
	}
	if crmKey, ok := crmKeys[field]; ok && truthy(snapshot.CRM[crmKey]) {
		return SourceCRM
	}
	if nestedTruthy(snapshot.AdditionalContext, researchDataKey, field) ||
		nestedTruthy(snapshot.AdditionalContext, scrapeSummaryKey, field) {
		return SourceScraped
	}
	if record, ok := snapshot.Meta.Inferred[field]; ok {
		switch record.Source {
		case InferenceSourceScraped, InferenceSourceHybrid:
			return SourceScraped
		}
		if record.Value != nil {
			return SourceInferred
		}
	}
	return SourceInferred
}

// HasUserProvidedValue reports whether the user supplied a non-empty override
// for field. Nil values and explicit empty strings do not count.
func HasUserProvidedValue(snapshot Snapshot, field string) bool {
	value, ok := snapshot.Meta.Overrides[field]
	if !ok || value == nil {
		return false
	}
	if text, isString := value.(string); isString && text == "" {
		return false
	}
	return true
}

// InferredWithMeta returns the full inference record for field, but only when
// the record carries a defined value. Presentation code uses it to surface
// confidence and rationale; the resolvers above only read value and source.
func InferredWithMeta(snapshot Snapshot, field string) (Inference, bool) {
	record, ok := snapshot.Meta.Inferred[field]
	if !ok || record.Value == nil {
		return Inference{}, false
	}
	return record, true
}
