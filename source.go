package intake

// Source classifies which upstream system produced a field's effective value.
type Source string

const (
	// SourceUser marks a value the human explicitly entered.
	SourceUser Source = "user"
	// SourceCRM marks a value present in the connected business directory.
	SourceCRM Source = "crm"
	// SourceScraped marks a value lifted from a page scrape or research pass.
	SourceScraped Source = "scraped"
	// SourceInferred marks a value proposed by the AI enrichment pipeline. It
	// is also the fallback classification when no provenance tag applies.
	SourceInferred Source = "inferred"
)

func (s Source) String() string {
	return string(s)
}

// ParseSource converts a string representation into the corresponding Source.
// Unrecognised values map to SourceInferred, matching the classifier fallback.
func ParseSource(value string) Source {
	switch value {
	case "user", "USER":
		return SourceUser
	case "crm", "CRM":
		return SourceCRM
	case "scraped", "SCRAPED":
		return SourceScraped
	default:
		return SourceInferred
	}
}

// crmKeys maps the three directory-backed fields onto the key the CRM record
// stores them under. Only these fields ever classify as SourceCRM.
var crmKeys = map[string]string{
	FieldIndustry:    "industry",
	FieldBrandColors: "colors",
	FieldProjectName: "name",
}
