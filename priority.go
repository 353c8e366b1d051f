package intake

import "strings"

// Choice is one entry in a picker option list.
type Choice struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// PriorityType distinguishes which upstream candidate a badge represents.
type PriorityType string

const (
	// PriorityUser badges the candidate the human supplied.
	PriorityUser PriorityType = "user"
	// PriorityInferred badges the candidate the AI pipeline proposed.
	PriorityInferred PriorityType = "inferred"
)

// PriorityBadge annotates one option value with the badge the picker renders
// next to it.
type PriorityBadge struct {
	Value string       `json:"value"`
	Type  PriorityType `json:"type"`
	Label string       `json:"label"`
}

// Descriptions and badge labels for synthesized entries.
const (
	userChoiceDescription     = "Your selection"
	inferredChoiceDescription = "AI recommendation"
	userBadgeLabel            = "From your description"
	inferredBadgeLabel        = "Recommended"
)

// PriorityOptions is the merged option list for a picker: candidate entries
// synthesized ahead of the static catalog, badge metadata, and the value the
// picker should preselect.
type PriorityOptions struct {
	Options  []Choice        `json:"options"`
	Badges   []PriorityBadge `json:"priority_meta"`
	Selected string          `json:"selected_value,omitempty"`
	// HasSelection distinguishes "preselect the empty string" from "nothing
	// to preselect".
	HasSelection bool `json:"-"`
}

// BuildPriorityOptions merges user- and AI-supplied candidates into a fresh
// copy of the static catalog. Candidates not already present (compared
// case-insensitively) are synthesized and prepended, user entry before
// inferred entry; candidates already in the catalog only gain a badge. The
// defaults are never reordered relative to each other and the input slice is
// never mutated.
//
// The preselected value is the user candidate when provided, else the inferred
// candidate, else currentValue when it is a string. Non-string currentValue is
// silently excluded rather than coerced.
func BuildPriorityOptions(defaults []Choice, userValue, inferredValue string, currentValue any) PriorityOptions {
	seen := make(normalizedSet, len(defaults)+2)
	for _, choice := range defaults {
		seen.add(choice.Value)
	}

	var synthesized []Choice
	var badges []PriorityBadge

	if userValue != "" {
		if !seen.has(userValue) {
			synthesized = append(synthesized, Choice{
				Value:       userValue,
				Label:       userValue,
				Description: userChoiceDescription,
			})
			seen.add(userValue)
		}
		badges = append(badges, PriorityBadge{
			Value: userValue,
			Type:  PriorityUser,
			Label: userBadgeLabel,
		})
	}

	if inferredValue != "" && inferredValue != userValue {
		if !seen.has(inferredValue) {
			synthesized = append(synthesized, Choice{
				Value:       inferredValue,
				Label:       inferredValue,
				Description: inferredChoiceDescription,
			})
			seen.add(inferredValue)
		}
		badges = append(badges, PriorityBadge{
			Value: inferredValue,
			Type:  PriorityInferred,
			Label: inferredBadgeLabel,
		})
	}

	options := make([]Choice, 0, len(synthesized)+len(defaults))
	options = append(options, synthesized...)
	options = append(options, defaults...)

	result := PriorityOptions{
		Options: options,
		Badges:  badges,
	}
	switch {
	case userValue != "":
		result.Selected = userValue
		result.HasSelection = true
	case inferredValue != "":
		result.Selected = inferredValue
		result.HasSelection = true
	default:
		if text, ok := currentValue.(string); ok {
			result.Selected = text
			result.HasSelection = true
		}
	}
	return result
}

// normalizedSet is a case-insensitive membership set. De-duplication goes
// through this type so the invariant holds as catalogs grow.
type normalizedSet map[string]struct{}

func (s normalizedSet) add(value string) {
	s[strings.ToLower(value)] = struct{}{}
}

func (s normalizedSet) has(value string) bool {
	_, ok := s[strings.ToLower(value)]
	return ok
}
