package intake

import (
	"errors"
	"fmt"
)

// InputKind identifies which picker the UI renders for a question.
type InputKind string

const (
	InputText        InputKind = "text"
	InputSelect      InputKind = "select"
	InputMultiSelect InputKind = "multi_select"
	InputColorSet    InputKind = "color_set"
	InputStyle       InputKind = "style_gallery"
	InputFontPairing InputKind = "font_pairing"
	InputPageSet     InputKind = "page_set"
)

var (
	// ErrQuestionField indicates a question definition without a field name.
	ErrQuestionField = errors.New("intake: question field must be provided")
	// ErrQuestionPlacement indicates a question claiming both placements.
	ErrQuestionPlacement = errors.New("intake: question placement flags are mutually exclusive")
)

// Question is the static, immutable definition of one wizard field. Exactly
// one placement flag (or neither, meaning override-only) decides which part of
// the snapshot holds the field.
type Question struct {
	ID       string    `json:"id" yaml:"id"`
	Field    string    `json:"field" yaml:"field"`
	Label    string    `json:"label" yaml:"label"`
	Kind     InputKind `json:"kind" yaml:"kind"`
	Options  []Choice  `json:"options,omitempty" yaml:"options,omitempty"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`

	// TopLevel places the field directly on the project record.
	TopLevel bool `json:"top_level,omitempty" yaml:"top_level,omitempty"`
	// AdditionalContext places the field under the auxiliary context map.
	AdditionalContext bool `json:"additional_context,omitempty" yaml:"additional_context,omitempty"`
}

// Validate checks the definition is internally consistent.
func (q Question) Validate() error {
	if q.Field == "" {
		return fmt.Errorf("%w: question %q", ErrQuestionField, q.ID)
	}
	if q.TopLevel && q.AdditionalContext {
		return fmt.Errorf("%w: field %q", ErrQuestionPlacement, q.Field)
	}
	return nil
}

// Value resolves the question's effective value against snapshot using its
// placement flags.
func (q Question) Value(snapshot Snapshot) (any, bool) {
	return ResolveValue(snapshot, q.Field, q.TopLevel, q.AdditionalContext)
}

// ActiveQuestions filters questions against snapshot, preserving order. The
// only exclusion is the primary-name question once the user has answered it;
// this is a literal single-field carve-out, not a general skip-if-answered
// mechanism.
func ActiveQuestions(questions []Question, snapshot Snapshot) []Question {
	active := make([]Question, 0, len(questions))
	for _, question := range questions {
		if question.Field == FieldProjectName && HasUserProvidedValue(snapshot, question.Field) {
			continue
		}
		active = append(active, question)
	}
	return active
}
