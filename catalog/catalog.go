// Package catalog loads the static question catalog the wizard renders. The
// catalog is plain configuration: the core intake package takes it as a
// parameter and never owns or mutates it.
package catalog

import (
	"fmt"
	"io"

	intake "github.com/goliatone/go-intake"
	"gopkg.in/yaml.v3"
)

type document struct {
	Questions []intake.Question `yaml:"questions"`
}

// Load reads a YAML catalog document and returns its validated question list
// in declaration order.
func Load(r io.Reader) ([]intake.Question, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return Parse(payload)
}

// Parse decodes a YAML catalog document.
func Parse(payload []byte) ([]intake.Question, error) {
	var doc document
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("catalog: document declares no questions")
	}

	seen := make(map[string]struct{}, len(doc.Questions))
	for _, question := range doc.Questions {
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := seen[question.Field]; dup {
			return nil, fmt.Errorf("catalog: duplicate question for field %q", question.Field)
		}
		seen[question.Field] = struct{}{}
	}
	return doc.Questions, nil
}

// Default returns the built-in wizard catalog. Callers needing a different
// question set load their own document via Load.
func Default() []intake.Question {
	return []intake.Question{
		{
			ID:       "q-project-name",
			Field:    intake.FieldProjectName,
			Label:    "What is your business called?",
			Kind:     intake.InputText,
			Required: true,
			TopLevel: true,
		},
		{
			ID:       "q-industry",
			Field:    intake.FieldIndustry,
			Label:    "Which industry are you in?",
			Kind:     intake.InputSelect,
			Required: true,
			TopLevel: true,
			Options: []intake.Choice{
				{Value: "restaurant", Label: "Restaurant", Description: "Food and hospitality"},
				{Value: "retail", Label: "Retail", Description: "Shops and e-commerce"},
				{Value: "finance", Label: "Finance", Description: "Banking, advisory, fintech"},
				{Value: "health", Label: "Health & Wellness", Description: "Clinics, coaching, fitness"},
				{Value: "creative", Label: "Creative Services", Description: "Studios, agencies, portfolios"},
			},
		},
		{
			ID:       "q-design-style",
			Field:    intake.FieldDesignStyle,
			Label:    "Pick a design direction",
			Kind:     intake.InputStyle,
			TopLevel: true,
			Options: []intake.Choice{
				{Value: "minimalist", Label: "Minimalist", Description: "Clean layouts, generous whitespace"},
				{Value: "modern", Label: "Modern", Description: "Bold type, strong contrast"},
				{Value: "classic", Label: "Classic", Description: "Serif type, editorial feel"},
				{Value: "playful", Label: "Playful", Description: "Rounded shapes, bright accents"},
			},
		},
		{
			ID:       "q-brand-colors",
			Field:    intake.FieldBrandColors,
			Label:    "Choose your brand colors",
			Kind:     intake.InputColorSet,
			TopLevel: true,
			Options: []intake.Choice{
				{Value: "charcoal", Label: "Charcoal"},
				{Value: "ivory", Label: "Ivory"},
				{Value: "forest", Label: "Forest Green"},
				{Value: "cobalt", Label: "Cobalt"},
				{Value: "terracotta", Label: "Terracotta"},
			},
		},
		{
			ID:                "q-tone",
			Field:             "tone",
			Label:             "How should your copy sound?",
			Kind:              intake.InputSelect,
			AdditionalContext: true,
			Options: []intake.Choice{
				{Value: "professional", Label: "Professional"},
				{Value: "friendly", Label: "Friendly"},
				{Value: "bold", Label: "Bold"},
			},
		},
		{
			ID:                "q-font-pairing",
			Field:             "font_pairing",
			Label:             "Pick a font pairing",
			Kind:              intake.InputFontPairing,
			AdditionalContext: true,
			Options: []intake.Choice{
				{Value: "inter-lora", Label: "Inter + Lora"},
				{Value: "poppins-merriweather", Label: "Poppins + Merriweather"},
				{Value: "space-grotesk-ibm-plex", Label: "Space Grotesk + IBM Plex Serif"},
			},
		},
		{
			ID:                "q-selected-pages",
			Field:             "selected_pages",
			Label:             "Which pages does your site need?",
			Kind:              intake.InputPageSet,
			AdditionalContext: true,
			Options: []intake.Choice{
				{Value: "home", Label: "Home"},
				{Value: "about", Label: "About"},
				{Value: "services", Label: "Services"},
				{Value: "contact", Label: "Contact"},
				{Value: "blog", Label: "Blog"},
			},
		},
	}
}
