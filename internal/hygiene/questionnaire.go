// Package hygiene implements the digital-hygiene questionnaire: a versioned
// question catalog, the scoring of complete submissions into weighted
// category scores and the derivation of prioritized remediation plans.
package hygiene

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"guardian/pkg/domain"
)

//go:embed questionnaire.json
var defaultQuestionnaire []byte

// DefaultQuestionnaire returns the built-in questionnaire definition.
func DefaultQuestionnaire() (domain.Questionnaire, error) {
	return parseQuestionnaire(defaultQuestionnaire)
}

// LoadQuestionnaire reads a questionnaire definition from a JSON file,
// allowing deployments to override the built-in catalog.
func LoadQuestionnaire(path string) (domain.Questionnaire, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Questionnaire{}, fmt.Errorf("could not read questionnaire file: %w", err)
	}

	return parseQuestionnaire(b)
}

func parseQuestionnaire(b []byte) (domain.Questionnaire, error) {
	var q domain.Questionnaire
	if err := json.Unmarshal(b, &q); err != nil {
		return domain.Questionnaire{}, fmt.Errorf("could not decode questionnaire: %w", err)
	}
	if err := validateQuestionnaire(q); err != nil {
		return domain.Questionnaire{}, err
	}

	return q, nil
}

// validateQuestionnaire rejects definitions that could not be scored
// deterministically.
func validateQuestionnaire(q domain.Questionnaire) error {
	if q.Version == "" {
		return fmt.Errorf("questionnaire has no version")
	}
	if len(q.Categories) == 0 {
		return fmt.Errorf("questionnaire has no categories")
	}

	ids := make(map[string]struct{})
	for _, c := range q.Categories {
		if c.Name == "" {
			return fmt.Errorf("category without a name")
		}
		if c.Weight <= 0 {
			return fmt.Errorf("category %q has non-positive weight", c.Name)
		}
		if len(c.Questions) == 0 {
			return fmt.Errorf("category %q has no questions", c.Name)
		}
		for _, question := range c.Questions {
			if question.ID == "" {
				return fmt.Errorf("question without an id in category %q", c.Name)
			}
			if _, ok := ids[question.ID]; ok {
				return fmt.Errorf("duplicate question id %q", question.ID)
			}
			ids[question.ID] = struct{}{}
			if question.Category != c.Name {
				return fmt.Errorf("question %q tagged %q but listed under %q",
					question.ID, question.Category, c.Name)
			}
			if len(question.Options) < 2 {
				return fmt.Errorf("question %q needs at least two options", question.ID)
			}
			values := make(map[int]struct{}, len(question.Options))
			for _, o := range question.Options {
				if _, ok := values[o.Value]; ok {
					return fmt.Errorf("question %q has duplicate option value %d", question.ID, o.Value)
				}
				values[o.Value] = struct{}{}
				if o.Points < 0 || o.Points > 100 {
					return fmt.Errorf("question %q option %d has points outside 0-100", question.ID, o.Value)
				}
			}
		}
	}

	return nil
}
