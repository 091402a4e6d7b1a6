package views

import (
	"fmt"
	"sort"
	"strings"
)

// FieldRule declares how one form field is handled before submission.
// Validation rules are data, not conditionals scattered across handlers.
type FieldRule struct {
	Trim     bool
	Required bool
}

// FormSchema maps field names to their rules.
type FormSchema map[string]FieldRule

// Clean applies trimming and presence checks, returning the cleaned values.
// Only fields declared in the schema are kept.
func (s FormSchema) Clean(values map[string]string) (map[string]string, error) {
	cleaned := make(map[string]string, len(s))

	fields := make([]string, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		rule := s[field]
		value := values[field]
		if rule.Trim {
			value = strings.TrimSpace(value)
		}
		if rule.Required && value == "" {
			return nil, fmt.Errorf("%s is required", field)
		}
		cleaned[field] = value
	}

	return cleaned, nil
}
