package validator

import (
	"fmt"
	"strings"
)

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// InListCaseInsensitive compares after trimming surrounding whitespace.
func InListCaseInsensitive(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			for _, allowed := range allowedValues {
				if strings.EqualFold(v, allowed) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of (case-insensitive): %s", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list_case_insensitive",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// NotBlank validates that a string has non-whitespace content.
func NotBlank(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be blank",
			TranslationKey: "validation.not_blank",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
