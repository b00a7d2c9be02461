package config

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g. "filter.placeholder_pattern").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any rule fails. All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Tokenizer.ContinuationMarker == "" {
		errs = append(errs, FieldError{
			Field:   "tokenizer.continuation_marker",
			Message: "must not be empty",
		})
	}

	if cfg.Filter.PlaceholderPattern == "" {
		errs = append(errs, FieldError{
			Field:   "filter.placeholder_pattern",
			Message: "must not be empty",
		})
	} else if _, err := regexp.Compile(cfg.Filter.PlaceholderPattern); err != nil {
		errs = append(errs, FieldError{
			Field:   "filter.placeholder_pattern",
			Message: fmt.Sprintf("invalid regular expression: %v", err),
		})
	}

	if cfg.Compare.MaxExamples < 1 {
		errs = append(errs, FieldError{
			Field:   "compare.max_examples",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Compare.MaxExamples),
		})
	}

	if cfg.Watch.DebounceInterval < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce_interval",
			Message: "must not be negative",
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
