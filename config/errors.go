package config

import "strings"

// FieldError describes a single environment variable that failed validation.
type FieldError struct {
	Var    string // environment variable name
	Reason string
}

func (e FieldError) String() string {
	return e.Var + " " + e.Reason
}

// ValidationError is the error kind returned by Load when any configuration
// value is missing or invalid. It aggregates every failing variable so one
// failed startup attempt reveals all configuration problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "configuration validation failed: " + strings.Join(parts, "; ")
}
