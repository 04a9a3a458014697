package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Var: "SERVER_PORT", Reason: "must be a positive integer, got \"abc\""},
		{Var: "DB_HOST", Reason: "is required"},
	}}

	assert.Equal(t,
		"configuration validation failed: SERVER_PORT must be a positive integer, got \"abc\"; DB_HOST is required",
		err.Error())
}

func TestFieldError_String(t *testing.T) {
	f := FieldError{Var: "SERVER_ENV", Reason: "must be one of: development, production"}
	assert.Equal(t, "SERVER_ENV must be one of: development, production", f.String())
}
