package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorFormatting(t *testing.T) {
	err := NewParseError("themes.yaml", 4, io.ErrUnexpectedEOF)
	assert.Equal(t, "parse error: themes.yaml:4: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = NewParseError("themes.yaml", 0, io.ErrUnexpectedEOF)
	assert.Equal(t, "parse error: themes.yaml: unexpected EOF", err.Error())
}

func TestValidationErrorFormatting(t *testing.T) {
	err := NewValidationError("wrappers[0].name", "is required", nil)
	assert.Equal(t, "validation error: wrappers[0].name: is required", err.Error())

	err = NewValidationError("", "empty document", nil)
	assert.Equal(t, "validation error: empty document", err.Error())
}

func TestConfigurationErrorNamesReceivedType(t *testing.T) {
	err := NewUnsupportedTypeError("selector", 42)
	assert.Equal(t, "configuration error [selector]: unsupported type int", err.Error())
	assert.ErrorIs(t, err, ErrConfiguration)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "int", cfgErr.Received)
}

func TestConfigurationErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewConfigurationError("options", "invalid prop name", cause)
	assert.Equal(t, "configuration error [options]: invalid prop name: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNilReceivers(t *testing.T) {
	var parseErr *ParseError
	var valErr *ValidationError
	var cfgErr *ConfigurationError

	assert.Equal(t, "", parseErr.Error())
	assert.Nil(t, parseErr.Unwrap())
	assert.Equal(t, "", valErr.Error())
	assert.Nil(t, valErr.Unwrap())
	assert.Equal(t, "", cfgErr.Error())
	assert.Nil(t, cfgErr.Unwrap())
}
