package syntactix

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseConfig_StrictMode_UnknownKeys(t *testing.T) {
	configContent := `
lexer:
  keep_line_endings: false
  unknown_lexer_key: true
`

	_, err := ParseConfig([]byte(configContent))
	assert.Error(t, err, "expected error for unknown keys in strict mode")
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "invalid color",
			content: "diagnostics:\n  color: sometimes\n",
			message: "diagnostics.color 'sometimes' is invalid",
		},
		{
			name:    "invalid format",
			content: "output:\n  format: xml\n",
			message: "output.format 'xml' is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.content))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigValidation))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
