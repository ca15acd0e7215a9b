package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeQuotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no quotes", "plain text", "plain text"},
		{"single quote pair", `say "hello"`, `say \"hello\"`},
		{"already escaped stays escaped again", `a \"b\"`, `a \\"b\\"`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeQuotes(tt.input))
		})
	}
}
