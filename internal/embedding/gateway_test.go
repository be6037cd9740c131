package embedding

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		expected string
	}{
		{"Short text untouched", "hello", 10, "hello"},
		{"Exact length untouched", "hello", 5, "hello"},
		{"Long text cut", "hello world", 5, "hello"},
		{"Zero max empties", "hello", 0, ""},
		{"Multibyte runes not split", "héllo", 2, "hé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.text, tt.max))
		})
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "")
	assert.Error(t, err, "absence of credentials is detected before any network call")
}

func TestGatewayErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := &GatewayError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.True(t, strings.Contains(err.Error(), "embedding gateway"))
}
