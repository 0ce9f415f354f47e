package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"longer than threshold keeps four-char prefix", "user1234567", "user****"},
		{"exactly at threshold keeps whole input", "abcd", "abcd****"},
		{"shorter than threshold keeps whole input", "ab", "ab****"},
		{"single character", "a", "a****"},
		{"empty input unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserID(tt.input))
		})
	}
}

func TestUserName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"longer than threshold keeps two-char prefix", "alice", "al****"},
		{"exactly at threshold keeps whole input", "al", "al****"},
		{"shorter than threshold keeps whole input", "a", "a****"},
		{"empty input unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserName(tt.input))
		})
	}
}

func TestMaskingIsDeterministic(t *testing.T) {
	inputs := []string{"", "u", "user", "user1234567", "日本語のなまえ"}

	for _, in := range inputs {
		assert.Equal(t, UserID(in), UserID(in))
		assert.Equal(t, UserName(in), UserName(in))
	}
}

func TestMaskingCountsRunes(t *testing.T) {
	// Multi-byte input must be cut on rune boundaries, not bytes.
	assert.Equal(t, "日本語の****", UserID("日本語のなまえ"))
	assert.Equal(t, "日本****", UserName("日本語のなまえ"))
}
