package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello   World!", "hello-world"},
		{"diacritics", "Água Salgada", "agua-salgada"},
		{"underscores", "bilge_pump_2000", "bilge-pump-2000"},
		{"consecutive separators", "a  _  b", "a-b"},
		{"leading and trailing junk", "--Pumps--", "pumps"},
		{"cjk preserved", "舷外机 Outboard", "舷外机-outboard"},
		{"only junk", "!!!***", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestEnsure_CandidateWins(t *testing.T) {
	// A usable explicit slug is returned verbatim, no suffix.
	assert.Equal(t, "deck-winch", Ensure("Deck Winch", "ignored", "product"))
}

func TestEnsure_FallbackGetsSuffix(t *testing.T) {
	got := Ensure("", "Hello World!", "product")
	require.Regexp(t, regexp.MustCompile(`^hello-world-[a-z0-9]{8}$`), got)
}

func TestEnsure_PrefixWhenBothEmpty(t *testing.T) {
	got := Ensure("", "", "product")
	require.Regexp(t, regexp.MustCompile(`^product-[a-z0-9]{8}$`), got)
}

func TestEnsure_SuffixesDiffer(t *testing.T) {
	a := Ensure("", "Hello World", "product")
	b := Ensure("", "Hello World", "product")
	assert.NotEqual(t, a, b)
}

func TestEnsure_UnusableCandidateFallsThrough(t *testing.T) {
	// Candidate that sanitizes to nothing behaves as absent.
	got := Ensure("***", "Bilge Pumps", "product")
	require.Regexp(t, regexp.MustCompile(`^bilge-pumps-[a-z0-9]{8}$`), got)
}
