package slug

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 8
)

var (
	separatorRegexp = regexp.MustCompile(`[\s_]+`)
	invalidRegexp   = regexp.MustCompile(`[^a-z0-9\p{Han}-]+`)
)

// Sanitize normalizes free text into URL-safe slug form: diacritics are
// stripped via NFKD decomposition, letters are lowercased, whitespace and
// underscores become hyphens, and anything outside [a-z0-9-] or CJK
// ideographs is removed. Consecutive hyphens are collapsed and leading or
// trailing hyphens trimmed.
//
// Examples:
//   - "Marine Água Pumps"  → "marine-agua-pumps"
//   - "Hello   World!"     → "hello-world"
//   - "舷外机 Outboard"    → "舷外机-outboard"
func Sanitize(value string) string {
	// Decompose accented characters and drop the combining marks.
	decomposed := norm.NFKD.String(value)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(strings.TrimSpace(b.String()))
	s = separatorRegexp.ReplaceAllString(s, "-")
	s = invalidRegexp.ReplaceAllString(s, "")

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	return strings.Trim(s, "-")
}

// Ensure returns a usable slug for an entity. A non-empty sanitized candidate
// wins as-is; otherwise the sanitized fallback text gets a random 8-character
// base36 suffix appended for practical uniqueness; if both are empty the
// prefix carries the suffix alone.
//
// Ensure is pure apart from the random suffix: actual uniqueness is enforced
// by the storage layer's unique constraint on the slug column, and callers
// must treat a duplicate-key error as retriable.
func Ensure(candidate, fallback, prefix string) string {
	if cleaned := Sanitize(candidate); cleaned != "" {
		return cleaned
	}

	if cleaned := Sanitize(fallback); cleaned != "" {
		return cleaned + "-" + randomSuffix()
	}

	return prefix + "-" + randomSuffix()
}

// randomSuffix returns suffixLength characters drawn from the base36 alphabet.
func randomSuffix() string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))] // #nosec G404 -- non-cryptographic slug disambiguation
	}
	return string(b)
}
