// Package slugger assigns URL-safe identifiers to records at creation time.
// All functions are pure: collision lookups are supplied by the caller.
package slugger

import (
	"fmt"
	"strings"
	"unicode"

	"tradepost/internal/models"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented letters and strips the combining marks, so
// "Café" folds to "Cafe" before slugification.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slugify normalizes a human-readable name into a lowercase ASCII URL-safe
// token. Accented letters fold to their base letter, characters with no
// ASCII form are dropped, and runs of punctuation or whitespace collapse
// into single hyphens.
func Slugify(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(folded)) {
		switch {
		case r > unicode.MaxASCII:
			// dropped without acting as a separator
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Unique derives a slug from name and, when taken reports a collision,
// appends a numeric suffix starting at 1 and counting up until free.
// An empty or unslugifiable name is an input error; an empty slug is never
// stored.
func Unique(name string, taken func(slug string) bool) (string, error) {
	base := Slugify(name)
	if base == "" {
		return "", models.NewValidationError("name must contain at least one letter or digit")
	}

	slug := base
	for counter := 1; taken(slug); counter++ {
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	return slug, nil
}

// Token returns an opaque random identifier for records that don't carry a
// human-readable slug (chats, product listings). The token is a 128-bit
// UUID; collision probability is treated as negligible and no lookup is
// performed.
func Token() string {
	return uuid.NewString()
}
