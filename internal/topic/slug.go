package topic

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify derives a filesystem-safe slug from a topic name.
// Letters and digits are lowercased; every run of other characters
// collapses to a single underscore. "Data-Science & ML" → "data_science_ml".
// Returns an error for names with no usable characters.
func Slugify(name string) (string, error) {
	var b strings.Builder
	lastUnderscore := true // suppress a leading underscore

	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return "", &ValidationError{Field: "name", Message: fmt.Sprintf("cannot derive slug from %q", name)}
	}
	return slug, nil
}

// NormalizeName lowercases a name and collapses whitespace to single
// underscores. Used for duplicate detection and cache identity.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
}
