package project

import "strings"

// Slugify derives a filesystem-safe slug from a human-readable name:
// lowercase, whitespace and anything outside [a-z0-9_] becomes a single
// hyphen, repeated hyphens collapse, nothing leads or trails.
// Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return b.String()
}

// IsValidSlug reports whether s is already in canonical slug form.
func IsValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
