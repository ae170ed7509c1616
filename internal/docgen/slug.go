package docgen

import "strings"

// maxSlugLen bounds the length of filename slugs
const maxSlugLen = 25

// Slugify reduces a display name to a filename-safe slug containing only
// alphanumerics and underscores, truncated to maxSlugLen characters
func Slugify(name string) string {
	var b strings.Builder
	lastUnderscore := false

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
		// Any other character is dropped entirely
	}

	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return strings.Trim(slug, "_")
}
