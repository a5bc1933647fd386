package export

import "unicode"

// SanitizeName makes a free-text title safe as a file or folder name.
// Latin and Cyrillic letters and digits survive; every other rune becomes an
// underscore.
func SanitizeName(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case unicode.Is(unicode.Cyrillic, r):
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
