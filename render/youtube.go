package render

import (
	"net/url"
	"strings"
)

// EmbedURL converts a YouTube watch or share URL into an embeddable player
// URL. The second return value reports whether a conversion happened; any
// other or malformed URL comes back unchanged so callers can fall back to a
// plain link instead of failing.
func EmbedURL(raw string) (string, bool) {
	if strings.Contains(raw, "youtube.com/watch") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return raw, false
		}
		id := parsed.Query().Get("v")
		if id == "" {
			return raw, false
		}
		return "https://www.youtube.com/embed/" + id, true
	}
	if strings.Contains(raw, "youtu.be/") {
		rest := raw[strings.Index(raw, "youtu.be/")+len("youtu.be/"):]
		if cut := strings.IndexAny(rest, "?&#"); cut >= 0 {
			rest = rest[:cut]
		}
		if rest == "" {
			return raw, false
		}
		return "https://www.youtube.com/embed/" + rest, true
	}
	return raw, false
}
