package render

import (
	"net/url"
	"strings"
)

// LoomEmbedURL converts a Loom share URL into its embeddable player URL.
// Returns false for URLs that do not point to a Loom video.
func LoomEmbedURL(shareURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(shareURL))
	if err != nil {
		return "", false
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host != "loom.com" && host != "www.loom.com" {
		return "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || (parts[0] != "share" && parts[0] != "embed") || parts[1] == "" {
		return "", false
	}

	return "https://www.loom.com/embed/" + url.PathEscape(parts[1]), true
}
