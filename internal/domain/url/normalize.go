// Package url normalizes tab URLs typed on the command line.
package url

import (
	"net/url"
	"strings"
)

// Normalize adds an https:// prefix to bare host inputs such as "go.dev/doc".
// Inputs that already carry a scheme, or that do not look like a URL, are
// returned trimmed but otherwise unchanged.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if hasScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL reports whether input reads as a URL rather than free text.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	// Contains a dot and no spaces = likely a host
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ExtractDomain returns the host of rawURL without a leading "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// hasScheme matches "scheme://" and opaque forms like "about:blank",
// but not "localhost:8080".
func hasScheme(input string) bool {
	if strings.Contains(input, "://") {
		return true
	}
	i := strings.Index(input, ":")
	if i <= 0 {
		return false
	}
	scheme := input[:i]
	for _, r := range scheme {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '-' || r == '+' || r == '.') {
			return false
		}
	}
	rest := input[i+1:]
	// host:port
	if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return false
	}
	return !strings.Contains(scheme, ".")
}
