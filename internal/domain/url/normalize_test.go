package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "bare host", input: "go.dev", want: "https://go.dev"},
		{name: "host and path", input: "pkg.go.dev/net/http", want: "https://pkg.go.dev/net/http"},
		{name: "host and port", input: "localhost.test:8080", want: "https://localhost.test:8080"},
		{name: "trims", input: "  go.dev  ", want: "https://go.dev"},
		{name: "http kept", input: "http://example.com", want: "http://example.com"},
		{name: "https kept", input: "https://example.com", want: "https://example.com"},
		{name: "about kept", input: "about:blank", want: "about:blank"},
		{name: "file kept", input: "file:///tmp/a.html", want: "file:///tmp/a.html"},
		{name: "free text", input: "not a url", want: "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, LooksLikeURL("github.com"))
	assert.True(t, LooksLikeURL("about:config"))
	assert.False(t, LooksLikeURL(""))
	assert.False(t, LooksLikeURL("golang tutorial"))
	assert.False(t, LooksLikeURL("localhost"))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "youtube.com", ExtractDomain("https://www.youtube.com/watch?v=1"))
	assert.Equal(t, "localhost", ExtractDomain("http://localhost:8080/x"))
	assert.Equal(t, "", ExtractDomain("about:blank"))
	assert.Equal(t, "", ExtractDomain(""))
}
