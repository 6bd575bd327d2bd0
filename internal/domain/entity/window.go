package entity

import "strings"

// WindowType mirrors the host browser's window kinds.
type WindowType string

const (
	WindowTypeNormal   WindowType = "normal"
	WindowTypePopup    WindowType = "popup"
	WindowTypePanel    WindowType = "panel"
	WindowTypeDevTools WindowType = "devtools"
)

// WindowTab is a live tab handle as reported by the host browser.
// It is richer than TabSnapshot and never persisted as-is.
type WindowTab struct {
	ID         int    `json:"id"`
	WindowID   int    `json:"windowId"`
	Index      int    `json:"index"`
	URL        string `json:"url"`
	Title      string `json:"title"`
	FavIconURL string `json:"favIconUrl,omitempty"`
	Active     bool   `json:"active"`
	Pinned     bool   `json:"pinned"`
	Incognito  bool   `json:"incognito"`
}

// Window is an OS-level browser window.
type Window struct {
	ID        int         `json:"id"`
	Focused   bool        `json:"focused"`
	Type      WindowType  `json:"type"`
	Incognito bool        `json:"incognito"`
	Tabs      []WindowTab `json:"tabs,omitempty"`
}

// SnapshotTab narrows a live tab into a snapshot that still points back at it.
func SnapshotTab(tab WindowTab) TabSnapshot {
	src := tab
	return TabSnapshot{
		ID:         tab.ID,
		URL:        tab.URL,
		FavIconURL: tab.FavIconURL,
		Title:      tab.Title,
		Source:     &src,
	}
}

// privilegedSchemes cannot be reopened by an extension.
var privilegedSchemes = []string{
	"about:",
	"chrome:",
	"chrome-extension:",
	"moz-extension:",
	"edge:",
	"view-source:",
	"file:",
}

// IsRestorableURL reports whether a URL can be reopened in a new window.
func IsRestorableURL(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, scheme := range privilegedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return false
		}
	}
	return true
}
