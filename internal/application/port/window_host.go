package port

import (
	"context"
	"strings"

	"github.com/bnema/tabstash/internal/domain/entity"
)

// BrowserFamily identifies the host browser engine.
type BrowserFamily string

const (
	BrowserChromium BrowserFamily = "chromium"
	BrowserFirefox  BrowserFamily = "firefox"
)

// ParseBrowserFamily maps a configured browser name to its family.
// Unknown names fall back to chromium.
func ParseBrowserFamily(name string) BrowserFamily {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "firefox", "gecko", "librewolf", "waterfox", "zen":
		return BrowserFirefox
	default:
		return BrowserChromium
	}
}

// SupportsFocusOnCreate reports whether windows.create accepts the focused option.
// Firefox rejects it.
func (f BrowserFamily) SupportsFocusOnCreate() bool {
	return f != BrowserFirefox
}

// WindowFilter restricts which windows GetAll returns.
type WindowFilter struct {
	Types []entity.WindowType `json:"windowTypes,omitempty"`
}

// CreateWindowRequest seeds a new window with tabs, in order.
// Focused is nil when the option must not be sent at all.
type CreateWindowRequest struct {
	URLs    []string `json:"url"`
	Focused *bool    `json:"focused,omitempty"`
}

// WindowHost is the host browser's window management capability.
type WindowHost interface {
	GetAll(ctx context.Context, filter WindowFilter) ([]entity.Window, error)
	GetCurrent(ctx context.Context, populate bool) (*entity.Window, error)
	Create(ctx context.Context, req CreateWindowRequest) (*entity.Window, error)
	Remove(ctx context.Context, windowID int) error
}
