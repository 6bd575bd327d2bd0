package usecase

import (
	"context"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/domain/entity"
)

// WindowGateway is a thin facade over the host browser's window API.
type WindowGateway struct {
	host    port.WindowHost
	browser port.BrowserFamily
}

// NewWindowGateway creates a new WindowGateway.
func NewWindowGateway(host port.WindowHost, browser port.BrowserFamily) *WindowGateway {
	return &WindowGateway{host: host, browser: browser}
}

// ListNormalWindows returns all regular browser windows.
func (g *WindowGateway) ListNormalWindows(ctx context.Context) ([]entity.Window, error) {
	return g.host.GetAll(ctx, port.WindowFilter{
		Types: []entity.WindowType{entity.WindowTypeNormal},
	})
}

// FocusedWindow returns the current window with its tabs populated.
func (g *WindowGateway) FocusedWindow(ctx context.Context) (*entity.Window, error) {
	return g.host.GetCurrent(ctx, true)
}

// OpenWindow opens a new window seeded with urls, in order.
// Focus is requested only where the browser accepts it.
func (g *WindowGateway) OpenWindow(ctx context.Context, urls []string) (*entity.Window, error) {
	req := port.CreateWindowRequest{URLs: urls}
	if g.browser.SupportsFocusOnCreate() {
		focused := true
		req.Focused = &focused
	}
	return g.host.Create(ctx, req)
}

// CloseWindow closes the window with the given ID.
func (g *WindowGateway) CloseWindow(ctx context.Context, id int) error {
	return g.host.Remove(ctx, id)
}
