package nativemsg

import (
	"context"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/domain/entity"
)

// Outgoing request types answered by the extension's background page.
const (
	TypeWindowsGetAll     = "windows.getAll"
	TypeWindowsGetCurrent = "windows.getCurrent"
	TypeWindowsCreate     = "windows.create"
	TypeWindowsRemove     = "windows.remove"
)

// WindowHost forwards window operations to the browser extension.
type WindowHost struct {
	conn *Conn
}

var _ port.WindowHost = (*WindowHost)(nil)

// NewWindowHost creates a port.WindowHost over conn.
func NewWindowHost(conn *Conn) *WindowHost {
	return &WindowHost{conn: conn}
}

func (h *WindowHost) GetAll(ctx context.Context, filter port.WindowFilter) ([]entity.Window, error) {
	var windows []entity.Window
	if err := h.conn.Call(ctx, TypeWindowsGetAll, filter, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

func (h *WindowHost) GetCurrent(ctx context.Context, populate bool) (*entity.Window, error) {
	var window *entity.Window
	req := struct {
		Populate bool `json:"populate"`
	}{Populate: populate}
	if err := h.conn.Call(ctx, TypeWindowsGetCurrent, req, &window); err != nil {
		return nil, err
	}
	return window, nil
}

func (h *WindowHost) Create(ctx context.Context, req port.CreateWindowRequest) (*entity.Window, error) {
	var window *entity.Window
	if err := h.conn.Call(ctx, TypeWindowsCreate, req, &window); err != nil {
		return nil, err
	}
	return window, nil
}

func (h *WindowHost) Remove(ctx context.Context, windowID int) error {
	req := struct {
		WindowID int `json:"windowId"`
	}{WindowID: windowID}
	return h.conn.Call(ctx, TypeWindowsRemove, req, nil)
}
