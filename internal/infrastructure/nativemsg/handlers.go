package nativemsg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
	"github.com/bnema/tabstash/internal/logging"
)

// Incoming request types sent by the extension.
const (
	TypeTabGroupsList    = "tabGroups.list"
	TypeTabGroupsGet     = "tabGroups.get"
	TypeTabGroupsSave    = "tabGroups.save"
	TypeTabGroupsDestroy = "tabGroups.destroy"
	TypeTabGroupsRestore = "tabGroups.restore"
	TypeWindowsSuspend   = "windows.suspend"
	TypePing             = "ping"
)

// ErrUnknownType is returned for request types the host does not handle.
var ErrUnknownType = errors.New("unknown message type")

// Handlers dispatches extension requests to the use cases.
type Handlers struct {
	store   *usecase.TabGroupStore
	suspend *usecase.SuspendWindowUseCase
	restore *usecase.RestoreTabGroupUseCase
	version string
}

// NewHandlers creates the request dispatcher.
func NewHandlers(
	store *usecase.TabGroupStore,
	suspend *usecase.SuspendWindowUseCase,
	restore *usecase.RestoreTabGroupUseCase,
	version string,
) *Handlers {
	return &Handlers{store: store, suspend: suspend, restore: restore, version: version}
}

type idPayload struct {
	ID string `json:"id"`
}

type suspendPayload struct {
	WindowID int    `json:"windowId,omitempty"`
	Name     string `json:"name,omitempty"`
}

type suspendResult struct {
	Group        persistence.Record `json:"group"`
	SkippedTabs  int                `json:"skippedTabs"`
	WindowClosed bool               `json:"windowClosed"`
}

type restoreResult struct {
	Group    persistence.Record `json:"group"`
	WindowID int                `json:"windowId,omitempty"`
	Removed  bool               `json:"removed"`
}

// Handle implements RequestHandler.
func (h *Handlers) Handle(ctx context.Context, env Envelope) (any, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("type", env.Type).Msg("native request")

	switch env.Type {
	case TypePing:
		return map[string]string{"version": h.version}, nil
	case TypeTabGroupsList:
		return h.list(ctx)
	case TypeTabGroupsGet:
		return h.get(ctx, env.Payload)
	case TypeTabGroupsSave:
		return h.save(ctx, env.Payload)
	case TypeTabGroupsDestroy:
		return h.destroy(ctx, env.Payload)
	case TypeTabGroupsRestore:
		return h.restoreGroup(ctx, env.Payload)
	case TypeWindowsSuspend:
		return h.suspendWindow(ctx, env.Payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
}

func (h *Handlers) list(ctx context.Context) ([]persistence.Record, error) {
	groups, err := h.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]persistence.Record, len(groups))
	for i, g := range groups {
		records[i] = persistence.ToRecord(g)
	}
	return records, nil
}

func (h *Handlers) get(ctx context.Context, raw json.RawMessage) (*persistence.Record, error) {
	id, err := decodeID(raw)
	if err != nil {
		return nil, err
	}
	group, err := h.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := persistence.ToRecord(group)
	return &rec, nil
}

// save accepts a full record. A missing id creates a new group; missing
// timestamps are filled in as for a new group. Overwriting a stored group
// keeps its CreatedAt.
func (h *Handlers) save(ctx context.Context, raw json.RawMessage) (*persistence.Record, error) {
	var rec persistence.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidTabGroup, err)
	}
	if rec.ID != "" {
		existing, err := h.store.FindByID(ctx, entity.TabGroupID(rec.ID))
		switch {
		case err == nil:
			rec.CreatedAt = existing.CreatedAt
			if rec.UpdatedAt.Before(existing.UpdatedAt) {
				rec.UpdatedAt = existing.UpdatedAt
			}
		case !errors.Is(err, usecase.ErrTabGroupNotFound):
			return nil, err
		}
	}
	group := rec.ToEntity()
	if _, err := h.store.Save(ctx, group); err != nil {
		return nil, err
	}
	out := persistence.ToRecord(group)
	return &out, nil
}

func (h *Handlers) destroy(ctx context.Context, raw json.RawMessage) (*persistence.Record, error) {
	id, err := decodeID(raw)
	if err != nil {
		return nil, err
	}
	group, err := h.store.FindByID(ctx, id)
	if errors.Is(err, usecase.ErrTabGroupNotFound) {
		// deleting an absent record still succeeds and still notifies
		group = &entity.TabGroup{ID: id}
	} else if err != nil {
		return nil, err
	}
	if _, err := h.store.Destroy(ctx, group); err != nil {
		return nil, err
	}
	rec := persistence.ToRecord(group)
	return &rec, nil
}

func (h *Handlers) suspendWindow(ctx context.Context, raw json.RawMessage) (*suspendResult, error) {
	var in suspendPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("decode suspend request: %w", err)
		}
	}
	out, err := h.suspend.Execute(ctx, usecase.SuspendWindowInput{WindowID: in.WindowID, Name: in.Name})
	if out == nil {
		return nil, err
	}
	// a failed close still reports the saved group
	res := &suspendResult{
		Group:        persistence.ToRecord(out.Group),
		SkippedTabs:  out.SkippedTabs,
		WindowClosed: out.WindowClosed,
	}
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("window suspended but not closed")
	}
	return res, nil
}

func (h *Handlers) restoreGroup(ctx context.Context, raw json.RawMessage) (*restoreResult, error) {
	id, err := decodeID(raw)
	if err != nil {
		return nil, err
	}
	out, err := h.restore.Execute(ctx, id)
	if err != nil {
		return nil, err
	}
	res := &restoreResult{Group: persistence.ToRecord(out.Group), Removed: out.Removed}
	if out.Window != nil {
		res.WindowID = out.Window.ID
	}
	return res, nil
}

func decodeID(raw json.RawMessage) (entity.TabGroupID, error) {
	var p idPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", fmt.Errorf("decode id: %w", err)
	}
	if p.ID == "" {
		return "", fmt.Errorf("%w: missing id", entity.ErrInvalidTabGroup)
	}
	return entity.TabGroupID(p.ID), nil
}
