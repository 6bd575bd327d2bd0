package usecase

import (
	"context"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/logging"
)

// RestoreTabGroupUseCase reopens a stored group in a new browser window.
type RestoreTabGroupUseCase struct {
	gateway            *WindowGateway
	store              *TabGroupStore
	removeAfterRestore bool
}

// NewRestoreTabGroupUseCase creates a new RestoreTabGroupUseCase.
func NewRestoreTabGroupUseCase(gateway *WindowGateway, store *TabGroupStore, removeAfterRestore bool) *RestoreTabGroupUseCase {
	return &RestoreTabGroupUseCase{
		gateway:            gateway,
		store:              store,
		removeAfterRestore: removeAfterRestore,
	}
}

// RestoreTabGroupOutput is the result of a restore.
type RestoreTabGroupOutput struct {
	Group   *entity.TabGroup
	Window  *entity.Window
	Removed bool
}

// Execute opens the group's URLs in order and optionally destroys the group.
func (uc *RestoreTabGroupUseCase) Execute(ctx context.Context, id entity.TabGroupID) (*RestoreTabGroupOutput, error) {
	log := logging.FromContext(ctx)

	group, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	urls := group.URLs()
	if len(urls) == 0 {
		return nil, ErrEmptyTabGroup
	}

	window, err := uc.gateway.OpenWindow(ctx, urls)
	if err != nil {
		return nil, err
	}

	out := &RestoreTabGroupOutput{Group: group, Window: window}

	if uc.removeAfterRestore {
		if _, err := uc.store.Destroy(ctx, group); err != nil {
			return out, err
		}
		out.Removed = true
	}

	log.Info().
		Str("group_id", string(group.ID)).
		Int("tabs", len(urls)).
		Bool("removed", out.Removed).
		Msg("tab group restored")

	return out, nil
}
