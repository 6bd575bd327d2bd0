package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/logging"
)

// DefaultSuspendNameFormat is expanded with the tab count and the capture date.
const DefaultSuspendNameFormat = "{count} tabs — {date}"

const suspendDateLayout = "Jan 2, 2006 15:04"

// SuspendWindowUseCase stashes a window's tabs into a new group and closes the window.
type SuspendWindowUseCase struct {
	gateway    *WindowGateway
	store      *TabGroupStore
	nameFormat string
	now        func() time.Time
}

// NewSuspendWindowUseCase creates a new SuspendWindowUseCase.
// An empty nameFormat selects DefaultSuspendNameFormat.
func NewSuspendWindowUseCase(gateway *WindowGateway, store *TabGroupStore, nameFormat string) *SuspendWindowUseCase {
	if strings.TrimSpace(nameFormat) == "" {
		nameFormat = DefaultSuspendNameFormat
	}
	return &SuspendWindowUseCase{
		gateway:    gateway,
		store:      store,
		nameFormat: nameFormat,
		now:        time.Now,
	}
}

// SuspendWindowInput selects the window to suspend.
type SuspendWindowInput struct {
	// WindowID picks a specific normal window. Zero means the focused window.
	WindowID int
	// Name overrides the generated group name.
	Name string
}

// SuspendWindowOutput is the result of a suspension.
type SuspendWindowOutput struct {
	Group        *entity.TabGroup
	SkippedTabs  int
	WindowClosed bool
}

// Execute saves the window's restorable tabs, then closes the window.
// If closing fails the group stays saved and the error is returned with the output.
func (uc *SuspendWindowUseCase) Execute(ctx context.Context, input SuspendWindowInput) (*SuspendWindowOutput, error) {
	log := logging.FromContext(ctx)

	window, err := uc.resolveWindow(ctx, input.WindowID)
	if err != nil {
		return nil, err
	}

	tabs := make([]entity.TabSnapshot, 0, len(window.Tabs))
	skipped := 0
	for _, tab := range window.Tabs {
		if !entity.IsRestorableURL(tab.URL) {
			skipped++
			continue
		}
		tabs = append(tabs, entity.SnapshotTab(tab))
	}
	if len(tabs) == 0 {
		return nil, ErrNothingToSuspend
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = uc.defaultName(len(tabs))
	}

	group := entity.NewTabGroup(entity.TabGroupParams{Name: name, Tabs: tabs})
	if _, err := uc.store.Save(ctx, group); err != nil {
		return nil, err
	}

	out := &SuspendWindowOutput{Group: group, SkippedTabs: skipped}

	log.Info().
		Str("group_id", string(group.ID)).
		Int("window_id", window.ID).
		Int("tabs", len(tabs)).
		Int("skipped", skipped).
		Msg("window suspended")

	if err := uc.gateway.CloseWindow(ctx, window.ID); err != nil {
		return out, fmt.Errorf("close window %d: %w", window.ID, err)
	}
	out.WindowClosed = true
	return out, nil
}

func (uc *SuspendWindowUseCase) resolveWindow(ctx context.Context, windowID int) (*entity.Window, error) {
	if windowID == 0 {
		window, err := uc.gateway.FocusedWindow(ctx)
		if err != nil {
			return nil, err
		}
		if window == nil {
			return nil, ErrNoFocusedWindow
		}
		return window, nil
	}

	windows, err := uc.gateway.ListNormalWindows(ctx)
	if err != nil {
		return nil, err
	}
	for i := range windows {
		if windows[i].ID == windowID {
			return &windows[i], nil
		}
	}
	return nil, fmt.Errorf("window %d not found", windowID)
}

func (uc *SuspendWindowUseCase) defaultName(count int) string {
	r := strings.NewReplacer(
		"{count}", fmt.Sprintf("%d", count),
		"{date}", uc.now().Format(suspendDateLayout),
	)
	return r.Replace(uc.nameFormat)
}
