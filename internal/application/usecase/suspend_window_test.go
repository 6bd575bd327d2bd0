package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/tabstash/internal/application/port"
	portmocks "github.com/bnema/tabstash/internal/application/port/mocks"
	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/domain/entity"
	repomocks "github.com/bnema/tabstash/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func focusedWindow() *entity.Window {
	return &entity.Window{
		ID:      5,
		Focused: true,
		Type:    entity.WindowTypeNormal,
		Tabs: []entity.WindowTab{
			{ID: 1, WindowID: 5, Index: 0, URL: "https://go.dev", Title: "Go"},
			{ID: 2, WindowID: 5, Index: 1, URL: "about:newtab", Title: "New Tab"},
			{ID: 3, WindowID: 5, Index: 2, URL: "https://example.com", Title: "Example", FavIconURL: "https://example.com/f.ico"},
		},
	}
}

func TestSuspendWindowUseCase_SavesThenCloses(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)
	notifier := portmocks.NewMockChangeNotifier(t)

	var order []string
	var stored *entity.TabGroup

	host.EXPECT().GetCurrent(ctx, true).Return(focusedWindow(), nil)
	repo.EXPECT().Put(ctx, mock.Anything).
		Run(func(_ context.Context, g *entity.TabGroup) {
			order = append(order, "put")
			stored = g
		}).Return(nil)
	notifier.EXPECT().Publish(ctx, port.SignalTabGroupsChanged).Return(nil)
	host.EXPECT().Remove(ctx, 5).
		Run(func(context.Context, int) { order = append(order, "remove") }).
		Return(nil)

	gateway := usecase.NewWindowGateway(host, port.BrowserChromium)
	store := usecase.NewTabGroupStore(repo, notifier)
	uc := usecase.NewSuspendWindowUseCase(gateway, store, "")

	out, err := uc.Execute(ctx, usecase.SuspendWindowInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"put", "remove"}, order)
	assert.True(t, out.WindowClosed)
	assert.Equal(t, 1, out.SkippedTabs)
	assert.Equal(t, []string{"https://go.dev", "https://example.com"}, out.Group.URLs())
	assert.True(t, strings.HasPrefix(out.Group.Name, "2 tabs — "))

	require.NotNil(t, stored)
	assert.Equal(t, entity.TabSnapshot{ID: 3, URL: "https://example.com", Title: "Example", FavIconURL: "https://example.com/f.ico"}, stored.Tabs[1])
}

func TestSuspendWindowUseCase_CloseFailureKeepsGroup(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)

	host.EXPECT().GetCurrent(ctx, true).Return(focusedWindow(), nil)
	repo.EXPECT().Put(ctx, mock.Anything).Return(nil)
	host.EXPECT().Remove(ctx, 5).Return(errors.New("window gone"))

	uc := usecase.NewSuspendWindowUseCase(
		usecase.NewWindowGateway(host, port.BrowserFirefox),
		usecase.NewTabGroupStore(repo, nil),
		"",
	)

	out, err := uc.Execute(ctx, usecase.SuspendWindowInput{Name: "  research "})

	require.Error(t, err)
	require.NotNil(t, out)
	assert.False(t, out.WindowClosed)
	assert.Equal(t, "research", out.Group.Name)
}

func TestSuspendWindowUseCase_SaveFailureDoesNotClose(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)

	host.EXPECT().GetCurrent(ctx, true).Return(focusedWindow(), nil)
	repo.EXPECT().Put(ctx, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewSuspendWindowUseCase(
		usecase.NewWindowGateway(host, port.BrowserChromium),
		usecase.NewTabGroupStore(repo, nil),
		"",
	)

	_, err := uc.Execute(ctx, usecase.SuspendWindowInput{})

	assert.ErrorIs(t, err, usecase.ErrStoreWrite)
	host.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestSuspendWindowUseCase_ByWindowID(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)

	host.EXPECT().GetAll(ctx, mock.Anything).Return([]entity.Window{
		{ID: 1, Tabs: []entity.WindowTab{{URL: "https://one"}}},
		{ID: 2, Tabs: []entity.WindowTab{{URL: "https://two"}}},
	}, nil)
	repo.EXPECT().Put(ctx, mock.Anything).Return(nil)
	host.EXPECT().Remove(ctx, 2).Return(nil)

	uc := usecase.NewSuspendWindowUseCase(
		usecase.NewWindowGateway(host, port.BrowserChromium),
		usecase.NewTabGroupStore(repo, nil),
		"{count} stashed",
	)

	out, err := uc.Execute(ctx, usecase.SuspendWindowInput{WindowID: 2})

	require.NoError(t, err)
	assert.Equal(t, "1 stashed", out.Group.Name)
	assert.Equal(t, []string{"https://two"}, out.Group.URLs())
}

func TestSuspendWindowUseCase_NothingRestorable(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)

	host.EXPECT().GetCurrent(ctx, true).Return(&entity.Window{
		ID:   5,
		Tabs: []entity.WindowTab{{URL: "chrome://settings"}},
	}, nil)

	uc := usecase.NewSuspendWindowUseCase(
		usecase.NewWindowGateway(host, port.BrowserChromium),
		usecase.NewTabGroupStore(repo, nil),
		"",
	)

	_, err := uc.Execute(ctx, usecase.SuspendWindowInput{})
	assert.ErrorIs(t, err, usecase.ErrNothingToSuspend)
}

func TestSuspendWindowUseCase_NoFocusedWindow(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	host.EXPECT().GetCurrent(ctx, true).Return(nil, nil)

	uc := usecase.NewSuspendWindowUseCase(
		usecase.NewWindowGateway(host, port.BrowserChromium),
		usecase.NewTabGroupStore(repomocks.NewMockTabGroupRepository(t), nil),
		"",
	)

	_, err := uc.Execute(ctx, usecase.SuspendWindowInput{})
	assert.ErrorIs(t, err, usecase.ErrNoFocusedWindow)
}

