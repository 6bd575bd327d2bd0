package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/tabstash/internal/application/port"
	portmocks "github.com/bnema/tabstash/internal/application/port/mocks"
	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/domain/entity"
	repomocks "github.com/bnema/tabstash/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestoreTabGroupUseCase_OpensURLsInOrder(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)
	group := sampleGroup(time.Now().UTC())

	repo.EXPECT().Get(ctx, group.ID).Return(group, nil)
	host.EXPECT().Create(ctx, mock.MatchedBy(func(req port.CreateWindowRequest) bool {
		return assert.ObjectsAreEqual([]string{"https://go.dev", "https://pkg.go.dev"}, req.URLs)
	})).Return(&entity.Window{ID: 21}, nil)

	uc := usecase.NewRestoreTabGroupUseCase(
		usecase.NewWindowGateway(host, port.BrowserChromium),
		usecase.NewTabGroupStore(repo, nil),
		false,
	)

	out, err := uc.Execute(ctx, group.ID)

	require.NoError(t, err)
	assert.Equal(t, 21, out.Window.ID)
	assert.False(t, out.Removed)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRestoreTabGroupUseCase_RemoveAfterRestore(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)
	notifier := portmocks.NewMockChangeNotifier(t)
	group := sampleGroup(time.Now().UTC())

	repo.EXPECT().Get(ctx, group.ID).Return(group, nil)
	host.EXPECT().Create(ctx, mock.Anything).Return(&entity.Window{ID: 21}, nil)
	repo.EXPECT().Delete(ctx, group.ID).Return(nil)
	notifier.EXPECT().Publish(ctx, port.SignalTabGroupsChanged).Return(nil).Once()

	uc := usecase.NewRestoreTabGroupUseCase(
		usecase.NewWindowGateway(host, port.BrowserFirefox),
		usecase.NewTabGroupStore(repo, notifier),
		true,
	)

	out, err := uc.Execute(ctx, group.ID)

	require.NoError(t, err)
	assert.True(t, out.Removed)
}

func TestRestoreTabGroupUseCase_OpenFailureKeepsGroup(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)
	group := sampleGroup(time.Now().UTC())

	repo.EXPECT().Get(ctx, group.ID).Return(group, nil)
	host.EXPECT().Create(ctx, mock.Anything).Return(nil, errors.New("host detached"))

	uc := usecase.NewRestoreTabGroupUseCase(
		usecase.NewWindowGateway(host, port.BrowserChromium),
		usecase.NewTabGroupStore(repo, nil),
		true,
	)

	_, err := uc.Execute(ctx, group.ID)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRestoreTabGroupUseCase_NotFoundAndEmpty(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	repo := repomocks.NewMockTabGroupRepository(t)
	empty := entity.NewTabGroup(entity.TabGroupParams{ID: "empty"})

	repo.EXPECT().Get(ctx, entity.TabGroupID("gone")).Return(nil, nil)
	repo.EXPECT().Get(ctx, empty.ID).Return(empty, nil)

	uc := usecase.NewRestoreTabGroupUseCase(
		usecase.NewWindowGateway(host, port.BrowserChromium),
		usecase.NewTabGroupStore(repo, nil),
		false,
	)

	_, err := uc.Execute(ctx, "gone")
	assert.ErrorIs(t, err, usecase.ErrTabGroupNotFound)

	_, err = uc.Execute(ctx, empty.ID)
	assert.ErrorIs(t, err, usecase.ErrEmptyTabGroup)
}
