package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/logging"
)

// TabGroupStore manages the persistence lifecycle of tab groups and announces
// every successful mutation on the change notifier.
type TabGroupStore struct {
	repo     repository.TabGroupRepository
	notifier port.ChangeNotifier
	now      func() time.Time
}

// TabGroupStoreOption configures a TabGroupStore.
type TabGroupStoreOption func(*TabGroupStore)

// WithClock overrides the time source used for UpdatedAt.
func WithClock(now func() time.Time) TabGroupStoreOption {
	return func(s *TabGroupStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTabGroupStore creates a new TabGroupStore. A nil notifier disables notifications.
func NewTabGroupStore(
	repo repository.TabGroupRepository,
	notifier port.ChangeNotifier,
	opts ...TabGroupStoreOption,
) *TabGroupStore {
	s := &TabGroupStore{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll returns every stored group, most recently created first.
func (s *TabGroupStore) ListAll(ctx context.Context) ([]*entity.TabGroup, error) {
	groups, err := s.repo.List(ctx, repository.NewestFirst)
	if err != nil {
		return nil, mapReadError(err)
	}
	if groups == nil {
		groups = []*entity.TabGroup{}
	}
	return groups, nil
}

// FindByID returns the group stored under id.
func (s *TabGroupStore) FindByID(ctx context.Context, id entity.TabGroupID) (*entity.TabGroup, error) {
	group, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapReadError(err)
	}
	if group == nil {
		return nil, ErrTabGroupNotFound
	}
	return group, nil
}

// Save upserts the full group record and refreshes its UpdatedAt.
// The caller's group is only mutated once the write succeeded.
func (s *TabGroupStore) Save(ctx context.Context, group *entity.TabGroup) (*entity.TabGroup, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)

	record := &entity.TabGroup{
		ID:        group.ID,
		Name:      group.Name,
		Tabs:      group.DurableTabs(),
		CreatedAt: group.CreatedAt,
		UpdatedAt: s.nextUpdatedAt(group.UpdatedAt),
	}

	if err := s.repo.Put(ctx, record); err != nil {
		log.Error().Err(err).Str("group_id", string(group.ID)).Msg("failed to save tab group")
		return nil, mapWriteError(err)
	}

	group.UpdatedAt = record.UpdatedAt
	log.Debug().
		Str("group_id", string(group.ID)).
		Int("tabs", len(record.Tabs)).
		Msg("tab group saved")

	s.publish(ctx)
	return group, nil
}

// Destroy removes the group's record. Removing an absent record succeeds.
func (s *TabGroupStore) Destroy(ctx context.Context, group *entity.TabGroup) (*entity.TabGroup, error) {
	if group == nil || group.ID == "" {
		return nil, entity.ErrInvalidTabGroup
	}

	log := logging.FromContext(ctx)

	if err := s.repo.Delete(ctx, group.ID); err != nil {
		log.Error().Err(err).Str("group_id", string(group.ID)).Msg("failed to delete tab group")
		return nil, mapWriteError(err)
	}

	log.Debug().Str("group_id", string(group.ID)).Msg("tab group deleted")

	s.publish(ctx)
	return group, nil
}

// nextUpdatedAt never returns a value at or before prev.
func (s *TabGroupStore) nextUpdatedAt(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}

func (s *TabGroupStore) publish(ctx context.Context) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, port.SignalTabGroupsChanged); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("change notification not delivered")
	}
}

func mapReadError(err error) error {
	if errors.Is(err, repository.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

func mapWriteError(err error) error {
	if errors.Is(err, repository.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrStoreWrite, err)
}
