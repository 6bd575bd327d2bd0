// Package memory keeps tab groups in process memory.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
)

// Store is an in-memory repository.TabGroupRepository. Records are stored as
// persisted copies so callers never share state with the store.
type Store struct {
	mu      sync.RWMutex
	records map[entity.TabGroupID]persistence.Record
}

var _ repository.TabGroupRepository = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[entity.TabGroupID]persistence.Record)}
}

func (s *Store) Put(_ context.Context, group *entity.TabGroup) error {
	if group == nil {
		return errors.New("tab group cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[group.ID] = persistence.ToRecord(group)
	return nil
}

func (s *Store) Get(_ context.Context, id entity.TabGroupID) (*entity.TabGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return rec.ToEntity(), nil
}

func (s *Store) Delete(_ context.Context, id entity.TabGroupID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *Store) List(_ context.Context, order repository.ListOrder) ([]*entity.TabGroup, error) {
	s.mu.RLock()
	groups := make([]*entity.TabGroup, 0, len(s.records))
	for _, rec := range s.records {
		groups = append(groups, rec.ToEntity())
	}
	s.mu.RUnlock()

	persistence.SortGroups(groups, order)
	return groups, nil
}

// Len returns the number of stored groups.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
