package repository

import (
	"context"
	"errors"

	"github.com/bnema/tabstash/internal/domain/entity"
)

// ErrUnavailable is returned (wrapped) when the underlying store cannot be opened.
var ErrUnavailable = errors.New("store unavailable")

// OrderKey names the field a listing is sorted by.
type OrderKey string

const (
	OrderByCreatedAt OrderKey = "created_at"
	OrderByUpdatedAt OrderKey = "updated_at"
	OrderByName      OrderKey = "name"
)

// Direction is the sort direction of a listing.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ListOrder describes how List sorts its result.
type ListOrder struct {
	Key       OrderKey
	Direction Direction
}

// NewestFirst is the default listing order: most recently created first.
var NewestFirst = ListOrder{Key: OrderByCreatedAt, Direction: Descending}

// Normalize replaces unknown keys or directions with NewestFirst's.
func (o ListOrder) Normalize() ListOrder {
	switch o.Key {
	case OrderByCreatedAt, OrderByUpdatedAt, OrderByName:
	default:
		o.Key = NewestFirst.Key
	}
	switch o.Direction {
	case Ascending, Descending:
	default:
		o.Direction = NewestFirst.Direction
	}
	return o
}

// TabGroupRepository persists tab groups as whole records keyed by ID.
type TabGroupRepository interface {
	// Put inserts or overwrites the full record under group.ID.
	Put(ctx context.Context, group *entity.TabGroup) error

	// Get returns the group with the given ID, or nil if there is none.
	Get(ctx context.Context, id entity.TabGroupID) (*entity.TabGroup, error)

	// Delete removes the record. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id entity.TabGroupID) error

	// List returns every stored group in the requested order.
	List(ctx context.Context, order ListOrder) ([]*entity.TabGroup, error)
}
