package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
	"github.com/bnema/tabstash/internal/logging"
)

const (
	upsertTabGroupSQL = `
INSERT INTO tab_groups (id, name, record_json, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    record_json = excluded.record_json,
    created_at = excluded.created_at,
    updated_at = excluded.updated_at`

	getTabGroupSQL    = `SELECT record_json FROM tab_groups WHERE id = ?`
	deleteTabGroupSQL = `DELETE FROM tab_groups WHERE id = ?`
	listTabGroupsSQL  = `SELECT id, record_json FROM tab_groups `
)

type tabGroupRepo struct {
	db *sql.DB
}

// NewTabGroupRepository creates a new SQLite tab group repository.
func NewTabGroupRepository(db *sql.DB) repository.TabGroupRepository {
	return &tabGroupRepo{db: db}
}

// Put upserts the full record. Ordering columns are unix nanoseconds.
func (r *tabGroupRepo) Put(ctx context.Context, group *entity.TabGroup) error {
	if group == nil {
		return errors.New("tab group cannot be nil")
	}

	recordJSON, err := persistence.MarshalGroup(group)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("group_id", string(group.ID)).
		Int("tab_count", len(group.Tabs)).
		Msg("saving tab group")

	if _, err := r.db.ExecContext(ctx, upsertTabGroupSQL,
		string(group.ID),
		group.Name,
		string(recordJSON),
		group.CreatedAt.UnixNano(),
		group.UpdatedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("upsert tab group %s: %w", group.ID, err)
	}
	return nil
}

func (r *tabGroupRepo) Get(ctx context.Context, id entity.TabGroupID) (*entity.TabGroup, error) {
	var recordJSON string
	err := r.db.QueryRowContext(ctx, getTabGroupSQL, string(id)).Scan(&recordJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	group, err := persistence.UnmarshalGroup([]byte(recordJSON))
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("group_id", string(id)).
			Msg("failed to unmarshal tab group")
		return nil, err
	}
	return group, nil
}

func (r *tabGroupRepo) Delete(ctx context.Context, id entity.TabGroupID) error {
	if _, err := r.db.ExecContext(ctx, deleteTabGroupSQL, string(id)); err != nil {
		return fmt.Errorf("delete tab group %s: %w", id, err)
	}
	return nil
}

// List skips records that no longer decode.
func (r *tabGroupRepo) List(ctx context.Context, order repository.ListOrder) ([]*entity.TabGroup, error) {
	rows, err := r.db.QueryContext(ctx, listTabGroupsSQL+persistence.OrderClause(order))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	groups := make([]*entity.TabGroup, 0)
	for rows.Next() {
		var id, recordJSON string
		if err := rows.Scan(&id, &recordJSON); err != nil {
			return nil, err
		}
		group, err := persistence.UnmarshalGroup([]byte(recordJSON))
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).
				Str("group_id", id).
				Msg("skipping corrupted tab group")
			continue
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
