// Package persistence holds the storage pieces shared by every tab group backend:
// the persisted record shape, the lazily opened database handle and the lazy
// repository wrapper.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/tabstash/internal/domain/entity"
)

// RecordTab is the persisted form of a tab snapshot.
type RecordTab struct {
	ID         int    `json:"id"`
	URL        string `json:"url"`
	FavIconURL string `json:"favIconUrl,omitempty"`
	Title      string `json:"title"`
}

// Record is the persisted form of a tab group. Timestamps encode as RFC 3339
// with nanoseconds, in UTC.
type Record struct {
	ID        string      `json:"id" jsonschema:"required,description=Stable unique identifier"`
	Name      string      `json:"name" jsonschema:"description=Display name"`
	Tabs      []RecordTab `json:"tabs" jsonschema:"required"`
	CreatedAt time.Time   `json:"createdAt" jsonschema:"required"`
	UpdatedAt time.Time   `json:"updatedAt" jsonschema:"required"`
}

// ToRecord narrows a group into its persisted shape.
func ToRecord(group *entity.TabGroup) Record {
	tabs := make([]RecordTab, len(group.Tabs))
	for i, tab := range group.Tabs {
		tabs[i] = RecordTab{
			ID:         tab.ID,
			URL:        tab.URL,
			FavIconURL: tab.FavIconURL,
			Title:      tab.Title,
		}
	}
	return Record{
		ID:        string(group.ID),
		Name:      group.Name,
		Tabs:      tabs,
		CreatedAt: group.CreatedAt.UTC(),
		UpdatedAt: group.UpdatedAt.UTC(),
	}
}

// ToEntity rebuilds a tab group from a stored record.
func (r Record) ToEntity() *entity.TabGroup {
	tabs := make([]entity.TabSnapshot, len(r.Tabs))
	for i, tab := range r.Tabs {
		tabs[i] = entity.TabSnapshot{
			ID:         tab.ID,
			URL:        tab.URL,
			FavIconURL: tab.FavIconURL,
			Title:      tab.Title,
		}
	}
	return entity.NewTabGroup(entity.TabGroupParams{
		ID:        entity.TabGroupID(r.ID),
		Name:      r.Name,
		Tabs:      tabs,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	})
}

// MarshalGroup encodes a group as record JSON.
func MarshalGroup(group *entity.TabGroup) ([]byte, error) {
	data, err := json.Marshal(ToRecord(group))
	if err != nil {
		return nil, fmt.Errorf("encode tab group %s: %w", group.ID, err)
	}
	return data, nil
}

// UnmarshalGroup decodes record JSON into a group.
func UnmarshalGroup(data []byte) (*entity.TabGroup, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode tab group record: %w", err)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("decode tab group record: %w", entity.ErrInvalidTabGroup)
	}
	return rec.ToEntity(), nil
}
