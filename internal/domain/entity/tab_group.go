package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TabGroupID uniquely identifies a stored tab group.
type TabGroupID string

// NewTabGroupID returns a fresh random identifier.
func NewTabGroupID() TabGroupID {
	return TabGroupID(uuid.NewString())
}

// TabSnapshot is the durable subset of a browser tab kept after suspension.
// Only ID, URL, FavIconURL and Title are ever persisted.
type TabSnapshot struct {
	ID         int    `json:"id"`
	URL        string `json:"url"`
	FavIconURL string `json:"favIconUrl,omitempty"`
	Title      string `json:"title"`

	// Source is the live tab this snapshot was captured from. In memory only.
	Source *WindowTab `json:"-"`
}

// Durable returns a copy of the snapshot reduced to its persisted fields.
func (s TabSnapshot) Durable() TabSnapshot {
	return TabSnapshot{
		ID:         s.ID,
		URL:        s.URL,
		FavIconURL: s.FavIconURL,
		Title:      s.Title,
	}
}

// TabGroup is a named, ordered collection of tab snapshots persisted as a single record.
type TabGroup struct {
	ID        TabGroupID
	Name      string
	Tabs      []TabSnapshot // insertion order is display order
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TabGroupParams holds the inputs for NewTabGroup. Zero values are filled in:
// an empty ID gets a fresh one and zero timestamps default to now.
type TabGroupParams struct {
	ID        TabGroupID
	Name      string
	Tabs      []TabSnapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTabGroup builds a tab group, either brand new or reconstructed from a stored record.
func NewTabGroup(params TabGroupParams) *TabGroup {
	now := time.Now().UTC()

	id := params.ID
	if id == "" {
		id = NewTabGroupID()
	}
	// A missing timestamp takes the other one, or now when both are missing,
	// so a new group starts with both equal and UpdatedAt never precedes CreatedAt.
	createdAt, updatedAt := params.CreatedAt, params.UpdatedAt
	switch {
	case createdAt.IsZero() && updatedAt.IsZero():
		createdAt, updatedAt = now, now
	case createdAt.IsZero():
		createdAt = updatedAt
	case updatedAt.IsZero():
		updatedAt = now
		if updatedAt.Before(createdAt) {
			updatedAt = createdAt
		}
	}

	tabs := params.Tabs
	if tabs == nil {
		tabs = []TabSnapshot{}
	}

	return &TabGroup{
		ID:        id,
		Name:      params.Name,
		Tabs:      tabs,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	}
}

// DurableTabs returns the tabs narrowed to their persisted fields, in order.
func (g *TabGroup) DurableTabs() []TabSnapshot {
	tabs := make([]TabSnapshot, len(g.Tabs))
	for i, tab := range g.Tabs {
		tabs[i] = tab.Durable()
	}
	return tabs
}

// URLs returns the tab URLs in display order.
func (g *TabGroup) URLs() []string {
	urls := make([]string, 0, len(g.Tabs))
	for _, tab := range g.Tabs {
		urls = append(urls, tab.URL)
	}
	return urls
}

// TabCount returns the number of tabs in the group.
func (g *TabGroup) TabCount() int {
	return len(g.Tabs)
}

// Rename changes the display name as given. Callers persist the change with a full save.
func (g *TabGroup) Rename(name string) {
	g.Name = name
}

// RemoveTab drops the tab at index, keeping the order of the remaining ones.
func (g *TabGroup) RemoveTab(index int) bool {
	if index < 0 || index >= len(g.Tabs) {
		return false
	}
	g.Tabs = append(g.Tabs[:index], g.Tabs[index+1:]...)
	return true
}

// Validate checks structural shape only.
func (g *TabGroup) Validate() error {
	if g == nil || g.ID == "" {
		return ErrInvalidTabGroup
	}
	if g.CreatedAt.IsZero() || g.UpdatedAt.IsZero() {
		return ErrInvalidTabGroup
	}
	if g.UpdatedAt.Before(g.CreatedAt) {
		return ErrInvalidTabGroup
	}
	return nil
}

var ErrInvalidTabGroup = errors.New("invalid tab group")
