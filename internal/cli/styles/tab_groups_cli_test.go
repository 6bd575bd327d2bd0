package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabstash/internal/cli/styles"
	"github.com/bnema/tabstash/internal/domain/entity"
)

func TestTabGroupsCLIRenderer(t *testing.T) {
	r := styles.NewTabGroupsCLIRenderer(styles.NewTheme())

	require.Contains(t, r.RenderEmptyList(), "No tab groups stored.")
	require.Contains(t, r.RenderList(nil), "No tab groups stored.")

	group := entity.NewTabGroup(entity.TabGroupParams{
		ID:   "group-1",
		Name: "Reading",
		Tabs: []entity.TabSnapshot{
			{ID: 1, URL: "https://go.dev", Title: "Go"},
			{ID: 2, URL: "https://pkg.go.dev"},
		},
	})

	out := r.RenderList([]*entity.TabGroup{group})
	require.Contains(t, out, "Tab groups")
	require.Contains(t, out, "group-1")
	require.Contains(t, out, "Reading")
	require.Contains(t, out, "2 tabs")

	detail := r.RenderGroup(group)
	require.Contains(t, detail, "https://go.dev")
	// untitled tabs fall back to the URL
	require.Contains(t, detail, "https://pkg.go.dev")

	require.Contains(t, r.RenderDeleted("group-1"), "group-1")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", styles.RelativeTime(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", styles.RelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", styles.RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", styles.RelativeTime(now.Add(-48*time.Hour), now))
	assert.Contains(t, styles.RelativeTime(now.AddDate(0, -3, 0), now), "2025-12")
}
