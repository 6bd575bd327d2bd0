package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabstash/internal/domain/entity"
)

// TabGroupsCLIRenderer renders non-interactive output for the tab group
// subcommands (list, show, create, rename, delete, restore).
type TabGroupsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewTabGroupsCLIRenderer(theme *Theme) *TabGroupsCLIRenderer {
	return &TabGroupsCLIRenderer{theme: theme, now: time.Now}
}

func (r *TabGroupsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No tab groups stored.")
}

func (r *TabGroupsCLIRenderer) RenderList(groups []*entity.TabGroup) string {
	if len(groups) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconStack), r.theme.Title.Render("Tab groups")))
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (%d)", len(groups))))
	b.WriteString("\n\n")

	for _, g := range groups {
		b.WriteString(r.renderOne(g))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *TabGroupsCLIRenderer) renderOne(g *entity.TabGroup) string {
	name := g.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		r.theme.Highlight.Render(string(g.ID)),
		r.theme.Title.Render(name),
		r.theme.BadgeMuted.Render(pluralTabs(g.TabCount())),
		r.theme.Subtle.Render(RelativeTime(g.UpdatedAt, r.now())),
	)
}

// RenderGroup shows one group with its tabs in display order.
func (r *TabGroupsCLIRenderer) RenderGroup(g *entity.TabGroup) string {
	var b strings.Builder
	b.WriteString(r.renderOne(g))
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("created %s, updated %s",
		g.CreatedAt.Local().Format(time.DateTime), g.UpdatedAt.Local().Format(time.DateTime))))
	b.WriteString("\n\n")

	for i, tab := range g.Tabs {
		title := tab.Title
		if title == "" {
			title = tab.URL
		}
		b.WriteString(fmt.Sprintf("%s %s\n    %s\n",
			r.theme.Subtle.Render(fmt.Sprintf("%3d.", i+1)),
			r.theme.Normal.Render(title),
			r.theme.Subtle.Render(tab.URL),
		))
	}
	return b.String()
}

func (r *TabGroupsCLIRenderer) RenderSaved(g *entity.TabGroup) string {
	return fmt.Sprintf("%s Saved %s as %s.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Title.Render(g.Name),
		r.theme.Highlight.Render(string(g.ID)),
	)
}

func (r *TabGroupsCLIRenderer) RenderRenamed(g *entity.TabGroup) string {
	return fmt.Sprintf("%s Renamed %s to %s.",
		r.theme.SuccessStyle.Render(IconPencil),
		r.theme.Highlight.Render(string(g.ID)),
		r.theme.Title.Render(g.Name),
	)
}

func (r *TabGroupsCLIRenderer) RenderDeleted(id entity.TabGroupID) string {
	return fmt.Sprintf("%s Tab group %s deleted.",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(string(id)),
	)
}

func (r *TabGroupsCLIRenderer) RenderChange(signal string, at time.Time) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.Subtle.Render(at.Local().Format(time.TimeOnly)),
		r.theme.Highlight.Render(IconBell),
		r.theme.Normal.Render(signal),
	)
}

func (r *TabGroupsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func pluralTabs(n int) string {
	if n == 1 {
		return "1 tab"
	}
	return fmt.Sprintf("%d tabs", n)
}

// RelativeTime formats t relative to now ("just now", "5m ago", "3d ago").
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format(time.DateOnly)
	}
}

// RenderRestoreHint is printed on stderr so stdout carries only URLs.
func (r *TabGroupsCLIRenderer) RenderRestoreHint(g *entity.TabGroup) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconRestore),
		r.theme.Title.Render(g.Name),
		r.theme.Subtle.Render("(no browser attached, open these URLs to restore the group)"),
	)
}
