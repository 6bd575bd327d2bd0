package persistence

import (
	"sort"
	"strings"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
)

// SortGroups orders groups in place for backends without a query engine.
// Ties fall back to ID so the result is deterministic.
func SortGroups(groups []*entity.TabGroup, order repository.ListOrder) {
	order = order.Normalize()
	less := func(a, b *entity.TabGroup) int {
		switch order.Key {
		case repository.OrderByUpdatedAt:
			return a.UpdatedAt.Compare(b.UpdatedAt)
		case repository.OrderByName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		c := less(groups[i], groups[j])
		if c == 0 {
			c = strings.Compare(string(groups[i].ID), string(groups[j].ID))
		}
		if order.Direction == repository.Descending {
			return c > 0
		}
		return c < 0
	})
}

// OrderClause renders a SQL ORDER BY clause from a whitelisted order.
func OrderClause(order repository.ListOrder) string {
	order = order.Normalize()
	dir := "ASC"
	if order.Direction == repository.Descending {
		dir = "DESC"
	}
	var col string
	switch order.Key {
	case repository.OrderByUpdatedAt:
		col = "updated_at"
	case repository.OrderByName:
		col = "LOWER(name)"
	default:
		col = "created_at"
	}
	return "ORDER BY " + col + " " + dir + ", id " + dir
}
