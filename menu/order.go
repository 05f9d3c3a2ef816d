package menu

import (
	"cmp"
	"slices"
	"strings"
)

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// sortByRank orders items by rank ascending. Items without a rank keep their
// original relative order and follow every ranked item. Equal ranks keep
// their original relative order.
func sortByRank[T any](items []T, rank func(T) (int, bool)) []T {
	type ranked struct {
		item  T
		order int
		has   bool
	}

	tmp := make([]ranked, len(items))
	for i, it := range items {
		order, has := rank(it)
		tmp[i] = ranked{item: it, order: order, has: has}
	}

	slices.SortStableFunc(tmp, func(a, b ranked) int {
		switch {
		case a.has && b.has:
			return cmp.Compare(a.order, b.order)
		case a.has:
			return -1
		case b.has:
			return 1
		default:
			return 0
		}
	})

	out := make([]T, len(tmp))
	for i, r := range tmp {
		out[i] = r.item
	}

	return out
}

// OrderWithRespectTo returns items ordered by their key's position in order.
// Items whose key is not listed keep their relative order after the listed ones.
func OrderWithRespectTo[T any](items []T, order []string, key func(T) string) []T {
	index := make(map[string]int, len(order))
	for i, k := range order {
		if _, seen := index[k]; !seen {
			index[k] = i
		}
	}

	return sortByRank(items, func(it T) (int, bool) {
		i, ok := index[key(it)]
		return i, ok
	})
}
