package pylist

import (
	"sort"

	"github.com/funvibe/pylist/pkg/cell"
)

// Sort orders the elements with cell ordering, ascending unless reverse.
// On error the list is left as it was.
func (l *List) Sort(reverse bool) error {
	return SortBy(l, func(c cell.Cell) cell.Cell { return c }, reverse)
}

// SortBy orders the elements by key. Every element must hold exactly T,
// otherwise a *cell.CastError is returned; key results are compared with
// cell ordering and fail like it. Keys are computed once per element before
// anything moves, and on error the list is left as it was.
func SortBy[T, K any](l *List, key func(T) K, reverse bool) error {
	keys := make([]cell.Cell, len(l.cells))
	for i, c := range l.cells {
		v, err := cell.Cast[T](c)
		if err != nil {
			return err
		}
		keys[i] = keyCell(key(v))
	}

	perm := make([]int, len(keys))
	for i := range perm {
		perm[i] = i
	}

	var err error
	sort.SliceStable(perm, func(i, j int) bool {
		if err != nil {
			return false
		}
		a, b := keys[perm[i]], keys[perm[j]]
		if reverse {
			a, b = b, a
		}
		var lt bool
		lt, err = a.Less(b)
		return lt
	})
	if err != nil {
		return err
	}

	sorted := make([]cell.Cell, len(perm))
	for i, p := range perm {
		sorted[i] = l.cells[p]
	}
	l.cells = sorted
	return nil
}

func keyCell[K any](k K) cell.Cell {
	if c, ok := any(k).(cell.Cell); ok {
		return c
	}
	return cell.New(k)
}
