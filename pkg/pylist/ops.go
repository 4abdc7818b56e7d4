package pylist

import (
	"math"
	"slices"

	"github.com/funvibe/pylist/pkg/cell"
)

// Append adds a copy of each value at the end.
func (l *List) Append(values ...any) *List {
	for _, v := range values {
		l.cells = append(l.cells, cell.From(v))
	}
	return l
}

// Insert adds a copy of v before index i. Like Python, i is clamped to
// the list instead of failing.
func (l *List) Insert(i int, v any) *List {
	i = min(max(wrapIndex(i, len(l.cells)), 0), len(l.cells))
	l.cells = slices.Insert(l.cells, i, cell.From(v))
	return l
}

// Pop removes and returns the last element.
func (l *List) Pop() (cell.Cell, error) {
	return l.PopAt(-1)
}

// PopAt removes and returns the element at i.
func (l *List) PopAt(i int) (cell.Cell, error) {
	j, err := l.index(i)
	if err != nil {
		return cell.Cell{}, err
	}
	c := l.cells[j]
	l.cells = slices.Delete(l.cells, j, j+1)
	return c, nil
}

func (l *List) Clear() *List {
	l.cells = nil
	return l
}

// Extend appends copies of every element of other, in order. Extending a
// list with itself doubles it.
func (l *List) Extend(other *List) *List {
	n := other.Len()
	for i := 0; i < n; i++ {
		l.cells = append(l.cells, other.cells[i].Clone())
	}
	return l
}

// Concat returns a new list with the elements of l followed by those of other.
func (l *List) Concat(other *List) *List {
	out := &List{cells: make([]cell.Cell, 0, l.Len()+other.Len())}
	return out.Extend(l).Extend(other)
}

// Repeat returns a new list holding the elements of l n times over.
func (l *List) Repeat(n int) *List {
	return l.Clone().RepeatInPlace(n)
}

// RepeatInPlace appends n-1 further copies of the current elements.
// A count of zero or less empties the list.
func (l *List) RepeatInPlace(n int) *List {
	if n <= 0 {
		return l.Clear()
	}
	size := len(l.cells)
	if size == 0 {
		return l
	}
	if extra, ok := repeatGrowth(size, n); ok {
		l.cells = slices.Grow(l.cells, extra)
	}
	for t := 1; t < n; t++ {
		for i := 0; i < size; i++ {
			l.cells = append(l.cells, l.cells[i].Clone())
		}
	}
	return l
}

// repeatGrowth returns how many cells repeating size elements n times adds,
// or false when that count does not fit in an int.
func repeatGrowth(size, n int) (int, bool) {
	if size == 0 || n <= 1 {
		return 0, true
	}
	if n-1 > math.MaxInt/size {
		return 0, false
	}
	return size * (n - 1), true
}

// Index returns the position of the first element equal to v, or -1.
func (l *List) Index(v any) (int, error) {
	target := probe(v)
	for i, c := range l.cells {
		eq, err := c.Equal(target)
		if err != nil {
			return -1, err
		}
		if eq {
			return i, nil
		}
	}
	return -1, nil
}

// Count returns the number of elements equal to v.
func (l *List) Count(v any) (int, error) {
	target := probe(v)
	n := 0
	for _, c := range l.cells {
		eq, err := c.Equal(target)
		if err != nil {
			return 0, err
		}
		if eq {
			n++
		}
	}
	return n, nil
}

// Remove deletes the first element equal to v; it does nothing if there is none.
func (l *List) Remove(v any) error {
	i, err := l.Index(v)
	if err != nil || i < 0 {
		return err
	}
	l.cells = slices.Delete(l.cells, i, i+1)
	return nil
}

func (l *List) Reverse() *List {
	slices.Reverse(l.cells)
	return l
}

// probe wraps a search value; a cell is used as is.
func probe(v any) cell.Cell {
	if c, ok := v.(cell.Cell); ok {
		return c
	}
	return cell.From(v)
}
