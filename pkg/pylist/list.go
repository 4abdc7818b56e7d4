// Package pylist implements a Python-style list whose elements are
// cell.Cell values of any, possibly different, types.
//
// Elements are owned by the list: values are copied in when added and
// copied out when another list is built from them. At and Ref hand out
// the list's own cell, so casting through them reads or modifies the
// element in place.
package pylist

import (
	"bytes"
	"iter"

	"github.com/funvibe/pylist/pkg/cell"
)

func init() {
	cell.Register[*List]()
}

// List is an ordered, growable sequence of cells. The zero List is empty.
type List struct {
	cells []cell.Cell
}

// New returns a list holding a copy of each value under its dynamic type.
// Cells are copied as cells, not nested.
func New(values ...any) *List {
	l := &List{cells: make([]cell.Cell, 0, len(values))}
	return l.Append(values...)
}

// Of returns a list of values sharing the static type T.
func Of[T any](values ...T) *List {
	l := &List{cells: make([]cell.Cell, len(values))}
	for i, v := range values {
		l.cells[i] = cell.New(v)
	}
	return l
}

// FromSeq collects every value produced by seq.
func FromSeq[T any](seq iter.Seq[T]) *List {
	l := &List{}
	for v := range seq {
		l.cells = append(l.cells, cell.New(v))
	}
	return l
}

// Repeated returns n copies of v.
func Repeated(n int, v any) *List {
	l := &List{}
	if n <= 0 {
		return l
	}
	c := cell.From(v)
	l.cells = make([]cell.Cell, n)
	l.cells[0] = c
	for i := 1; i < n; i++ {
		l.cells[i] = c.Clone()
	}
	return l
}

// WithLen returns a list of n empty cells.
func WithLen(n int) *List {
	return &List{cells: make([]cell.Cell, max(n, 0))}
}

// Clone returns a list owning copies of every element.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	out := &List{cells: make([]cell.Cell, len(l.cells))}
	for i, c := range l.cells {
		out.cells[i] = c.Clone()
	}
	return out
}

// Take moves the elements into a new list and leaves l empty.
func (l *List) Take() *List {
	out := &List{cells: l.cells}
	l.cells = nil
	return out
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cells)
}

func (l *List) index(i int) (int, error) {
	j := wrapIndex(i, len(l.cells))
	if j < 0 || j >= len(l.cells) {
		return 0, &IndexError{Index: i, Len: len(l.cells)}
	}
	return j, nil
}

// At returns the element at i; negative i counts from the end.
// The returned cell shares its value with the list.
func (l *List) At(i int) (cell.Cell, error) {
	j, err := l.index(i)
	if err != nil {
		return cell.Cell{}, err
	}
	return l.cells[j], nil
}

// Ref returns the list's own slot at i, for reassigning or moving the
// element in place.
func (l *List) Ref(i int) (*cell.Cell, error) {
	j, err := l.index(i)
	if err != nil {
		return nil, err
	}
	return &l.cells[j], nil
}

// Set replaces the element at i with a copy of v.
func (l *List) Set(i int, v any) error {
	j, err := l.index(i)
	if err != nil {
		return err
	}
	l.cells[j] = cell.From(v)
	return nil
}

// Slice returns a new list holding copies of the elements selected by s.
// An explicit bound before the start of the list, even after counting from
// the end, fails with *IndexError.
func (l *List) Slice(s Slice) (*List, error) {
	idx, err := s.indices(len(l.cells))
	if err != nil {
		return nil, err
	}
	out := &List{cells: make([]cell.Cell, len(idx))}
	for i, j := range idx {
		out.cells[i] = l.cells[j].Clone()
	}
	return out, nil
}

// All yields each index and element in order.
func (l *List) All() iter.Seq2[int, cell.Cell] {
	return func(yield func(int, cell.Cell) bool) {
		for i, c := range l.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Values yields each element in order.
func (l *List) Values() iter.Seq[cell.Cell] {
	return func(yield func(cell.Cell) bool) {
		for _, c := range l.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// String renders the list as [e0, e1, ...] using each element's own form.
func (l *List) String() string {
	if l.Len() == 0 {
		return "[]"
	}
	var out bytes.Buffer
	out.WriteString("[")
	for i, c := range l.cells {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(c.String())
	}
	out.WriteString("]")
	return out.String()
}
