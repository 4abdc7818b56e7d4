package pylist

import "github.com/funvibe/pylist/pkg/cell"

// Map returns a new list of f applied to each element. Elements are cast to
// T first, failing with *cell.CastError or *cell.AccessError.
func Map[T, R any](l *List, f func(T) R) (*List, error) {
	out := &List{cells: make([]cell.Cell, 0, l.Len())}
	for _, c := range l.cells {
		v, err := cell.Cast[T](c)
		if err != nil {
			return nil, err
		}
		out.cells = append(out.cells, cell.New(f(v)))
	}
	return out, nil
}

// Filter returns a new list of copies of the elements for which pred holds,
// in order. Elements are cast to T as in Map.
func Filter[T any](l *List, pred func(T) bool) (*List, error) {
	out := &List{}
	for _, c := range l.cells {
		v, err := cell.Cast[T](c)
		if err != nil {
			return nil, err
		}
		if pred(v) {
			out.cells = append(out.cells, c.Clone())
		}
	}
	return out, nil
}

// ForEach calls f with a pointer to each element's stored value, in index
// order, and returns l. With T = cell.Cell, f receives the list's own slots.
func ForEach[T any](l *List, f func(*T)) (*List, error) {
	for i := range l.cells {
		if slot, ok := any(&l.cells[i]).(*T); ok {
			f(slot)
			continue
		}
		p, err := cell.Ref[T](l.cells[i])
		if err != nil {
			return nil, err
		}
		f(p)
	}
	return l, nil
}
