package pylist

// CheckedEqual reports whether both lists hold equal elements in the same
// order. It lets a list stored in a cell take part in cell equality.
func (l *List) CheckedEqual(other *List) (bool, error) {
	if l.Len() != other.Len() {
		return false, nil
	}
	for i := range l.Len() {
		if eq, err := l.cells[i].Equal(other.cells[i]); err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

// CheckedCompare orders lists lexicographically by their elements; a list
// that is a prefix of the other sorts first.
func (l *List) CheckedCompare(other *List) (int, error) {
	n, m := l.Len(), other.Len()
	for i := 0; i < n && i < m; i++ {
		a, b := l.cells[i], other.cells[i]
		if lt, err := a.Less(b); err != nil {
			return 0, err
		} else if lt {
			return -1, nil
		}
		if gt, err := a.Greater(b); err != nil {
			return 0, err
		} else if gt {
			return +1, nil
		}
	}
	switch {
	case n < m:
		return -1, nil
	case n > m:
		return +1, nil
	}
	return 0, nil
}
