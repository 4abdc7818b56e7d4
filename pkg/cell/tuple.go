package cell

import "strings"

// Tuple is a fixed group of cells. Tuples compare element by element, the
// way a key of several fields is sorted.
type Tuple []Cell

func TupleOf(values ...any) Tuple {
	t := make(Tuple, len(values))
	for i, v := range values {
		t[i] = From(v)
	}
	return t
}

func (t Tuple) String() string {
	var out strings.Builder
	out.WriteString("(")
	for i, el := range t {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.String())
	}
	out.WriteString(")")
	return out.String()
}

func (t Tuple) Clone() Tuple {
	out := make(Tuple, len(t))
	for i, el := range t {
		out[i] = el.Clone()
	}
	return out
}

func (t Tuple) CheckedEqual(other Tuple) (bool, error) {
	if len(t) != len(other) {
		return false, nil
	}
	for i := range t {
		if eq, err := t[i].Equal(other[i]); err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

// CheckedCompare orders tuples lexicographically; a shorter prefix sorts first.
func (t Tuple) CheckedCompare(other Tuple) (int, error) {
	for i := 0; i < len(t) && i < len(other); i++ {
		if lt, err := t[i].Less(other[i]); err != nil {
			return 0, err
		} else if lt {
			return -1, nil
		}
		if gt, err := t[i].Greater(other[i]); err != nil {
			return 0, err
		} else if gt {
			return +1, nil
		}
	}
	return sign(len(t) < len(other), len(t) > len(other)), nil
}
