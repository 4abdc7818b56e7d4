package pylist

import "strconv"

// Bound is an optional slice bound. The zero Bound is open.
type Bound struct {
	i   int
	set bool
}

// Open is the unspecified bound, written as an empty side of a Python slice.
var Open = Bound{}

// At returns a bound at index i. Negative i counts from the end.
func At(i int) Bound {
	return Bound{i: i, set: true}
}

func (b Bound) Int() (int, bool) {
	return b.i, b.set
}

func (b Bound) String() string {
	if !b.set {
		return ""
	}
	return strconv.Itoa(b.i)
}

// Slice describes start:stop:step. The zero Slice is [:] with step 1.
type Slice struct {
	Start Bound
	Stop  Bound
	step  int
}

// NewSlice returns start:stop:step, rejecting a zero step.
func NewSlice(start, stop Bound, step int) (Slice, error) {
	if step == 0 {
		return Slice{}, &SliceStepError{}
	}
	return Slice{Start: start, Stop: stop, step: step}, nil
}

// MustSlice is like NewSlice but panics on a zero step.
func MustSlice(start, stop Bound, step int) Slice {
	s, err := NewSlice(start, stop, step)
	if err != nil {
		panic(err)
	}
	return s
}

// Span returns start:stop with step 1.
func Span(start, stop Bound) Slice {
	return Slice{Start: start, Stop: stop, step: 1}
}

func (s Slice) Step() int {
	if s.step == 0 {
		return 1
	}
	return s.step
}

func (s Slice) String() string {
	return s.Start.String() + ":" + s.Stop.String() + ":" + strconv.Itoa(s.Step())
}

// indices resolves the slice against a length. When both bounds are open
// the whole range is walked in the direction of the step. Otherwise an open
// start is 0, an open stop is n, negative bounds count from the end, and a
// step whose sign disagrees with the bounds selects nothing. A bound still
// negative after wrapping is an *IndexError; one past the end is clamped.
func (s Slice) indices(n int) ([]int, error) {
	step := s.Step()
	var out []int

	if !s.Start.set && !s.Stop.set {
		if step > 0 {
			for i := 0; i < n; i += step {
				out = append(out, i)
			}
		} else {
			for i := n - 1; i >= 0; i += step {
				out = append(out, i)
			}
		}
		return out, nil
	}

	start, stop := 0, n
	if s.Start.set {
		start = wrapIndex(s.Start.i, n)
		if start < 0 {
			return nil, &IndexError{Index: s.Start.i, Len: n}
		}
	}
	if s.Stop.set {
		stop = wrapIndex(s.Stop.i, n)
		if stop < 0 {
			return nil, &IndexError{Index: s.Stop.i, Len: n}
		}
	}

	switch {
	case step > 0 && start <= stop:
		for i := start; i < min(stop, n); i += step {
			out = append(out, i)
		}
	case step < 0 && start >= stop:
		for i := min(start, n-1); i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

func wrapIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}
