package pylist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSliceIndices(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		n     int
		want  []int
	}{
		{"[1:3]", Span(At(1), At(3)), 5, []int{1, 2}},
		{"[1:-1]", Span(At(1), At(-1)), 5, []int{1, 2, 3}},
		{"[:]", Slice{}, 5, []int{0, 1, 2, 3, 4}},
		{"[-1:]", Span(At(-1), Open), 5, []int{4}},
		{"[:1]", Span(Open, At(1)), 5, []int{0}},
		{"[::-1]", MustSlice(Open, Open, -1), 5, []int{4, 3, 2, 1, 0}},
		{"[::2]", MustSlice(Open, Open, 2), 5, []int{0, 2, 4}},
		{"[::-2]", MustSlice(Open, Open, -2), 5, []int{4, 2, 0}},
		{"[1:3:-1]", MustSlice(At(1), At(3), -1), 5, nil},
		{"[3:1:1]", MustSlice(At(3), At(1), 1), 5, nil},
		{"[3:1:-1]", MustSlice(At(3), At(1), -1), 5, []int{3, 2}},
		{"[-1:-4:-1]", MustSlice(At(-1), At(-4), -1), 5, []int{4, 3, 2}},
		{"[:2:-1]", MustSlice(Open, At(2), -1), 5, nil},
		{"[3::-1]", MustSlice(At(3), Open, -1), 5, nil},
		{"[1:10]", Span(At(1), At(10)), 5, []int{1, 2, 3, 4}},
		{"[10:0:-1]", MustSlice(At(10), At(0), -1), 5, []int{4, 3, 2, 1}},
		{"[-1:-5:-1]", MustSlice(At(-1), At(-5), -1), 5, []int{4, 3, 2, 1}},
		{"[:] of empty", Slice{}, 0, nil},
		{"[::-1] of empty", MustSlice(Open, Open, -1), 0, nil},
		{"[0:0]", Span(At(0), At(0)), 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.slice.indices(tt.n)
			if err != nil {
				t.Fatalf("indices(%d): %v", tt.n, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("indices(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestSliceIndicesBeforeStart(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		index int
	}{
		{"[-10:2]", Span(At(-10), At(2)), -10},
		{"[1:-6]", Span(At(1), At(-6)), -6},
		{"[-1:-10:-1]", MustSlice(At(-1), At(-10), -1), -10},
		{"[-6::2]", MustSlice(At(-6), Open, 2), -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.slice.indices(5)
			var idxErr *IndexError
			if !errors.As(err, &idxErr) {
				t.Fatalf("expected IndexError, got %v (indices %v)", err, got)
			}
			if idxErr.Index != tt.index || idxErr.Len != 5 {
				t.Errorf("error = %+v, want index %d length 5", idxErr, tt.index)
			}
		})
	}
}

func TestZeroStep(t *testing.T) {
	_, err := NewSlice(Open, Open, 0)
	var stepErr *SliceStepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected SliceStepError, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustSlice did not panic on zero step")
		}
	}()
	MustSlice(At(1), Open, 0)
}

func TestSliceString(t *testing.T) {
	if got := MustSlice(At(1), Open, -1).String(); got != "1::-1" {
		t.Errorf("got %q", got)
	}
	if got := (Slice{}).String(); got != "::1" {
		t.Errorf("got %q", got)
	}
}

func TestSliceList(t *testing.T) {
	l := New(1, 1.2, "wow", "???", 3)

	all, err := l.Slice(Slice{})
	if err != nil {
		t.Fatal(err)
	}
	if all.String() != l.String() {
		t.Errorf("[:] = %s", all)
	}
	rev, err := l.Slice(MustSlice(Open, Open, -1))
	if err != nil {
		t.Fatal(err)
	}
	if got := rev.String(); got != "[3, ???, wow, 1.2, 1]" {
		t.Errorf("[::-1] = %s", got)
	}

	if part, err := l.Slice(Span(At(-10), At(2))); err == nil {
		t.Errorf("[-10:2] = %s, want IndexError", part)
	}

	// slices are copies
	part, err := l.Slice(Span(At(0), At(2)))
	if err != nil {
		t.Fatal(err)
	}
	if err := part.Set(0, "changed"); err != nil {
		t.Fatal(err)
	}
	if got := l.String(); got != "[1, 1.2, wow, ???, 3]" {
		t.Errorf("original changed: %s", got)
	}
}
