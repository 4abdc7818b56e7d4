package pylist_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/funvibe/pylist/pkg/cell"
	"github.com/funvibe/pylist/pkg/pylist"
	"github.com/google/go-cmp/cmp"
)

func TestMap(t *testing.T) {
	l := pylist.Of(1, 2, 3, 4)

	inc, err := pylist.Map(l, func(x int) int { return x + 1 })
	if err != nil {
		t.Fatal(err)
	}
	expectString(t, inc, "[2, 3, 4, 5]")
	expectString(t, l, "[1, 2, 3, 4]")

	strs, err := pylist.Map(l, strconv.Itoa)
	if err != nil {
		t.Fatal(err)
	}
	dots, err := pylist.Map(strs, func(s string) string { return s + "..." })
	if err != nil {
		t.Fatal(err)
	}
	expectString(t, dots, "[1..., 2..., 3..., 4...]")
}

func TestMapChain(t *testing.T) {
	l := pylist.Of(1, 2, 3)

	inc, err := pylist.Map(l, func(x int) int { return x + 1 })
	if err != nil {
		t.Fatal(err)
	}
	out, err := pylist.Map(inc, func(x int) string { return strconv.Itoa(x) + "..." })
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for c := range out.Values() {
		s, err := cell.Cast[string](c)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, s)
	}
	if diff := cmp.Diff([]string{"2...", "3...", "4..."}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapToAny(t *testing.T) {
	l := pylist.Of(1, 2)
	out, err := pylist.Map(l, func(x int) any {
		if x == 1 {
			return "one"
		}
		return x
	})
	if err != nil {
		t.Fatal(err)
	}
	first, _ := out.At(0)
	second, _ := out.At(1)
	if !cell.Is[string](first) || !cell.Is[int](second) {
		t.Errorf("got types %s and %s", first.Type(), second.Type())
	}
}

func TestMapCastError(t *testing.T) {
	l := pylist.New(1, "two")
	_, err := pylist.Map(l, func(x int) int { return x })
	var castErr *cell.CastError
	if !errors.As(err, &castErr) {
		t.Fatalf("expected CastError, got %v", err)
	}

	_, err = pylist.Map(pylist.WithLen(1), func(x int) int { return x })
	var accessErr *cell.AccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("expected AccessError, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	l := pylist.Of(2, 3, 4, 5)
	inc, err := pylist.Map(l, func(x int) int { return x + 1 })
	if err != nil {
		t.Fatal(err)
	}
	small, err := pylist.Filter(inc, func(x int) bool { return x < 5 })
	if err != nil {
		t.Fatal(err)
	}
	expectString(t, small, "[3, 4]")

	_, err = pylist.Filter(pylist.New("a", 1), func(s string) bool { return true })
	var castErr *cell.CastError
	if !errors.As(err, &castErr) {
		t.Fatalf("expected CastError, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	l := pylist.Of(1, 2, 3, 4)

	var seen []int
	got, err := pylist.ForEach(l, func(x *int) { *x += 1 })
	if err != nil {
		t.Fatal(err)
	}
	if got != l {
		t.Errorf("ForEach did not return its receiver")
	}
	if _, err := pylist.ForEach(got, func(x *int) { seen = append(seen, *x) }); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5}, seen); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	expectString(t, l, "[2, 3, 4, 5]")

	mixed := pylist.New(1, "x")
	if _, err := pylist.ForEach(mixed, func(c *cell.Cell) { c.Reset() }); err != nil {
		t.Fatal(err)
	}
	expectString(t, mixed, "[None, None]")

	_, err = pylist.ForEach(pylist.New(1, "x"), func(x *int) {})
	var castErr *cell.CastError
	if !errors.As(err, &castErr) {
		t.Fatalf("expected CastError, got %v", err)
	}
}
