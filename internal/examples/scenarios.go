package examples

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/funvibe/pylist/pkg/cell"
	"github.com/funvibe/pylist/pkg/pylist"
)

func init() {
	Register("create_plist", true, createList)
	Register("add_element", true, addElement)
	Register("remove_element", true, removeElement)
	Register("concat_and_duplicate_list", true, concatAndDuplicate)
	Register("embed_list", true, embedList)
	Register("list_index_and_slice", true, indexAndSlice)
	Register("element_query", true, elementQuery)
	Register("list_reverse", true, listReverse)
	Register("list_sort", true, listSort)
	Register("list_operator", true, listOperator)
	Register("default_output", true, defaultOutput)
	Register("type_cast", true, typeCast)
	Register("type_check", true, typeCheck)
	Register("some_exception", true, someException)
}

// userType renders itself.
type userType struct {
	x int
}

func (u userType) String() string {
	return fmt.Sprintf("User(%d)", u.x)
}

// plain has neither a printed form nor an order.
type plain struct{}

// opaque cannot be compared at all.
type opaque struct {
	data []byte
}

func createList(env *Env) error {
	l1 := pylist.New(1, 1.2, "???", userType{1})
	env.Println(l1)

	l2 := pylist.WithLen(3)
	env.Println(l2)

	l3 := pylist.Repeated(2, l1)
	env.Println(l3)

	l4 := pylist.FromSeq(slices.Values([]int{1, 2, 3}))
	env.Println(l4)

	l5 := l4.Clone()
	env.Println(l5)

	l6 := l5.Take()
	env.Println(l5)
	env.Println(l6)
	return nil
}

func addElement(env *Env) error {
	l := &pylist.List{}
	env.Println(l)

	l.Append(1)
	env.Println(l)

	l.Insert(0, "wow")
	env.Println(l)

	l.Append(userType{2})
	env.Println(l)
	return nil
}

func removeElement(env *Env) error {
	l := pylist.New(1, 1.2, "hello", "hello", userType{3})
	env.Println(l)

	if _, err := l.PopAt(0); err != nil {
		return err
	}
	env.Println(l)

	if _, err := l.Pop(); err != nil {
		return err
	}
	env.Println(l)

	if err := l.Remove("hello"); err != nil {
		return err
	}
	env.Println(l)
	return nil
}

func concatAndDuplicate(env *Env) error {
	l := pylist.New(1, 1.2)
	env.Println(l)

	l.Extend(pylist.New("wow", userType{3}))
	env.Println(l)
	env.Println(pylist.New("???", 2.2).Concat(l))
	env.Println(l.Repeat(2))
	env.Println(l.Repeat(2))

	l.Extend(l)
	env.Println(l)
	return nil
}

func embedList(env *Env) error {
	l := pylist.New("禁止套娃")
	for range 5 {
		l = pylist.New("禁止", l)
	}
	env.Println(l)
	return nil
}

func indexAndSlice(env *Env) error {
	l := pylist.New(1, 1.2, "wow", "???", userType{3})

	for _, i := range []int{2, -2} {
		c, err := l.At(i)
		if err != nil {
			return err
		}
		env.Println(c)
	}

	open, at := pylist.Open, pylist.At
	for _, s := range []pylist.Slice{
		pylist.Span(at(1), at(3)),
		pylist.Span(at(1), at(-1)),
		{},
		pylist.Span(at(-1), open),
		pylist.Span(open, at(1)),
		pylist.MustSlice(open, open, -1),
		pylist.MustSlice(open, open, 2),
		pylist.MustSlice(at(1), at(3), -1),
		pylist.MustSlice(at(3), at(1), 1),
	} {
		part, err := l.Slice(s)
		if err != nil {
			return err
		}
		env.Println(part)
	}
	return nil
}

func elementQuery(env *Env) error {
	l := pylist.New(1, 2, "???", 2, "!!!", 2)

	for _, v := range []any{"???", 15} {
		i, err := l.Index(v)
		if err != nil {
			return err
		}
		env.Println(i)
	}
	for _, v := range []any{2, "..."} {
		n, err := l.Count(v)
		if err != nil {
			return err
		}
		env.Println(n)
	}
	return nil
}

func listReverse(env *Env) error {
	l := pylist.New("灵梦", "早苗", "魔理沙")
	env.Println(l)
	env.Println(l.Reverse())
	return nil
}

func listSort(env *Env) error {
	l := pylist.New("Reimu", "Marisa", "Sakuya", "Sanae")
	env.Println(l)

	if err := l.Sort(false); err != nil {
		return err
	}
	env.Println(l)

	if err := l.Sort(true); err != nil {
		return err
	}
	env.Println(l)

	// Shorter names first, then alphabetical.
	byLen := func(s string) cell.Tuple { return cell.TupleOf(len(s), s) }
	if err := pylist.SortBy(l, byLen, false); err != nil {
		return err
	}
	env.Println(l)

	il := &pylist.List{}
	for i := range l.Len() {
		il.Append(i)
	}
	env.Println(il)

	// Sort the indices by the names they point at.
	var keyErr error
	byName := func(i int) cell.Cell {
		c, err := l.At(i)
		if err != nil && keyErr == nil {
			keyErr = err
		}
		return c
	}
	if err := pylist.SortBy(il, byName, false); err != nil {
		return err
	}
	if keyErr != nil {
		return keyErr
	}
	env.Println(il)
	return nil
}

func listOperator(env *Env) error {
	l := pylist.New(1, 2, 3, 4)

	inc, err := pylist.Map(l, func(x int) int { return x + 1 })
	if err != nil {
		return err
	}
	env.Println(inc)

	strs, err := pylist.Map(l, strconv.Itoa)
	if err != nil {
		return err
	}
	dots, err := pylist.Map(strs, func(s string) string { return s + "..." })
	if err != nil {
		return err
	}
	env.Println(dots)

	if _, err := pylist.ForEach(l, func(x *int) { *x++ }); err != nil {
		return err
	}
	if _, err := pylist.ForEach(l, func(x *int) { env.Println(*x) }); err != nil {
		return err
	}
	env.Println(l)

	inc, err = pylist.Map(l, func(x int) int { return x + 1 })
	if err != nil {
		return err
	}
	small, err := pylist.Filter(inc, func(x int) bool { return x < 5 })
	if err != nil {
		return err
	}
	env.Println(small)
	return nil
}

func defaultOutput(env *Env) error {
	l := pylist.New(plain{})
	ref, err := l.Ref(0)
	if err != nil {
		return err
	}
	env.Println(l)
	env.Println(ref.Identity())

	// Move the value out and leave the slot empty.
	ref.Take()
	env.Println(l)
	env.Println(ref.Identity())
	return nil
}

func typeCast(env *Env) error {
	l := pylist.New(1, 1.2, "???")
	env.Println(l)

	first, err := l.At(0)
	if err != nil {
		return err
	}
	p, err := cell.Ref[int](first)
	if err != nil {
		return err
	}
	*p = 2
	env.Println(l)

	last, err := l.At(-1)
	if err != nil {
		return err
	}
	s, err := cell.Cast[string](last)
	if err != nil {
		return err
	}
	env.Println(s)
	return nil
}

func typeCheck(env *Env) error {
	l := &pylist.List{}
	for range 10 {
		if env.rand.IntN(2) == 1 {
			l.Append(233)
		} else {
			l.Append("???")
		}
	}

	for c := range l.Values() {
		switch {
		case cell.Is[int](c):
			v, err := cell.Cast[int](c)
			if err != nil {
				return err
			}
			env.Println(v)
		case c.Type() == cell.TypeFor[string]():
			v, err := cell.Ref[string](c)
			if err != nil {
				return err
			}
			env.Println(*v)
		default:
			return fmt.Errorf("unexpected element type %s", c.Type())
		}
	}
	return nil
}

// someException prints the errors the library reports for misuse. Any
// other outcome is itself an error.
func someException(env *Env) error {
	var cmpErr *cell.ComparisonError
	var castErr *cell.CastError
	var accessErr *cell.AccessError

	{
		l := pylist.New(opaque{}, opaque{}, opaque{})
		_, err := l.Count(opaque{})
		if !errors.As(err, &cmpErr) {
			return unexpected("count without ==", err)
		}
		env.Println(err)
	}

	{
		l := pylist.New(1, 2, "???")
		err := l.Sort(false)
		if !errors.As(err, &cmpErr) {
			return unexpected("sort of mixed types", err)
		}
		env.Println(err)

		err = pylist.SortBy(l, func(i int) int { return i }, true)
		if !errors.As(err, &castErr) {
			return unexpected("sort keyed on int", err)
		}
		env.Println(err)
	}

	{
		l := pylist.WithLen(2)
		if err := l.Set(0, 1); err != nil {
			return err
		}

		c, err := l.At(0)
		if err != nil {
			return err
		}
		_, err = cell.Cast[string](c)
		if !errors.As(err, &castErr) {
			return unexpected("cast of int to string", err)
		}
		env.Println(err)

		c, err = l.At(1)
		if err != nil {
			return err
		}
		_, err = cell.Cast[int](c)
		if !errors.As(err, &accessErr) {
			return unexpected("cast of empty cell", err)
		}
		env.Println(err)
	}
	return nil
}

func unexpected(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: no error reported", what)
	}
	return fmt.Errorf("%s: %w", what, err)
}
