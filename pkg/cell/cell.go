// Package cell implements a type-erased slot that owns at most one value of
// any concrete type.
//
// A Cell recovers its value with full static typing through Cast, Ref and
// Is, and dispatches rendering, equality and ordering at run time to a
// bundle of capabilities resolved once per stored type. A type that lacks a
// capability falls back to its identity string when rendered and reports a
// *ComparisonError when compared.
//
// Go has no copy constructor: assigning a Cell aliases the owned value. Use
// Clone for an independent copy and Take to move the value out.
package cell

import "reflect"

type box struct {
	slot  any // *T, where T is s.typ
	s     *strategy
	token string
}

// Cell holds zero or one value. The zero Cell is empty.
type Cell struct {
	b *box
}

// New wraps a copy of v under its static type T. Types implementing Cloner
// are copied with Clone. Wrapping a Cell clones it, and an interface-typed
// v is wrapped under its dynamic type, as From does.
func New[T any](v T) Cell {
	if c, ok := any(v).(Cell); ok {
		return c.Clone()
	}
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return From(v)
	}
	s := resolve[T]()
	return Cell{&box{slot: s.clone(&v), s: s, token: mintToken()}}
}

// From wraps a copy of v under its dynamic type. A nil v gives an empty cell.
func From(v any) Cell {
	switch v := v.(type) {
	case nil:
		return Cell{}
	case Cell:
		return v.Clone()
	}
	s := resolveValue(v)
	return Cell{&box{slot: s.wrap(v), s: s, token: mintToken()}}
}

// Store replaces the content of c with v under the static type T.
func Store[T any](c *Cell, v T) {
	*c = New(v)
}

// Assign replaces the content of c with v under its dynamic type.
func (c *Cell) Assign(v any) {
	*c = From(v)
}

// Reset drops the owned value.
func (c *Cell) Reset() {
	c.b = nil
}

func (c Cell) HasValue() bool {
	return c.b != nil
}

// Type returns the stored type, or NoType when empty.
func (c Cell) Type() Type {
	if c.b == nil {
		return NoType
	}
	return c.b.s.typ
}

// Identity returns a debug string naming the stored type and the token
// minted when the value was wrapped. Clones get a new token.
func (c Cell) Identity() string {
	if c.b == nil {
		return "None"
	}
	return c.b.s.typ.String() + "@" + c.b.token
}

// String renders the value with its own textual form, or its identity when
// the type has none.
func (c Cell) String() string {
	if c.b == nil {
		return "None"
	}
	if render := c.b.s.render; render != nil {
		return render(c.b.slot)
	}
	return c.Identity()
}

// Any returns a copy of the stored value, or nil when empty.
func (c Cell) Any() any {
	if c.b == nil {
		return nil
	}
	return c.b.s.load(c.b.slot)
}

// Clone returns a cell owning an independent copy of the value.
func (c Cell) Clone() Cell {
	if c.b == nil {
		return Cell{}
	}
	return Cell{&box{slot: c.b.s.clone(c.b.slot), s: c.b.s, token: mintToken()}}
}

// Take moves the value out into a new cell and leaves c empty.
func (c *Cell) Take() Cell {
	out := *c
	c.b = nil
	return out
}

func (c *Cell) Swap(other *Cell) {
	c.b, other.b = other.b, c.b
}

// Is reports whether c holds a value of exactly type T.
func Is[T any](c Cell) bool {
	if c.b == nil {
		return false
	}
	_, ok := c.b.slot.(*T)
	return ok
}

// Cast returns a copy of the stored value as T. Casting to Cell returns c.
func Cast[T any](c Cell) (T, error) {
	if self, ok := any(&c).(*T); ok {
		return *self, nil
	}
	p, err := Ref[T](c)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the stored value for in-place modification.
func Ref[T any](c Cell) (*T, error) {
	if c.b == nil {
		return nil, &AccessError{}
	}
	p, ok := c.b.slot.(*T)
	if !ok {
		return nil, NewCastError(c.b.s.typ, TypeFor[T]())
	}
	return p, nil
}

// Equal reports whether both cells are empty, or hold equal values of the
// same type. Values of different types are unequal. A type without
// equality yields a *ComparisonError.
func (c Cell) Equal(other Cell) (bool, error) {
	if c.b == nil || other.b == nil {
		return c.b == nil && other.b == nil, nil
	}
	if c.b.s.typ != other.b.s.typ {
		return false, nil
	}
	return c.b.s.equal(c.b.slot, other.b.slot)
}

func (c Cell) NotEqual(other Cell) (bool, error) {
	eq, err := c.Equal(other)
	return !eq, err
}

// Less orders two cells of the same type. Empty cells, mismatched types and
// types without ordering yield a *ComparisonError.
func (c Cell) Less(other Cell) (bool, error) {
	if err := c.orderable(other, "<"); err != nil {
		return false, err
	}
	return c.b.s.less(c.b.slot, other.b.slot)
}

func (c Cell) Greater(other Cell) (bool, error) {
	if err := c.orderable(other, ">"); err != nil {
		return false, err
	}
	return c.b.s.greater(c.b.slot, other.b.slot)
}

func (c Cell) LessEqual(other Cell) (bool, error) {
	if lt, err := c.Less(other); err != nil || lt {
		return lt, err
	}
	return c.Equal(other)
}

func (c Cell) GreaterEqual(other Cell) (bool, error) {
	if gt, err := c.Greater(other); err != nil || gt {
		return gt, err
	}
	return c.Equal(other)
}

func (c Cell) orderable(other Cell, op string) error {
	if c.b == nil || other.b == nil || c.b.s.typ != other.b.s.typ {
		return NewComparisonError(c.Type(), other.Type(), op)
	}
	return nil
}
