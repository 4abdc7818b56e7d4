package cell

import (
	"fmt"
	"reflect"
	"sync"
)

// Capability interfaces. A stored type opts into a capability by
// implementing the matching method on its value or pointer receiver.
// Builtin scalar kinds get rendering, equality and ordering without any
// methods; other Go-comparable types get equality from ==.

// Equaler is implemented by types that define their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// CheckedEqualer is Equaler for containers whose element comparison can fail.
type CheckedEqualer[T any] interface {
	CheckedEqual(other T) (bool, error)
}

// Lesser provides only the < capability.
type Lesser[T any] interface {
	Less(other T) bool
}

// Greaterer provides only the > capability.
type Greaterer[T any] interface {
	Greater(other T) bool
}

// Comparer provides both < and >: Compare returns -1, 0 or +1.
type Comparer[T any] interface {
	Compare(other T) int
}

// CheckedComparer is Comparer for containers whose element comparison can fail.
type CheckedComparer[T any] interface {
	CheckedCompare(other T) (int, error)
}

// Cloner is implemented by types whose copy must be deeper than Go assignment.
type Cloner[T any] interface {
	Clone() T
}

// strategy is the behavior bundle of one stored type. It is resolved the
// first time the type is wrapped and shared by every cell holding that type.
// Slots passed to the functions are always *T of the strategy's type.
type strategy struct {
	typ     Type
	wrap    func(v any) any // copies v into a new slot
	load    func(slot any) any
	clone   func(slot any) any
	render  func(slot any) string // nil: no custom form
	equal   func(a, b any) (bool, error)
	less    func(a, b any) (bool, error)
	greater func(a, b any) (bool, error)
}

// strategies maps reflect.Type to *strategy.
var strategies sync.Map

func init() {
	Register[bool]()
	Register[int]()
	Register[int8]()
	Register[int16]()
	Register[int32]()
	Register[int64]()
	Register[uint]()
	Register[uint8]()
	Register[uint16]()
	Register[uint32]()
	Register[uint64]()
	Register[float32]()
	Register[float64]()
	Register[complex64]()
	Register[complex128]()
	Register[string]()
	Register[Tuple]()
}

// Register resolves the capabilities of T ahead of time, so that values of
// T passed through From use the same bundle as New[T].
func Register[T any]() {
	resolve[T]()
}

func resolve[T any]() *strategy {
	rt := reflect.TypeFor[T]()
	if s, ok := strategies.Load(rt); ok {
		return s.(*strategy)
	}
	s, _ := strategies.LoadOrStore(rt, build[T](rt))
	return s.(*strategy)
}

func build[T any](rt reflect.Type) *strategy {
	typ := Type{rt}
	clone := cloneOf[T]()
	return &strategy{
		typ: typ,
		wrap: func(v any) any {
			x := v.(T)
			return clone(&x)
		},
		load:    func(slot any) any { return *slot.(*T) },
		clone:   clone,
		render:  renderOf[T](rt),
		equal:   equalOf[T](typ),
		less:    lessOf[T](typ),
		greater: greaterOf[T](typ),
	}
}

// bind returns an accessor viewing a slot of T as I, when T or *T implements I.
func bind[I, T any]() (func(p *T) I, bool) {
	rt, it := reflect.TypeFor[T](), reflect.TypeFor[I]()
	switch {
	case rt.Implements(it):
		return func(p *T) I { return any(*p).(I) }, true
	case reflect.PointerTo(rt).Implements(it):
		return func(p *T) I { return any(p).(I) }, true
	}
	return nil, false
}

func cloneOf[T any]() func(slot any) any {
	if c, ok := bind[Cloner[T], T](); ok {
		return func(slot any) any {
			p := new(T)
			*p = c(slot.(*T)).Clone()
			return p
		}
	}
	return func(slot any) any {
		p := new(T)
		*p = *slot.(*T)
		return p
	}
}

func renderOf[T any](rt reflect.Type) func(slot any) string {
	if s, ok := bind[fmt.Stringer, T](); ok {
		return func(slot any) string { return s(slot.(*T)).String() }
	}
	if e, ok := bind[error, T](); ok {
		return func(slot any) string { return e(slot.(*T)).Error() }
	}
	if printable(rt.Kind()) {
		return func(slot any) string { return fmt.Sprint(*slot.(*T)) }
	}
	return nil
}

func equalOf[T any](typ Type) func(a, b any) (bool, error) {
	if eq, ok := bind[Equaler[T], T](); ok {
		return func(a, b any) (bool, error) {
			return eq(a.(*T)).Equal(*b.(*T)), nil
		}
	}
	if eq, ok := bind[CheckedEqualer[T], T](); ok {
		return func(a, b any) (bool, error) {
			return eq(a.(*T)).CheckedEqual(*b.(*T))
		}
	}
	if typ.rt.Comparable() {
		return func(a, b any) (equal bool, err error) {
			// == on a comparable struct panics when an interface field holds
			// an incomparable dynamic value.
			defer func() {
				if recover() != nil {
					equal, err = false, NewComparisonError(typ, typ, "==")
				}
			}()
			return any(*a.(*T)) == any(*b.(*T)), nil
		}
	}
	return missing(typ, "==")
}

func lessOf[T any](typ Type) func(a, b any) (bool, error) {
	if lt, ok := bind[Lesser[T], T](); ok {
		return func(a, b any) (bool, error) {
			return lt(a.(*T)).Less(*b.(*T)), nil
		}
	}
	if compare := compareOf[T](typ); compare != nil {
		return func(a, b any) (bool, error) {
			n, err := compare(a, b)
			return n < 0, err
		}
	}
	return missing(typ, "<")
}

func greaterOf[T any](typ Type) func(a, b any) (bool, error) {
	if gt, ok := bind[Greaterer[T], T](); ok {
		return func(a, b any) (bool, error) {
			return gt(a.(*T)).Greater(*b.(*T)), nil
		}
	}
	if compare := compareOf[T](typ); compare != nil {
		return func(a, b any) (bool, error) {
			n, err := compare(a, b)
			return n > 0, err
		}
	}
	return missing(typ, ">")
}

func compareOf[T any](typ Type) func(a, b any) (int, error) {
	if c, ok := bind[Comparer[T], T](); ok {
		return func(a, b any) (int, error) {
			return c(a.(*T)).Compare(*b.(*T)), nil
		}
	}
	if c, ok := bind[CheckedComparer[T], T](); ok {
		return func(a, b any) (int, error) {
			return c(a.(*T)).CheckedCompare(*b.(*T))
		}
	}
	if kc := kindCompare(typ.rt); kc != nil {
		return func(a, b any) (int, error) {
			return kc(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem()), nil
		}
	}
	return nil
}

func missing(typ Type, op string) func(a, b any) (bool, error) {
	return func(a, b any) (bool, error) {
		return false, NewComparisonError(typ, typ, op)
	}
}
