package cell

import (
	"fmt"
	"reflect"
)

// Values handed to From whose type was never seen by New or Register get
// their bundle from the method set instead. The rules are the same as for
// the generic adapters in capability.go.

var (
	boolType     = reflect.TypeFor[bool]()
	intType      = reflect.TypeFor[int]()
	errorType    = reflect.TypeFor[error]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

func resolveValue(v any) *strategy {
	rt := reflect.TypeOf(v)
	if s, ok := strategies.Load(rt); ok {
		return s.(*strategy)
	}
	s, _ := strategies.LoadOrStore(rt, buildReflect(rt))
	return s.(*strategy)
}

func buildReflect(rt reflect.Type) *strategy {
	typ := Type{rt}
	s := &strategy{
		typ: typ,
		load: func(slot any) any {
			return reflect.ValueOf(slot).Elem().Interface()
		},
	}

	if clone := method(rt, "Clone", nil, []reflect.Type{rt}); clone != nil {
		s.clone = func(slot any) any {
			p := reflect.New(rt)
			p.Elem().Set(clone(slot)[0])
			return p.Interface()
		}
		s.wrap = func(v any) any {
			p := reflect.New(rt)
			p.Elem().Set(reflect.ValueOf(v))
			return s.clone(p.Interface())
		}
	} else {
		s.clone = func(slot any) any {
			p := reflect.New(rt)
			p.Elem().Set(reflect.ValueOf(slot).Elem())
			return p.Interface()
		}
		s.wrap = func(v any) any {
			p := reflect.New(rt)
			p.Elem().Set(reflect.ValueOf(v))
			return p.Interface()
		}
	}

	switch {
	case implements(rt, stringerType):
		s.render = func(slot any) string {
			return receiver(rt, stringerType, slot).(fmt.Stringer).String()
		}
	case implements(rt, errorType):
		s.render = func(slot any) string {
			return receiver(rt, errorType, slot).(error).Error()
		}
	case printable(rt.Kind()):
		s.render = func(slot any) string {
			return fmt.Sprint(reflect.ValueOf(slot).Elem().Interface())
		}
	}

	s.equal = reflectEqual(typ)
	compare := reflectCompare(typ)
	s.less = reflectOrder(typ, "Less", "<", compare, func(n int) bool { return n < 0 })
	s.greater = reflectOrder(typ, "Greater", ">", compare, func(n int) bool { return n > 0 })
	return s
}

func reflectEqual(typ Type) func(a, b any) (bool, error) {
	rt := typ.rt
	if eq := method(rt, "Equal", []reflect.Type{rt}, []reflect.Type{boolType}); eq != nil {
		return func(a, b any) (bool, error) {
			return eq(a, reflect.ValueOf(b).Elem())[0].Bool(), nil
		}
	}
	if eq := method(rt, "CheckedEqual", []reflect.Type{rt}, []reflect.Type{boolType, errorType}); eq != nil {
		return func(a, b any) (bool, error) {
			out := eq(a, reflect.ValueOf(b).Elem())
			err, _ := out[1].Interface().(error)
			return out[0].Bool(), err
		}
	}
	if rt.Comparable() {
		return func(a, b any) (equal bool, err error) {
			defer func() {
				if recover() != nil {
					equal, err = false, NewComparisonError(typ, typ, "==")
				}
			}()
			return reflect.ValueOf(a).Elem().Interface() == reflect.ValueOf(b).Elem().Interface(), nil
		}
	}
	return missing(typ, "==")
}

func reflectCompare(typ Type) func(a, b any) (int, error) {
	rt := typ.rt
	if c := method(rt, "Compare", []reflect.Type{rt}, []reflect.Type{intType}); c != nil {
		return func(a, b any) (int, error) {
			return int(c(a, reflect.ValueOf(b).Elem())[0].Int()), nil
		}
	}
	if c := method(rt, "CheckedCompare", []reflect.Type{rt}, []reflect.Type{intType, errorType}); c != nil {
		return func(a, b any) (int, error) {
			out := c(a, reflect.ValueOf(b).Elem())
			err, _ := out[1].Interface().(error)
			return int(out[0].Int()), err
		}
	}
	if kc := kindCompare(rt); kc != nil {
		return func(a, b any) (int, error) {
			return kc(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem()), nil
		}
	}
	return nil
}

func reflectOrder(typ Type, name, op string, compare func(a, b any) (int, error), holds func(int) bool) func(a, b any) (bool, error) {
	rt := typ.rt
	if m := method(rt, name, []reflect.Type{rt}, []reflect.Type{boolType}); m != nil {
		return func(a, b any) (bool, error) {
			return m(a, reflect.ValueOf(b).Elem())[0].Bool(), nil
		}
	}
	if compare != nil {
		return func(a, b any) (bool, error) {
			n, err := compare(a, b)
			return holds(n), err
		}
	}
	return missing(typ, op)
}

type caller func(slot any, args ...reflect.Value) []reflect.Value

// method looks name up on T, then on *T, and returns a caller taking the
// slot as receiver. Methods with a different signature are ignored.
func method(rt reflect.Type, name string, in, out []reflect.Type) caller {
	for _, recv := range []reflect.Type{rt, reflect.PointerTo(rt)} {
		m, ok := recv.MethodByName(name)
		if !ok || !signature(m.Type, in, out) {
			continue
		}
		byValue := recv == rt
		return func(slot any, args ...reflect.Value) []reflect.Value {
			self := reflect.ValueOf(slot)
			if byValue {
				self = self.Elem()
			}
			return m.Func.Call(append([]reflect.Value{self}, args...))
		}
	}
	return nil
}

// signature checks a method type whose first input is the receiver.
func signature(ft reflect.Type, in, out []reflect.Type) bool {
	if ft.IsVariadic() || ft.NumIn() != len(in)+1 || ft.NumOut() != len(out) {
		return false
	}
	for i, t := range in {
		if ft.In(i+1) != t {
			return false
		}
	}
	for i, t := range out {
		if ft.Out(i) != t {
			return false
		}
	}
	return true
}

func implements(rt, it reflect.Type) bool {
	return rt.Implements(it) || reflect.PointerTo(rt).Implements(it)
}

// receiver returns the stored value when T implements it, else the slot
// itself, whose method set also holds the pointer methods.
func receiver(rt, it reflect.Type, slot any) any {
	if rt.Implements(it) {
		return reflect.ValueOf(slot).Elem().Interface()
	}
	return slot
}

func printable(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// kindCompare orders values of the builtin ordered kinds, or returns nil.
// NaN is neither less nor greater than anything.
func kindCompare(rt reflect.Type) func(a, b reflect.Value) int {
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) int { return sign(a.Int() < b.Int(), a.Int() > b.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) int { return sign(a.Uint() < b.Uint(), a.Uint() > b.Uint()) }
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) int { return sign(a.Float() < b.Float(), a.Float() > b.Float()) }
	case reflect.String:
		return func(a, b reflect.Value) int { return sign(a.String() < b.String(), a.String() > b.String()) }
	}
	return nil
}

func sign(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return +1
	}
	return 0
}
