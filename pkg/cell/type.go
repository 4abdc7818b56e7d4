package cell

import "reflect"

// Type identifies the concrete type held by a Cell.
// The zero Type is the "no type" of an empty cell.
type Type struct {
	rt reflect.Type
}

// NoType is the type reported by an empty cell.
var NoType = Type{}

// TypeFor returns the Type for T.
func TypeFor[T any]() Type {
	return Type{reflect.TypeFor[T]()}
}

func (t Type) IsNone() bool {
	return t.rt == nil
}

// Reflect returns the underlying reflect.Type, or nil for NoType.
func (t Type) Reflect() reflect.Type {
	return t.rt
}

func (t Type) String() string {
	if t.rt == nil {
		return "void"
	}
	return t.rt.String()
}
