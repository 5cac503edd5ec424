package decode

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of a declared field type.
type Kind int

const (
	KindAny Kind = iota
	KindNull
	KindString
	KindInt
	KindFloat
	KindBool
	KindDateTime
	KindDate
	KindRecord
	KindList
	KindSet
	KindTuple
	KindMap
	KindUnion
)

var kindNames = map[Kind]string{
	KindAny:      "any",
	KindNull:     "null",
	KindString:   "string",
	KindInt:      "int",
	KindFloat:    "float",
	KindBool:     "bool",
	KindDateTime: "datetime",
	KindDate:     "date",
	KindRecord:   "record",
	KindList:     "list",
	KindSet:      "set",
	KindTuple:    "tuple",
	KindMap:      "map",
	KindUnion:    "union",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is the declared type of a schema field. Types are immutable once built
// and may be shared between schemas.
type Type struct {
	kind   Kind
	args   []*Type
	schema *Schema
}

// Any accepts every raw value unchanged, including null.
func Any() *Type { return &Type{kind: KindAny} }

// Null accepts only a JSON null.
func Null() *Type { return &Type{kind: KindNull} }

// String accepts a JSON string.
func String() *Type { return &Type{kind: KindString} }

// Int accepts an integral JSON number.
func Int() *Type { return &Type{kind: KindInt} }

// Float accepts any JSON number; integers are widened.
func Float() *Type { return &Type{kind: KindFloat} }

// Bool accepts a JSON boolean.
func Bool() *Type { return &Type{kind: KindBool} }

// DateTime accepts an ISO-8601 timestamp string or a Unix epoch in seconds.
func DateTime() *Type { return &Type{kind: KindDateTime} }

// Date accepts an ISO-8601 calendar date string or a proleptic Gregorian ordinal.
func Date() *Type { return &Type{kind: KindDate} }

// Record decodes a nested JSON object against s.
func Record(s *Schema) *Type {
	if s == nil {
		panic("decode: Record requires a schema")
	}
	return &Type{kind: KindRecord, schema: s}
}

// List declares a JSON array. Without an element type the array is only
// checked for shape and returned as is.
func List(elem ...*Type) *Type {
	if len(elem) > 1 {
		panic("decode: List takes at most one element type")
	}
	return &Type{kind: KindList, args: elem}
}

// Set declares a JSON array collected into a deduplicated SetValue.
func Set(elem ...*Type) *Type {
	if len(elem) > 1 {
		panic("decode: Set takes at most one element type")
	}
	return &Type{kind: KindSet, args: elem}
}

// Tuple declares a fixed-arity JSON array converted positionally.
func Tuple(types ...*Type) *Type {
	return &Type{kind: KindTuple, args: types}
}

// Map declares a JSON object used as a dictionary. Pass either no types or
// exactly a key type and a value type.
func Map(kv ...*Type) *Type {
	if len(kv) != 0 && len(kv) != 2 {
		panic("decode: Map takes either no types or a key and a value type")
	}
	return &Type{kind: KindMap, args: kv}
}

// Union tries each member in declared order; the first that converts wins.
func Union(members ...*Type) *Type {
	if len(members) == 0 {
		panic("decode: Union requires at least one member")
	}
	return &Type{kind: KindUnion, args: members}
}

// Optional is shorthand for Union(t, Null()).
func Optional(t *Type) *Type {
	return Union(t, Null())
}

// Kind reports the shape of t.
func (t *Type) Kind() Kind { return t.kind }

// Schema returns the nested schema of a record type, or nil.
func (t *Type) Schema() *Schema { return t.schema }

// Args returns the type arguments: the element type of a list or set, the
// positions of a tuple, key and value of a map, or the members of a union.
func (t *Type) Args() []*Type {
	out := make([]*Type, len(t.args))
	copy(out, t.args)
	return out
}

// Nullable reports whether null is an acceptable value. Fields whose type is
// not nullable are required.
func (t *Type) Nullable() bool {
	switch t.kind {
	case KindAny, KindNull:
		return true
	case KindUnion:
		for _, m := range t.args {
			if m.Nullable() {
				return true
			}
		}
	}
	return false
}

func (t *Type) String() string {
	switch t.kind {
	case KindRecord:
		return t.schema.Name()
	case KindUnion:
		names := make([]string, len(t.args))
		for i, m := range t.args {
			names[i] = m.String()
		}
		return strings.Join(names, " | ")
	case KindList, KindSet, KindTuple, KindMap:
		if len(t.args) == 0 {
			return t.kind.String()
		}
		names := make([]string, len(t.args))
		for i, a := range t.args {
			names[i] = a.String()
		}
		return t.kind.String() + "[" + strings.Join(names, ", ") + "]"
	default:
		return t.kind.String()
	}
}
