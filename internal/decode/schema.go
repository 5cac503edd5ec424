package decode

import (
	"fmt"
	"strconv"
)

// Field is one named, typed member of a Schema.
type Field struct {
	Name string
	Type *Type
}

// Schema describes the shape of a record: an ordered list of named, typed
// fields. A schema is built once per record type and is safe for concurrent
// use.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
	build  func(*Object) any
}

// NewSchema builds an untyped schema. Decoding against it yields *Object.
// It panics on duplicate field names or missing field types.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Type == nil {
			panic(fmt.Sprintf("decode: field %s.%s has no type", name, f.Name))
		}
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("decode: duplicate field %s.%s", name, f.Name))
		}
		s.fields[i] = f
		s.index[f.Name] = i
	}
	return s
}

// Name returns the record name.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields in order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup finds a declared field by name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Decode converts a raw JSON object into an *Object holding typed values.
// Unknown keys are ignored. Every failed field is collected; if there is at
// least one, a *ValidationError is returned and no Object is built.
func (s *Schema) Decode(raw any) (*Object, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &ValidationError{
			Record: s.name,
			Errors: []*FieldError{{
				Type:  Record(s),
				Value: raw,
				Err:   invalidType(s.name, Record(s), raw),
			}},
		}
	}

	obj, verr := s.decodeObject(m)
	if verr != nil {
		return nil, verr
	}
	return obj, nil
}

func (s *Schema) decodeObject(m map[string]any) (*Object, *ValidationError) {
	obj := &Object{schema: s, values: make(map[string]any, len(s.fields))}
	var errs []*FieldError

	for _, f := range s.fields {
		raw, present := m[f.Name]
		if !present {
			obj.values[f.Name] = nil
			if !f.Type.Nullable() {
				errs = append(errs, &FieldError{Field: f.Name, Type: f.Type, Err: missing(f.Name)})
			}
			continue
		}

		v, err := convert(f.Type, raw, f.Name)
		if err != nil {
			errs = append(errs, &FieldError{Field: f.Name, Type: f.Type, Value: raw, Err: err})
			continue
		}
		obj.values[f.Name] = v
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Record: s.name, Errors: errs}
	}
	return obj, nil
}

// instance turns a decoded object into the record's Go value.
func (s *Schema) instance(obj *Object) any {
	if s.build == nil {
		return obj
	}
	return s.build(obj)
}

// RecordSchema binds a Schema to the Go type T built from it.
type RecordSchema[T any] struct {
	schema *Schema
}

// Define declares a record type. build receives a fully validated Object and
// copies its values into a new T using the typed accessors.
func Define[T any](name string, build func(*Object) *T, fields ...Field) *RecordSchema[T] {
	s := NewSchema(name, fields...)
	s.build = func(o *Object) any { return build(o) }
	return &RecordSchema[T]{schema: s}
}

// Schema returns the underlying schema.
func (r *RecordSchema[T]) Schema() *Schema { return r.schema }

// Type returns a field type that decodes a nested T.
func (r *RecordSchema[T]) Type() *Type { return Record(r.schema) }

// Decode converts a raw JSON object into a *T.
func (r *RecordSchema[T]) Decode(raw any) (*T, error) {
	obj, err := r.schema.Decode(raw)
	if err != nil {
		return nil, err
	}
	return r.schema.build(obj).(*T), nil
}

// DecodeList converts a raw JSON array of objects. Failures of individual
// elements are collected under their index.
func (r *RecordSchema[T]) DecodeList(raw any) ([]*T, error) {
	listName := "[]" + r.schema.name

	items, ok := raw.([]any)
	if !ok {
		t := List(r.Type())
		return nil, &ValidationError{
			Record: listName,
			Errors: []*FieldError{{Type: t, Value: raw, Err: invalidType(listName, t, raw)}},
		}
	}

	out := make([]*T, 0, len(items))
	var errs []*FieldError
	for i, item := range items {
		v, err := r.Decode(item)
		if err != nil {
			errs = append(errs, &FieldError{Field: strconv.Itoa(i), Type: r.Type(), Value: item, Err: err})
			continue
		}
		out = append(out, v)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Record: listName, Errors: errs}
	}
	return out, nil
}

// Object is the typed result of decoding against a Schema. Absent optional
// fields hold nil.
type Object struct {
	schema *Schema
	values map[string]any
}

// Schema returns the schema the object was decoded against.
func (o *Object) Schema() *Schema { return o.schema }

// Value returns the converted value of a field and whether it is non-null.
func (o *Object) Value(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok && v != nil
}

// Get returns the value of a field as T, or the zero T when the field is
// null, absent or of another type.
func Get[T any](o *Object, name string) T {
	v, _ := o.values[name].(T)
	return v
}

// GetPtr returns a pointer to the value of a field, or nil when the field is
// null or absent.
func GetPtr[T any](o *Object, name string) *T {
	if v, ok := o.values[name].(T); ok {
		return &v
	}
	return nil
}

// GetSlice returns a list or tuple field as []T.
func GetSlice[T any](o *Object, name string) []T {
	items, ok := o.values[name].([]any)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if v, ok := item.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// GetMap returns a map field as map[string]V.
func GetMap[V any](o *Object, name string) map[string]V {
	m, ok := o.values[name].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, item := range m {
		if v, ok := item.(V); ok {
			out[k] = v
		}
	}
	return out
}
