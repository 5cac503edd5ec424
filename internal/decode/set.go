package decode

// SetValue is the decoded value of a Set field: an unordered collection of
// distinct, comparable values.
type SetValue map[any]struct{}

// NewSet builds a SetValue from values. Values must be comparable.
func NewSet(values ...any) SetValue {
	s := make(SetValue, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is a member of s.
func (s SetValue) Has(v any) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s SetValue) Len() int { return len(s) }

// Values returns the members in unspecified order.
func (s SetValue) Values() []any {
	out := make([]any, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
