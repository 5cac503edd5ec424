package decode

import (
	"fmt"
	"net/http"
	"strings"

	openapierrors "github.com/go-openapi/errors"
)

// in is the location reported in go-openapi validation values.
const in = "body"

var (
	_ openapierrors.Error = (*ValidationError)(nil)
	_ openapierrors.Error = (*FieldError)(nil)
)

// FieldError describes one field that could not be converted to its declared
// type.
type FieldError struct {
	// Field is the field name, or the element index for list decoding.
	Field string

	// Type is the declared type of the field.
	Type *Type

	// Value is the raw input value. Nil when the field was missing.
	Value any

	// Err is the underlying cause: a go-openapi validation value for leaf
	// failures, or a *ValidationError for nested records.
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q (%s): %v", e.Field, e.Type, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Code returns the go-openapi validation code of the cause, or 422.
func (e *FieldError) Code() int32 {
	if coded, ok := e.Err.(openapierrors.Error); ok {
		return coded.Code()
	}
	return http.StatusUnprocessableEntity
}

// ValidationError aggregates every field failure of one decode attempt. No
// partially decoded instance is ever returned alongside it.
type ValidationError struct {
	// Record is the schema name the input was decoded against.
	Record string

	// Errors holds one entry per failed field, in schema order.
	Errors []*FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("there were %d errors converting to %s: %s",
		len(e.Errors), e.Record, strings.Join(msgs, "; "))
}

// Code implements the go-openapi errors.Error interface.
func (e *ValidationError) Code() int32 {
	return http.StatusUnprocessableEntity
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}

// Fields returns the names of the failed fields.
func (e *ValidationError) Fields() []string {
	names := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		names[i] = fe.Field
	}
	return names
}

func invalidType(path string, t *Type, raw any) error {
	return openapierrors.InvalidType(path, in, t.String(), raw)
}
