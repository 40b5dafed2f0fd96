// Package schema declares per-field validation rules for API parameters
// and interprets them against the raw values of a request.
//
// A Schema is built once per endpoint and never mutated afterwards. Rule
// constraints beyond the basic type coercion are expressed as
// go-playground/validator tag strings and evaluated with validator.Var
// after coercion, so the full tag vocabulary (min, max, oneof, email, ...)
// is available without a struct per endpoint.
package schema

import (
	"context"
	"errors"
)

// Kind identifies the Go type a field's raw value is coerced to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
	KindDecimal
	KindReference
)

// ErrNotFound is returned by Lookup implementations when no record has the
// requested primary key.
var ErrNotFound = errors.New("record not found")

// Lookup retrieves a record by its integer primary key. Implementations
// wrap whatever the application uses as its system of record; the pglookup
// package provides a PostgreSQL-backed one.
type Lookup interface {
	FindByPK(ctx context.Context, pk int64) (any, error)
}

// Field is the validation rule for a single named parameter.
//
// Fields are required unless Optional() has been applied. Rules holds a
// validator tag string ("min=0", "max=100,oneof=a b", ...) applied to the
// coerced value; it is honored for Int, Float, String and Decimal kinds.
type Field struct {
	Kind     Kind
	Required bool
	Rules    string
	Layout   string // time layout for KindTime; defaults to RFC3339
	Lookup   Lookup // record lookup for KindReference
}

// Optional returns a copy of the field with the required flag cleared.
func (f Field) Optional() Field {
	f.Required = false
	return f
}

// Int declares a required integer field with optional validator rules.
func Int(rules string) Field {
	return Field{Kind: KindInt, Required: true, Rules: rules}
}

// Float declares a required floating-point field.
func Float(rules string) Field {
	return Field{Kind: KindFloat, Required: true, Rules: rules}
}

// String declares a required string field.
func String(rules string) Field {
	return Field{Kind: KindString, Required: true, Rules: rules}
}

// Bool declares a required boolean field. Accepted raw values are the ones
// strconv.ParseBool understands.
func Bool() Field {
	return Field{Kind: KindBool, Required: true}
}

// Time declares a required timestamp field parsed with the given layout.
// An empty layout means RFC3339.
func Time(layout string) Field {
	return Field{Kind: KindTime, Required: true, Layout: layout}
}

// Decimal declares a required fixed-point decimal field. Rules are applied
// to the float64 rendering of the value.
func Decimal(rules string) Field {
	return Field{Kind: KindDecimal, Required: true, Rules: rules}
}

// Reference declares a field resolved to a record instead of a scalar.
// The request must carry a companion "<name>-id" parameter holding the
// record's primary key; resolution is performed by the api package.
func Reference(l Lookup) Field {
	return Field{Kind: KindReference, Required: true, Lookup: l}
}

// Schema maps parameter names to their rules. It is the accept contract of
// one endpoint: only named fields are cleaned, unknown request keys are
// ignored.
type Schema map[string]Field

// FieldError reports a single failed field in a form the client can act on.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}
