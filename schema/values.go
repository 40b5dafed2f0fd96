package schema

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Values is the validated-parameter view of one request: field name to
// cleaned, type-coerced value (or resolved record). It is built fresh per
// request and discarded with it.
//
// The typed accessors return the zero value when the field is absent or
// holds a different type; use Has to distinguish.
type Values map[string]any

// RawValues builds an uncleaned view from raw request parameters. Every
// value stays a string. This is what handlers see when validation was
// skipped (non-GET/POST) or degraded to a warning under the lenient policy.
func RawValues(raw url.Values) Values {
	v := make(Values, len(raw))
	for key := range raw {
		v[key] = raw.Get(key)
	}
	return v
}

// Has reports whether the field is present.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Str returns the field as a string.
func (v Values) Str(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the field as an int64.
func (v Values) Int(name string) int64 {
	n, _ := v[name].(int64)
	return n
}

// Float returns the field as a float64.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Bool returns the field as a bool.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Time returns the field as a time.Time.
func (v Values) Time(name string) time.Time {
	t, _ := v[name].(time.Time)
	return t
}

// Decimal returns the field as a decimal.Decimal.
func (v Values) Decimal(name string) decimal.Decimal {
	d, _ := v[name].(decimal.Decimal)
	return d
}

// Record returns the resolved record of a reference field.
func (v Values) Record(name string) any {
	return v[name]
}
