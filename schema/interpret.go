package schema

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is shared by all schemas; validator instances cache parsed tags.
var validate = validator.New()

// Validate interprets the schema against raw request parameters.
//
// Each non-reference field is coerced to its kind's Go type and then
// checked against its validator rules. The returned Values holds only
// successfully cleaned fields; the FieldError slice, sorted by field name,
// describes every failure. Reference fields are skipped here: resolving
// them needs the companion "<name>-id" key and the request context, which
// the api package owns.
func (s Schema) Validate(raw url.Values) (Values, []FieldError) {
	cleaned := make(Values, len(s))
	var fieldErrors []FieldError

	fail := func(name, msg string) {
		fieldErrors = append(fieldErrors, FieldError{Field: name, Error: msg})
	}

	for name, field := range s {
		if field.Kind == KindReference {
			continue
		}
		if !raw.Has(name) {
			if field.Required {
				fail(name, "is required")
			}
			continue
		}

		value, err := field.coerce(raw.Get(name))
		if err != nil {
			fail(name, err.Error())
			continue
		}

		if field.Rules != "" {
			if err := validate.Var(ruleTarget(field, value), field.Rules); err != nil {
				fail(name, constraintMessage(field, err))
				continue
			}
		}

		cleaned[name] = value
	}

	sort.Slice(fieldErrors, func(i, j int) bool {
		return fieldErrors[i].Field < fieldErrors[j].Field
	})
	return cleaned, fieldErrors
}

// coerce converts one raw string to the field's Go type.
func (f Field) coerce(raw string) (any, error) {
	switch f.Kind {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("must be an integer")
		}
		return n, nil

	case KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("must be a number")
		}
		return v, nil

	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("must be a boolean")
		}
		return b, nil

	case KindTime:
		layout := f.Layout
		if layout == "" {
			layout = time.RFC3339
		}
		t, err := time.Parse(layout, raw)
		if err != nil {
			return nil, fmt.Errorf("must be a timestamp in layout %s", layout)
		}
		return t, nil

	case KindDecimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("must be a decimal number")
		}
		return d, nil

	default:
		return raw, nil
	}
}

// ruleTarget picks the value the validator rules run against. Decimals are
// not a type validator understands, so their constraints apply to the
// float64 rendering instead.
func ruleTarget(f Field, value any) any {
	if d, ok := value.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return value
}

// constraintMessage converts a validator error into the message shown to
// the client for that field.
func constraintMessage(f Field, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "is invalid"
	}

	e := verrs[0]
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if f.Kind == KindString {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if f.Kind == KindString {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "email":
		return "must be a valid email address"
	default:
		if e.Param() != "" {
			return fmt.Sprintf("failed constraint %s=%s", e.Tag(), e.Param())
		}
		return fmt.Sprintf("failed constraint %s", e.Tag())
	}
}
