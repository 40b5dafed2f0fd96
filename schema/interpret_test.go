package schema_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/bipsandbytes/echo-api/schema"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSchemaValidate(t *testing.T) {
	Convey("Given a schema of two non-negative integers", t, func() {
		s := schema.Schema{
			"x": schema.Int("min=0"),
			"y": schema.Int("min=0"),
		}

		Convey("Numeric strings are coerced to integers", func() {
			values, fieldErrors := s.Validate(url.Values{"x": {"3"}, "y": {"4"}})

			So(fieldErrors, ShouldBeEmpty)
			So(values.Int("x"), ShouldEqual, 3)
			So(values.Int("y"), ShouldEqual, 4)
		})

		Convey("A non-numeric value fails coercion", func() {
			_, fieldErrors := s.Validate(url.Values{"x": {"three"}, "y": {"4"}})

			So(fieldErrors, ShouldHaveLength, 1)
			So(fieldErrors[0].Field, ShouldEqual, "x")
			So(fieldErrors[0].Error, ShouldEqual, "must be an integer")
		})

		Convey("A negative value fails the min rule", func() {
			_, fieldErrors := s.Validate(url.Values{"x": {"-1"}, "y": {"4"}})

			So(fieldErrors, ShouldHaveLength, 1)
			So(fieldErrors[0].Field, ShouldEqual, "x")
			So(fieldErrors[0].Error, ShouldEqual, "must be at least 0")
		})

		Convey("Missing required fields are each reported", func() {
			_, fieldErrors := s.Validate(url.Values{})

			So(fieldErrors, ShouldHaveLength, 2)
			// Errors are sorted by field name.
			So(fieldErrors[0].Field, ShouldEqual, "x")
			So(fieldErrors[1].Field, ShouldEqual, "y")
			So(fieldErrors[0].Error, ShouldEqual, "is required")
		})

		Convey("Unknown request keys are ignored", func() {
			values, fieldErrors := s.Validate(url.Values{"x": {"1"}, "y": {"2"}, "extra": {"zzz"}})

			So(fieldErrors, ShouldBeEmpty)
			So(values.Has("extra"), ShouldBeFalse)
		})
	})

	Convey("Given an optional field", t, func() {
		s := schema.Schema{
			"limit": schema.Int("min=1").Optional(),
		}

		Convey("Absence is not an error and leaves the field unset", func() {
			values, fieldErrors := s.Validate(url.Values{})

			So(fieldErrors, ShouldBeEmpty)
			So(values.Has("limit"), ShouldBeFalse)
		})

		Convey("A present but invalid value still fails", func() {
			_, fieldErrors := s.Validate(url.Values{"limit": {"0"}})

			So(fieldErrors, ShouldHaveLength, 1)
			So(fieldErrors[0].Error, ShouldEqual, "must be at least 1")
		})
	})

	Convey("Given string, bool, time and decimal fields", t, func() {
		s := schema.Schema{
			"name":   schema.String("min=3"),
			"active": schema.Bool(),
			"when":   schema.Time(""),
			"amount": schema.Decimal("min=0"),
		}

		Convey("Valid values coerce to their Go types", func() {
			values, fieldErrors := s.Validate(url.Values{
				"name":   {"ada"},
				"active": {"true"},
				"when":   {"2024-05-01T10:30:00Z"},
				"amount": {"12.50"},
			})

			So(fieldErrors, ShouldBeEmpty)
			So(values.Str("name"), ShouldEqual, "ada")
			So(values.Bool("active"), ShouldBeTrue)
			So(values.Time("when").Equal(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)), ShouldBeTrue)
			So(values.Decimal("amount").String(), ShouldEqual, "12.5")
		})

		Convey("A short string reports a length message", func() {
			_, fieldErrors := s.Validate(url.Values{
				"name":   {"ab"},
				"active": {"true"},
				"when":   {"2024-05-01T10:30:00Z"},
				"amount": {"1"},
			})

			So(fieldErrors, ShouldHaveLength, 1)
			So(fieldErrors[0].Field, ShouldEqual, "name")
			So(fieldErrors[0].Error, ShouldEqual, "must be at least 3 characters")
		})

		Convey("A malformed timestamp names the expected layout", func() {
			_, fieldErrors := s.Validate(url.Values{
				"name":   {"ada"},
				"active": {"true"},
				"when":   {"yesterday"},
				"amount": {"1"},
			})

			So(fieldErrors, ShouldHaveLength, 1)
			So(fieldErrors[0].Field, ShouldEqual, "when")
			So(fieldErrors[0].Error, ShouldContainSubstring, time.RFC3339)
		})

		Convey("A negative decimal fails its min rule", func() {
			_, fieldErrors := s.Validate(url.Values{
				"name":   {"ada"},
				"active": {"true"},
				"when":   {"2024-05-01T10:30:00Z"},
				"amount": {"-0.01"},
			})

			So(fieldErrors, ShouldHaveLength, 1)
			So(fieldErrors[0].Field, ShouldEqual, "amount")
			So(fieldErrors[0].Error, ShouldEqual, "must be at least 0")
		})
	})

	Convey("Reference fields are left for request-time resolution", t, func() {
		s := schema.Schema{
			"user": schema.Reference(nil),
		}

		values, fieldErrors := s.Validate(url.Values{})

		So(fieldErrors, ShouldBeEmpty)
		So(values.Has("user"), ShouldBeFalse)
	})
}

func TestRawValues(t *testing.T) {
	Convey("RawValues keeps every parameter as a string", t, func() {
		values := schema.RawValues(url.Values{"x": {"3"}, "name": {"ada"}})

		So(values.Str("x"), ShouldEqual, "3")
		So(values.Str("name"), ShouldEqual, "ada")
		So(values.Int("x"), ShouldEqual, 0) // not coerced
	})
}
