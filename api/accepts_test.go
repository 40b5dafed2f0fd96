package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bipsandbytes/echo-api/api"
	"github.com/bipsandbytes/echo-api/jsonresp"
	"github.com/bipsandbytes/echo-api/schema"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAccepts(t *testing.T) {
	twoInts := schema.Schema{
		"x": schema.Int("min=0"),
		"y": schema.Int("min=0"),
	}

	sum := func(r *api.Request) *jsonresp.Response {
		return jsonresp.New(map[string]int64{
			"sum": r.Query().Int("x") + r.Query().Int("y"),
		})
	}

	Convey("Given a strict accept schema", t, func() {
		h := api.Accepts(twoInts)(sum)

		Convey("Valid query parameters reach the handler coerced", func() {
			rec := invoke(h, getRequest("/add?x=3&y=4"))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decode(rec)["sum"], ShouldEqual, float64(7))
		})

		Convey("Invalid parameters answer 400 with per-field details", func() {
			rec := invoke(h, getRequest("/add?x=three&y=4"))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			body := decode(rec)
			So(body["error_message"], ShouldEqual, "failed to validate")
			fieldErrors := body["field_errors"].(map[string]any)
			So(fieldErrors["x"], ShouldResemble, []any{"must be an integer"})
		})

		Convey("Missing parameters answer 400", func() {
			rec := invoke(h, getRequest("/add?hello=world"))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			fieldErrors := decode(rec)["field_errors"].(map[string]any)
			So(fieldErrors, ShouldContainKey, "x")
			So(fieldErrors, ShouldContainKey, "y")
		})

		Convey("POST requests are validated against the form body", func() {
			rec := invoke(h, formRequest("/add", "x=10&y=5"))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decode(rec)["sum"], ShouldEqual, float64(15))
		})

		Convey("Other methods pass through with the raw view", func() {
			seen := ""
			echoBack := api.Accepts(twoInts)(func(r *api.Request) *jsonresp.Response {
				seen = r.Query().Str("x")
				return jsonresp.New(nil)
			})

			rec := invoke(echoBack, httptest.NewRequest(http.MethodPut, "/add?x=three", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(seen, ShouldEqual, "three")
		})
	})

	Convey("Given a lenient accept schema", t, func() {
		var buf bytes.Buffer
		log := zerolog.New(&buf)

		var raw string
		h := api.Accepts(twoInts, api.WithPolicy(api.Lenient), api.WithLogger(log))(
			func(r *api.Request) *jsonresp.Response {
				raw = r.Query().Str("x")
				return jsonresp.New(nil)
			})

		Convey("Validation failures are logged and the handler still runs", func() {
			rec := invoke(h, getRequest("/add?x=three&y=4"))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(raw, ShouldEqual, "three")
			So(buf.String(), ShouldContainSubstring, "input failed to validate")
		})
	})

	Convey("Given a schema with a reference field", t, func() {
		users := fakeLookup{records: map[int64]any{
			7: map[string]any{"id": int64(7), "name": "ada"},
		}}
		s := schema.Schema{"user": schema.Reference(users)}

		h := api.Accepts(s)(func(r *api.Request) *jsonresp.Response {
			return jsonresp.New(r.Query().Record("user"))
		})

		Convey("The companion id parameter resolves the record", func() {
			rec := invoke(h, getRequest("/users?user-id=7"))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(decode(rec)["name"], ShouldEqual, "ada")
		})

		Convey("A missing record answers 404", func() {
			rec := invoke(h, getRequest("/users?user-id=99999"))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(decode(rec)["error_message"], ShouldEqual, "user with pk=99999 does not exist")
		})

		Convey("A missing companion parameter answers 400", func() {
			rec := invoke(h, getRequest("/users"))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(rec)["error_message"], ShouldEqual, "field user not present")
		})

		Convey("A non-integer companion parameter answers 400", func() {
			rec := invoke(h, getRequest("/users?user-id=ada"))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A lookup failure answers 500", func() {
			broken := schema.Schema{"user": schema.Reference(fakeLookup{err: errors.New("connection refused")})}
			h := api.Accepts(broken)(func(r *api.Request) *jsonresp.Response {
				return jsonresp.New(nil)
			})

			rec := invoke(h, getRequest("/users?user-id=7"))

			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("Resolution errors apply under the lenient policy too", func() {
			h := api.Accepts(s, api.WithPolicy(api.Lenient))(func(r *api.Request) *jsonresp.Response {
				return jsonresp.New(nil)
			})

			rec := invoke(h, getRequest("/users?user-id=99999"))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}
