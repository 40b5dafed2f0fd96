package api

import (
	"github.com/bipsandbytes/echo-api/schema"
	"github.com/labstack/echo/v4"
)

// Request is the view of a request handed to decorated handlers. Query and
// Form expose parameter values (cleaned ones once validation succeeded,
// raw strings otherwise) while every other accessor delegates to the
// embedded framework context.
type Request struct {
	echo.Context
	query schema.Values
	form  schema.Values
}

// Query returns the request's query parameters.
func (r *Request) Query() schema.Values { return r.query }

// Form returns the request's body parameters.
func (r *Request) Form() schema.Values { return r.form }

// newRawRequest builds the unvalidated view of c.
func newRawRequest(c echo.Context) *Request {
	r := &Request{Context: c, query: schema.RawValues(c.QueryParams())}
	if form, err := c.FormParams(); err == nil {
		r.form = schema.RawValues(form)
	} else {
		r.form = schema.Values{}
	}
	return r
}

// withCleaned returns a copy of r whose parameter accessors expose only the
// cleaned values. Both accessors serve the same cleaned set: the schema is
// declared against whichever source the method uses, so handlers can read
// either without caring about the verb.
func (r *Request) withCleaned(cleaned schema.Values) *Request {
	return &Request{Context: r.Context, query: cleaned, form: cleaned}
}
