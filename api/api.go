// Package api wraps Echo endpoint handlers with declarative validation of
// incoming parameters and outgoing status codes.
//
// Handlers have the signature func(*Request) *jsonresp.Response. Decorators
// compose around them:
//
//	add := func(r *api.Request) *jsonresp.Response {
//		sum := r.Query().Int("x") + r.Query().Int("y")
//		return jsonresp.New(map[string]int64{"sum": sum})
//	}
//
//	e.GET("/add", api.Serve(api.Endpoint(api.Spec{
//		Accepts: schema.Schema{
//			"x": schema.Int("min=0"),
//			"y": schema.Int("min=0"),
//		},
//		Returns: api.Contract{200: "sum computed"},
//	}, api.WithPolicy(policy))(add)))
//
// The policy decides what a validation failure costs: Strict turns it into
// an immediate 400 response, Lenient logs a warning and lets the request
// (or response) proceed untouched. The policy is chosen at decoration time
// via options; there is no process-global mode flag.
package api

import (
	"github.com/bipsandbytes/echo-api/jsonresp"
	"github.com/rs/zerolog"
)

// Policy selects how validation failures are handled.
type Policy int

const (
	// Strict converts validation failures into 400 Bad Request responses.
	Strict Policy = iota
	// Lenient logs validation failures and passes the original request or
	// response through unchanged.
	Lenient
)

func (p Policy) String() string {
	if p == Lenient {
		return "lenient"
	}
	return "strict"
}

// HandlerFunc is an API endpoint handler.
type HandlerFunc func(r *Request) *jsonresp.Response

// Middleware decorates a handler.
type Middleware func(next HandlerFunc) HandlerFunc

type settings struct {
	policy Policy
	log    zerolog.Logger
}

// Option configures a decorator.
type Option func(*settings)

// WithPolicy sets the validation policy. The default is Strict.
func WithPolicy(p Policy) Option {
	return func(s *settings) { s.policy = p }
}

// WithLogger sets the logger used for lenient-mode warnings. The default
// discards them.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) { s.log = log }
}

func newSettings(opts []Option) settings {
	s := settings{policy: Strict, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
