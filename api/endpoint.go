package api

import "github.com/bipsandbytes/echo-api/schema"

// Spec pairs an accept schema with a return-code contract.
type Spec struct {
	Accepts schema.Schema
	Returns Contract
}

// Endpoint applies Accepts and Returns around one handler in a single
// declaration: validate input, invoke, validate output.
func Endpoint(spec Spec, opts ...Option) Middleware {
	accepts := Accepts(spec.Accepts, opts...)
	returns := Returns(spec.Returns, opts...)

	return func(next HandlerFunc) HandlerFunc {
		return accepts(returns(next))
	}
}
