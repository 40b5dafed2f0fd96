package api

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/bipsandbytes/echo-api/jsonresp"
)

// Contract maps the status codes an endpoint is allowed to return to a
// human-readable description. Declared once per endpoint; immutable.
type Contract map[int]string

// accepted renders the contract's codes as a sorted list for messages.
func (c Contract) accepted() []int {
	codes := make([]int, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Returns declares the return-code contract of an endpoint.
//
// After the handler runs, the response's status code must be in the
// contract. A 500 is always accepted so error reporting is never blocked
// here. Under the strict policy a violation (undeclared code, or no
// response at all) becomes a 400; under the lenient policy it is logged
// and the handler's response passes through unchanged.
func Returns(contract Contract, opts ...Option) Middleware {
	cfg := newSettings(opts)

	return func(next HandlerFunc) HandlerFunc {
		return func(r *Request) *jsonresp.Response {
			resp := next(r)

			if resp == nil {
				if cfg.policy == Strict {
					return jsonresp.BadRequest("API did not return a JSON response")
				}
				cfg.log.Warn().
					Str("path", r.Path()).
					Msg("API did not return a JSON response")
				return resp
			}

			status := resp.StatusCode()
			if status == http.StatusInternalServerError {
				return resp
			}

			if _, ok := contract[status]; !ok {
				if cfg.policy == Strict {
					return jsonresp.BadRequest(fmt.Sprintf(
						"API returned %d instead of acceptable values %v",
						status, contract.accepted(),
					))
				}
				cfg.log.Warn().
					Str("path", r.Path()).
					Int("status", status).
					Ints("accepted", contract.accepted()).
					Msg("API returned undeclared status")
			}

			return resp
		}
	}
}
