package api

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bipsandbytes/echo-api/jsonresp"
)

// JSONHandlerFunc receives the parsed request body as a second argument.
type JSONHandlerFunc func(r *Request, body map[string]any) *jsonresp.Response

// RequireJSON validates that the raw request body is well-formed JSON
// containing every one of the required top-level keys, then passes the
// parsed object to the handler. Parse errors and missing keys answer 400
// regardless of policy.
func RequireJSON(required []string) func(JSONHandlerFunc) HandlerFunc {
	return func(next JSONHandlerFunc) HandlerFunc {
		return func(r *Request) *jsonresp.Response {
			raw, err := io.ReadAll(r.Request().Body)
			if err != nil {
				return jsonresp.BadRequest(fmt.Sprintf("cannot read request body: %v", err))
			}

			var body map[string]any
			if err := json.Unmarshal(raw, &body); err != nil {
				return jsonresp.BadRequest(fmt.Sprintf("invalid request JSON: %v", err))
			}

			for _, key := range required {
				if _, ok := body[key]; !ok {
					return jsonresp.BadRequest(fmt.Sprintf("request JSON must contain property '%s'", key))
				}
			}

			return next(r, body)
		}
	}
}
