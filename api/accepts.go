package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bipsandbytes/echo-api/jsonresp"
	"github.com/bipsandbytes/echo-api/schema"
)

// Accepts declares the accept schema of an endpoint.
//
// Only GET and POST requests are validated: GET against the query string,
// POST against the form body. Other methods pass through with the raw
// parameter view. On success the handler sees only cleaned, type-coerced
// values. On failure the strict policy answers 400 with per-field details;
// the lenient policy logs a warning and runs the handler against the raw,
// unvalidated view.
//
// Reference fields resolve a record through their Lookup using the
// companion "<name>-id" parameter. A missing companion key is a 400 and a
// missing record is a 404, under either policy.
func Accepts(s schema.Schema, opts ...Option) Middleware {
	cfg := newSettings(opts)

	return func(next HandlerFunc) HandlerFunc {
		return func(r *Request) *jsonresp.Response {
			method := r.Request().Method
			if method != http.MethodGet && method != http.MethodPost {
				return next(r)
			}

			raw := r.QueryParams()
			if method == http.MethodPost {
				if form, err := r.FormParams(); err == nil {
					raw = form
				}
			}

			cleaned, fieldErrors := s.Validate(raw)
			if len(fieldErrors) > 0 {
				if cfg.policy == Strict {
					return jsonresp.BadRequestFields("failed to validate", fieldErrorDetail(fieldErrors))
				}
				cfg.log.Warn().
					Str("path", r.Path()).
					Interface("field_errors", fieldErrors).
					Msg("input failed to validate")
				return next(r)
			}

			for name, field := range s {
				if field.Kind != schema.KindReference {
					continue
				}
				if resp := r.resolveReference(name, field, cleaned); resp != nil {
					return resp
				}
			}

			return next(r.withCleaned(cleaned))
		}
	}
}

// resolveReference looks up the record behind a reference field and stores
// it in cleaned under the field name.
func (r *Request) resolveReference(name string, field schema.Field, cleaned schema.Values) *jsonresp.Response {
	idKey := name + "-id"

	rawID := r.QueryParams().Get(idKey)
	if rawID == "" {
		if form, err := r.FormParams(); err == nil {
			rawID = form.Get(idKey)
		}
	}
	if rawID == "" {
		return jsonresp.BadRequest(fmt.Sprintf("field %s not present", name))
	}

	pk, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return jsonresp.BadRequest(fmt.Sprintf("field %s must be an integer primary key", idKey))
	}

	record, err := field.Lookup.FindByPK(r.Request().Context(), pk)
	switch {
	case errors.Is(err, schema.ErrNotFound):
		return jsonresp.NotFound(fmt.Sprintf("%s with pk=%d does not exist", name, pk))
	case err != nil:
		return jsonresp.ServerError(fmt.Sprintf("lookup of %s failed: %v", name, err))
	}

	cleaned[name] = record
	return nil
}

func fieldErrorDetail(fieldErrors []schema.FieldError) map[string][]string {
	detail := make(map[string][]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		detail[fe.Field] = append(detail[fe.Field], fe.Error)
	}
	return detail
}
