package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bipsandbytes/echo-api/api"
	"github.com/bipsandbytes/echo-api/internal/server"
	"github.com/bipsandbytes/echo-api/jsonresp"
	"github.com/bipsandbytes/echo-api/pglookup"
	"github.com/bipsandbytes/echo-api/schema"
)

// defaultListLimit caps user listings when no limit parameter is given.
const defaultListLimit = 100

// UserHandler serves user records resolved through the users table.
type UserHandler struct {
	Handler
	users *pglookup.Table
}

// NewUserHandler constructs a UserHandler backed by the service's pool.
func NewUserHandler(s *server.Server) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   pglookup.New(s.DB.Pool, "users", "id", "id", "name", "email", "created_at"),
	}
}

// Get handles GET /api/users?user-id=.. where the "user" reference field is
// resolved to a record before the handler runs; a missing record answers
// 404 under either policy.
func (h *UserHandler) Get() echo.HandlerFunc {
	endpoint := api.Endpoint(api.Spec{
		Accepts: schema.Schema{
			"user": schema.Reference(h.users),
		},
		Returns: api.Contract{
			200: "user record",
			404: "user not found",
		},
	}, h.options()...)

	return api.Serve(endpoint(func(r *api.Request) *jsonresp.Response {
		return jsonresp.New(r.Query().Record("user"))
	}))
}

// List handles GET /api/users/all?limit=.. and returns the rows as a plain
// JSON array via the collection encoding.
func (h *UserHandler) List() echo.HandlerFunc {
	endpoint := api.Endpoint(api.Spec{
		Accepts: schema.Schema{
			"limit": schema.Int("min=1,max=500").Optional(),
		},
		Returns: api.Contract{
			200: "user records",
		},
	}, h.options()...)

	return api.Serve(endpoint(func(r *api.Request) *jsonresp.Response {
		limit := r.Query().Int("limit")
		if limit == 0 {
			limit = defaultListLimit
		}

		rows, err := h.users.SelectAll(r.Request().Context(), int(limit))
		if err != nil {
			h.server.Logger.Error().Err(err).Msg("listing users failed")
			return jsonresp.ServerError("could not list users")
		}
		return jsonresp.New(rows)
	}))
}
