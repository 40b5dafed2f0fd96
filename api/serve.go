package api

import (
	"github.com/bipsandbytes/echo-api/jsonresp"
	"github.com/labstack/echo/v4"
)

// Serve adapts a decorated handler to an echo.HandlerFunc. A nil response
// from the handler chain is written as a 500 error envelope.
func Serve(h HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := h(newRawRequest(c))
		if resp == nil {
			resp = jsonresp.ServerError("handler returned no response")
		}
		return resp.Write(c)
	}
}
