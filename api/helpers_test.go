package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/bipsandbytes/echo-api/api"
	"github.com/bipsandbytes/echo-api/schema"
	"github.com/labstack/echo/v4"
)

// invoke runs a decorated handler against req and returns the recorded
// response.
func invoke(h api.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := api.Serve(h)(c); err != nil {
		panic(err)
	}
	return rec
}

func getRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func formRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func jsonRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decode(rec *httptest.ResponseRecorder) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		panic(err)
	}
	return m
}

// fakeLookup serves reference-field resolution from an in-memory map.
type fakeLookup struct {
	records map[int64]any
	err     error
}

func (f fakeLookup) FindByPK(ctx context.Context, pk int64) (any, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.records[pk]
	if !ok {
		return nil, schema.ErrNotFound
	}
	return record, nil
}
