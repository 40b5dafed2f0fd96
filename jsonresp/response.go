// Package jsonresp provides JSON HTTP response values with a fixed status
// code and a body that is encoded once, at construction time.
//
// The encoder extends encoding/json with a few extra value kinds: time
// values render as ISO-8601 strings, shopspring decimals as JSON numbers,
// and Collection result sets as plain arrays. Error-shaped responses share
// one body layout (error_type, error_message, optional field_errors) so
// clients can handle every failure the same way.
package jsonresp

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response carries a status code and a JSON-encoded body. The body is
// immutable after construction.
type Response struct {
	status int
	body   []byte
}

// StatusCode returns the HTTP status the response will be written with.
func (r *Response) StatusCode() int { return r.status }

// Body returns the encoded JSON body.
func (r *Response) Body() []byte { return r.body }

// Write hands the response to the framework's dispatcher.
func (r *Response) Write(c echo.Context) error {
	return c.Blob(r.status, echo.MIMEApplicationJSON, r.body)
}

func withStatus(status int, data any) *Response {
	body, err := Marshal(data)
	if err != nil {
		body = []byte("null")
	}
	return &Response{status: status, body: body}
}

// New builds a 200 OK response from data.
func New(data any) *Response { return withStatus(http.StatusOK, data) }

// Created builds a 201 Created response from data.
func Created(data any) *Response { return withStatus(http.StatusCreated, data) }

// Accepted builds a 202 Accepted response from data.
func Accepted(data any) *Response { return withStatus(http.StatusAccepted, data) }

// errorBody is the standard shape of error-carrying responses.
type errorBody struct {
	ErrorType    any                 `json:"error_type"`
	ErrorMessage string              `json:"error_message"`
	FieldErrors  map[string][]string `json:"field_errors,omitempty"`
}

// Error builds a response with the standard error body. errorType defaults
// to the status code when nil; fieldErrors may be nil.
func Error(status int, errorType any, message string, fieldErrors map[string][]string) *Response {
	if errorType == nil {
		errorType = status
	}
	return withStatus(status, errorBody{
		ErrorType:    errorType,
		ErrorMessage: message,
		FieldErrors:  fieldErrors,
	})
}

// SeeOther builds a 302 error-shaped response.
func SeeOther(message string) *Response {
	return Error(http.StatusSeeOther, nil, message, nil)
}

// BadRequest builds a 400 response describing a client error.
func BadRequest(message string) *Response {
	return Error(http.StatusBadRequest, nil, message, nil)
}

// BadRequestFields builds a 400 response carrying per-field error details.
func BadRequestFields(message string, fieldErrors map[string][]string) *Response {
	return Error(http.StatusBadRequest, nil, message, fieldErrors)
}

// Unauthorized builds a 401 response.
func Unauthorized(message string) *Response {
	return Error(http.StatusUnauthorized, nil, message, nil)
}

// Forbidden builds a 403 response.
func Forbidden(message string) *Response {
	return Error(http.StatusForbidden, nil, message, nil)
}

// NotFound builds a 404 response.
func NotFound(message string) *Response {
	return Error(http.StatusNotFound, nil, message, nil)
}

// Conflict builds a 409 response.
func Conflict(message string) *Response {
	return Error(http.StatusConflict, nil, message, nil)
}

// NotSupported reports an unsupported operation as a 400.
func NotSupported(message string) *Response {
	return Error(http.StatusBadRequest, nil, message, nil)
}

// ServerError builds a 500 response.
func ServerError(message string) *Response {
	return Error(http.StatusInternalServerError, nil, message, nil)
}
