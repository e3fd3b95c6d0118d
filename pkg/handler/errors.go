package handler

import "errors"

var (
	// ErrNilResponse is returned when a handler returns nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
)
