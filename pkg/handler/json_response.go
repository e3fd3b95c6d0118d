package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// jsonResponse implements Response for JSON rendering.
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON creates a 200 response rendering v as the JSON body.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: v}
}

// JSONWithStatus creates a JSON response with a custom status code.
func JSONWithStatus(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

// Error creates a JSON error response. HTTPError values control the status
// code and expose message and details to the caller; any other error renders
// as a generic 500 so internal detail never leaks.
func Error(err error) Response {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return jsonResponse{
			status: httpErr.Code,
			body:   errorBody{Error: httpErr.Message, Details: httpErr.Details},
		}
	}
	return jsonResponse{
		status: http.StatusInternalServerError,
		body:   errorBody{Error: "internal server error"},
	}
}
