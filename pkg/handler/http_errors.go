package handler

// HTTPError represents an HTTP error with a status code, a caller-facing
// message, and optional diagnostic details (e.g. an upstream response body).
type HTTPError struct {
	Code    int    // HTTP status code
	Message string // Caller-facing error message
	Details string // Optional diagnostic detail, rendered when present
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// WithDetails returns a copy of the error carrying diagnostic details.
func (e HTTPError) WithDetails(details string) HTTPError {
	e.Details = details
	return e
}

// NewHTTPError creates an HTTP error with the given status code and message.
//
// Example:
//
//	err := handler.NewHTTPError(http.StatusUnauthorized, "please re-authorize")
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
