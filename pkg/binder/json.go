package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// JSON creates a binder that decodes a JSON request body into the target
// struct. Unknown fields are tolerated; the permissive shape validation is
// left to the handlers.
//
// Example:
//
//	handler := handler.HandlerFunc[HeartRateRequest](
//		func(ctx handler.Context, req HeartRateRequest) handler.Response {
//			// req is populated from the JSON body
//			return handler.JSON(result)
//		},
//	)
//
//	r.Post("/get-heart-rate", handler.Wrap(h, handler.WithBinder(binder.JSON())))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		return nil
	}
}
