// Package handler provides a thin typed layer over net/http: handlers take a
// decoded request value and return a Response that knows how to render
// itself. Binding, error rendering, and response writing stay at the edges so
// handler bodies contain only the interesting logic.
//
//	h := handler.HandlerFunc[HeartRateRequest](
//		func(ctx handler.Context, req HeartRateRequest) handler.Response {
//			return handler.JSON(summary)
//		},
//	)
//	r.Post("/get-heart-rate", handler.Wrap(h, handler.WithBinder(binder.JSON())))
//
// Errors are rendered as JSON objects with an "error" field and optional
// "details". HTTPError controls the status code; untyped errors become a
// generic 500.
package handler
