package heartrate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fitrelay/pkg/binder"
	"github.com/dmitrymomot/fitrelay/pkg/handler"
)

// Handler returns the module's HTTP surface, ready to be mounted on a parent
// router.
//
//	r := chi.NewRouter()
//	r.Mount("/", relay.Handler())
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/start-oauth", handler.Wrap(s.handleStartOAuth()))
	r.Get("/exchange-token", handler.Wrap(s.handleCallback()))
	r.Post("/get-heart-rate", handler.Wrap(s.handleHeartRate(), handler.WithBinder(binder.JSON())))

	return r
}
