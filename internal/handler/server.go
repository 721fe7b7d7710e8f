// Package handler implements the HTTP handlers for the activity list API.
// All handlers are methods on Server. Methods are split into files by
// resource (health.go, events.go) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amc-activities/eventlist/internal/domain"
)

// EventLister defines the operations the event handlers depend on.
// Defined here, in the consumer package, so handler tests can inject a mock
// without parsing real feeds.
type EventLister interface {
	RenderList(ctx context.Context, doc []byte, opts domain.RenderOptions) (domain.Fragment, error)
	RenderListStrict(ctx context.Context, doc []byte, opts domain.RenderOptions) (domain.Fragment, error)
	RenderPlaceholder(ctx context.Context, p domain.PlaceholderParams) (domain.Fragment, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	events EventLister
}

// NewServer constructs the Server with all its dependencies.
func NewServer(events EventLister) *Server {
	return &Server{events: events}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}

// Routes returns a router with every endpoint registered. Mount it in main.go
// behind the shared middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Route("/events", func(r chi.Router) {
		r.Post("/render", s.RenderEvents)
		r.Get("/placeholder", s.GetPlaceholder)
	})
	return r
}
