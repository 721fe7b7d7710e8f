// Package service contains the business logic for the activity list API.
// Services decode input, enforce request rules and hand off to the renderer.
// No HTTP lives here — handlers depend on the service through an interface.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amc-activities/eventlist/internal/domain"
	"github.com/amc-activities/eventlist/internal/feed"
	"github.com/amc-activities/eventlist/internal/render"
)

// EventListService renders activity feeds and placeholders.
type EventListService struct {
	renderer *render.Renderer
	log      *slog.Logger
}

// NewEventListService constructs an EventListService. A nil logger discards output.
func NewEventListService(r *render.Renderer, log *slog.Logger) *EventListService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &EventListService{renderer: r, log: log}
}

// RenderList parses doc and renders it. An unknown display mode is reported
// in-band inside the returned HTML.
func (s *EventListService) RenderList(ctx context.Context, doc []byte, opts domain.RenderOptions) (domain.Fragment, error) {
	c, err := s.parse(ctx, doc)
	if err != nil {
		return domain.Fragment{}, fmt.Errorf("service.EventListService.RenderList: %w", err)
	}
	return s.fragment(ctx, c, opts, s.renderer.List(c, opts)), nil
}

// RenderListStrict is RenderList but fails with domain.ErrInvalidDisplayMode
// for an unknown display mode.
func (s *EventListService) RenderListStrict(ctx context.Context, doc []byte, opts domain.RenderOptions) (domain.Fragment, error) {
	c, err := s.parse(ctx, doc)
	if err != nil {
		return domain.Fragment{}, fmt.Errorf("service.EventListService.RenderListStrict: %w", err)
	}
	out, err := s.renderer.ListStrict(c, opts)
	if err != nil {
		return domain.Fragment{}, fmt.Errorf("service.EventListService.RenderListStrict: %w", err)
	}
	return s.fragment(ctx, c, opts, out), nil
}

// RenderPlaceholder validates p and renders the placeholder container.
func (s *EventListService) RenderPlaceholder(ctx context.Context, p domain.PlaceholderParams) (domain.Fragment, error) {
	if p.Limit < 0 {
		return domain.Fragment{}, fmt.Errorf("service.EventListService.RenderPlaceholder: %w: limit must not be negative", domain.ErrValidation)
	}

	f := domain.Fragment{ID: uuid.NewString(), HTML: s.renderer.Placeholder(p)}
	s.log.DebugContext(ctx, "placeholder rendered",
		"render_id", f.ID,
		"chapter", p.Chapter,
		"committee", p.Committee,
		"activity", p.Activity,
		"limit", p.Limit,
	)
	return f, nil
}

func (s *EventListService) parse(ctx context.Context, doc []byte) (domain.Collection, error) {
	c, err := feed.Parse(doc, s.renderer.Location())
	if err != nil {
		s.log.WarnContext(ctx, "feed rejected", "error", err, "bytes", len(doc))
		return domain.Collection{}, err
	}
	return c, nil
}

func (s *EventListService) fragment(ctx context.Context, c domain.Collection, opts domain.RenderOptions, out string) domain.Fragment {
	f := domain.Fragment{ID: uuid.NewString(), HTML: out, Trips: len(c.Trips)}
	s.log.InfoContext(ctx, "list rendered",
		"render_id", f.ID,
		"trips", f.Trips,
		"no_events", c.NoEvents(),
		"display", opts.Mode.String(),
		"limit", opts.Limit,
	)
	return f
}
