package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/amc-activities/eventlist/internal/domain"
)

// renderIDHeader carries the ID the service logged the render under.
const renderIDHeader = "X-Render-ID"

// RenderEventsParams are the query parameters of POST /events/render.
type RenderEventsParams struct {
	Display *string
	Limit   *int
	Strict  *bool
}

// PlaceholderParams are the query parameters of GET /events/placeholder.
type PlaceholderParams struct {
	Chapter   *string
	Committee *string
	Activity  *string
	Limit     *int
}

// RenderEvents handles POST /events/render.
// The request body is the activities feed XML. Supports ?display= (short,
// long), ?limit= and ?strict=. Without strict an unknown display mode is
// reported inside the 200 response; with strict it is a 422.
func (s *Server) RenderEvents(w http.ResponseWriter, r *http.Request) {
	var params RenderEventsParams
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "display", q, &params.Display); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid display parameter"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &params.Limit); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("limit must be an integer"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "strict", q, &params.Strict); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("strict must be a boolean"))
		return
	}

	doc, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, requestBody("could not read request body"))
		return
	}
	if len(doc) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body is required"))
		return
	}

	opts := domain.NewRenderOptions(params.Display, params.Limit)
	render := s.events.RenderList
	if params.Strict != nil && *params.Strict {
		render = s.events.RenderListStrict
	}

	f, err := render(r.Context(), doc, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeFragment(w, f)
}

// GetPlaceholder handles GET /events/placeholder.
// Supports ?chapter=, ?committee=, ?activity= and ?limit=.
func (s *Server) GetPlaceholder(w http.ResponseWriter, r *http.Request) {
	var params PlaceholderParams
	q := r.URL.Query()
	for name, dest := range map[string]**string{
		"chapter":   &params.Chapter,
		"committee": &params.Committee,
		"activity":  &params.Activity,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid "+name+" parameter"))
			return
		}
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &params.Limit); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("limit must be an integer"))
		return
	}

	f, err := s.events.RenderPlaceholder(r.Context(), placeholderToDomain(params))
	if err != nil {
		writeError(w, err)
		return
	}
	writeFragment(w, f)
}

func placeholderToDomain(p PlaceholderParams) domain.PlaceholderParams {
	var out domain.PlaceholderParams
	if p.Chapter != nil {
		out.Chapter = *p.Chapter
	}
	if p.Committee != nil {
		out.Committee = *p.Committee
	}
	if p.Activity != nil {
		out.Activity = *p.Activity
	}
	if p.Limit != nil {
		out.Limit = *p.Limit
	}
	return out
}

func writeFragment(w http.ResponseWriter, f domain.Fragment) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if f.ID != "" {
		w.Header().Set(renderIDHeader, f.ID)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, f.HTML)
}
