// Package render turns a parsed activities feed into the HTML fragment that is
// embedded in a page. Output is deterministic: all date formatting happens in
// the Renderer's configured location, never the process-wide local zone.
//
// CSS class names emitted here are relied on by site stylesheets and must not
// change.
package render

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/amc-activities/eventlist/internal/domain"
)

// DefaultDetailsURL is the AMC activities site page a trip title links to.
// The trip ID is appended to it.
const DefaultDetailsURL = "https://activities.outdoors.org/search/index.cfm/action/details/id/"

const (
	containerOpen  = "<div class=\"amc-events-container\">\n"
	containerClose = "</div>\n"
)

// noEventsBlock is returned for a feed in the "errors" state.
const noEventsBlock = `<div class="amc-events-container">
  <div class="amc-event-wrap">
    <div class="amc-event-desc-block">
      <div class="amc-event-title">Sorry!</div>
      <div class="amc-event-description">
        No upcoming events are listed in the AMC Activities Calendar. Please
        check back frequently as we are often adding new trips and events to
        the calendar.
      </div>
    </div>
  </div>
</div>
`

// Renderer formats trip lists and placeholders. A Renderer holds only
// configuration; every call builds its output in a local buffer, so one
// Renderer may serve concurrent requests.
type Renderer struct {
	loc        *time.Location
	detailsURL string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLocation sets the timezone trip dates are displayed in. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithDetailsURL overrides the base URL trip titles link to.
func WithDetailsURL(base string) Option {
	return func(r *Renderer) {
		if base != "" {
			r.detailsURL = base
		}
	}
}

// New constructs a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{loc: time.UTC, detailsURL: DefaultDetailsURL}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Location returns the timezone dates are rendered in.
func (r *Renderer) Location() *time.Location {
	return r.loc
}

// Placeholder renders the empty container a browser-side script fills in
// later. The four filter values are exposed as data attributes.
func (r *Renderer) Placeholder(p domain.PlaceholderParams) string {
	var b strings.Builder
	b.WriteString("<div ")
	b.WriteString("class=\"amc-events-container\" ")
	fmt.Fprintf(&b, "data-chapter=\"%s\" ", html.EscapeString(p.Chapter))
	fmt.Fprintf(&b, "data-committee=\"%s\" ", html.EscapeString(p.Committee))
	fmt.Fprintf(&b, "data-activity=\"%s\" ", html.EscapeString(p.Activity))
	fmt.Fprintf(&b, "data-limit=\"%d\" ", p.Limit)
	b.WriteString(">\n")
	b.WriteString("    <div class=\"amc-loader\"></div>\n")
	b.WriteString("</div>\n")
	return b.String()
}

// List renders the trips in c.
//
// A collection in the "errors" state always yields the fixed "no events"
// block. Otherwise trips are rendered in order until opts.Limit of them have
// been written; a Limit <= 0 renders them all. An unrecognised display mode
// stops at the first trip and returns the text rendered so far followed by
// "Invalid format: <mode>\n".
func (r *Renderer) List(c domain.Collection, opts domain.RenderOptions) string {
	if c.NoEvents() {
		return noEventsBlock
	}

	var b strings.Builder
	b.WriteString(containerOpen)

	count := 1
	for _, t := range c.Trips {
		switch opts.Mode {
		case domain.DisplayShort:
			r.writeShort(&b, t)
		case domain.DisplayLong:
			r.writeLong(&b, t)
		default:
			fmt.Fprintf(&b, "Invalid format: %s\n", html.EscapeString(opts.Display))
			return b.String()
		}

		if count == opts.Limit {
			break
		}
		count++
	}

	b.WriteString(containerClose)
	return b.String()
}

// ListStrict is List for callers that want an unknown display mode reported
// as domain.ErrInvalidDisplayMode instead of an in-band message. The mode is
// checked before any trip is looked at, so an empty list is rejected too.
func (r *Renderer) ListStrict(c domain.Collection, opts domain.RenderOptions) (string, error) {
	if c.NoEvents() {
		return noEventsBlock, nil
	}
	if opts.Mode == domain.DisplayOther {
		return "", fmt.Errorf("render.ListStrict: %w: %q", domain.ErrInvalidDisplayMode, opts.Display)
	}
	return r.List(c, opts), nil
}

// writeLong renders a trip in long form. There is no separate long layout
// yet, so it shares the short card.
func (r *Renderer) writeLong(b *strings.Builder, t domain.Trip) {
	r.writeShort(b, t)
}

func (r *Renderer) writeShort(b *strings.Builder, t domain.Trip) {
	start := t.StartDate.In(r.loc)

	b.WriteString("  <div class=\"amc-event-wrap amc-event-short\">\n")
	writeDateBlock(b, start)

	b.WriteString("<div class=\"amc-event-desc-block\">\n")
	fmt.Fprintf(b, "<span class=\"amc-event-title\"><a href=\"%s\">%s</a></span>\n",
		html.EscapeString(r.detailsURL+url.PathEscape(t.ID)), html.EscapeString(t.Title))

	b.WriteString("<div class=\"amc-event-desc\">")

	// Lead line: date and status.
	b.WriteString("<div class=\"amc-event-desc-lead\">")
	b.WriteString("<span class=\"amc-event-date\">" + start.Format("Mon Jan 2 2006"))
	if t.HasTime(r.loc) {
		b.WriteString(start.Format(", at 3:04 pm"))
	}
	b.WriteString("</span>\n")
	fmt.Fprintf(b, "<span class=\"amc-event-status\"><span class=\"key\">Status</span>: <span class=\"%s\">%s</span></span>",
		domain.StatusClass(t.Status), html.EscapeString(t.Status))
	b.WriteString("</div>\n")

	// Info line: activities, level and leader.
	b.WriteString("<div class=\"amc-event-desc-info\">")
	for i, activity := range t.ActivityTypes {
		b.WriteString("<span class=\"amc-event-type\"><span class=\"key\">Activity</span>: " + html.EscapeString(activity) + " ")
		if i == 0 && t.DifficultyLevel != "" {
			b.WriteString("<span class=\"amc-event-level\">(<span class=\"key\">Level</span>: " +
				html.EscapeString(t.DifficultyLevel) + ")</span>")
		}
		b.WriteString("</span>\n")
	}
	b.WriteString("<span class=\"amc-event-leader\"><span class=\"key\">Leader</span>: " + html.EscapeString(t.LeaderName))
	if t.LeaderEmail != "" {
		email := html.EscapeString(t.LeaderEmail)
		fmt.Fprintf(b, " &lt;<a href=\"mailto:%s\">%s</a>&gt;", email, email)
	}
	b.WriteString("</span>\n")
	b.WriteString("</div>\n")

	if t.Location != "" {
		b.WriteString("<div class=\"amc-event-location\"><span class=\"key\">Location</span>: " +
			html.EscapeString(t.Location) + "</div>\n")
	}

	b.WriteString("</div>\n") // .amc-event-desc
	b.WriteString("</div>\n") // .amc-event-desc-block
	b.WriteString("</div>\n") // .amc-event-wrap
}

// writeDateBlock renders the calendar-style day/month/year block.
func writeDateBlock(b *strings.Builder, d time.Time) {
	b.WriteString("<div class=\"amc-date-block\">\n")
	b.WriteString("  <span class=\"amc-start-date\">\n")
	b.WriteString("    <span class=\"date\">" + d.Format("02") + "</span>\n")
	b.WriteString("    <span class=\"month\">" + d.Format("Jan") + "</span>\n")
	b.WriteString("    <span class=\"year\">" + d.Format("2006") + "</span>\n")
	b.WriteString("  </span>\n")
	b.WriteString("</div>\n")
}
