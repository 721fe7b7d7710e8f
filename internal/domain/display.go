package domain

// DisplayMode selects how each trip in a list is rendered.
type DisplayMode int

const (
	// DisplayOther is any unrecognised mode. Rendering a non-empty list in
	// this mode yields the in-band "Invalid format" message.
	DisplayOther DisplayMode = iota
	DisplayShort
	DisplayLong
)

// DefaultDisplay is used when a request does not name a display mode.
const DefaultDisplay = "short"

// ParseDisplayMode maps the raw request value to a DisplayMode.
// Matching is exact and case-sensitive.
func ParseDisplayMode(s string) DisplayMode {
	switch s {
	case "short":
		return DisplayShort
	case "long":
		return DisplayLong
	default:
		return DisplayOther
	}
}

func (m DisplayMode) String() string {
	switch m {
	case DisplayShort:
		return "short"
	case DisplayLong:
		return "long"
	default:
		return "other"
	}
}

// RenderOptions carries display/limit values from the HTTP layer to the renderer.
type RenderOptions struct {
	// Mode is the parsed display mode.
	Mode DisplayMode
	// Display is the raw display value, echoed back in the invalid-format message.
	Display string
	// Limit is the number of trips after which rendering stops.
	// Values <= 0 never match the running counter, so every trip is rendered.
	Limit int
}

// NewRenderOptions builds RenderOptions from optional request values.
// Nil pointers fall back to defaults (display=short, limit=0).
func NewRenderOptions(display *string, limit *int) RenderOptions {
	o := RenderOptions{Mode: DisplayShort, Display: DefaultDisplay}
	if display != nil {
		o.Display = *display
		o.Mode = ParseDisplayMode(*display)
	}
	if limit != nil {
		o.Limit = *limit
	}
	return o
}
