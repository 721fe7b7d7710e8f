package domain

// Fragment is a rendered piece of HTML ready to be embedded in a page.
type Fragment struct {
	// ID identifies the render in logs and the X-Render-ID response header.
	ID string
	// HTML is the markup itself.
	HTML string
	// Trips is the number of trips in the source feed, not the number rendered.
	Trips int
}
