package domain

// PlaceholderParams are the filter values a browser-side script reads from
// the placeholder container to query the activities feed itself.
type PlaceholderParams struct {
	Chapter   string
	Committee string
	Activity  string
	Limit     int
}
