package domain

// statusClasses maps feed status labels to their CSS class token.
var statusClasses = map[string]string{
	"Open":        "amc-status-open",
	"Canceled":    "amc-status-canceled",
	"Wait Listed": "amc-status-waitlist",
}

// StatusClass returns the CSS class for a trip status, or "" for statuses
// without a dedicated style. Lookup is exact-match.
func StatusClass(status string) string {
	return statusClasses[status]
}
