// Package testutil provides shared helpers for tests: building feed documents
// from domain values and checking the structure of rendered fragments.
package testutil

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/amc-activities/eventlist/internal/domain"
)

// ErrorsFeed is the document the feed returns when it has no trips.
const ErrorsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<errors><error>No results found</error></errors>`

// feedDateLayout is how the activities feed writes trip_start_date.
const feedDateLayout = "2006-01-02 15:04:05"

type feedTrip struct {
	XMLName     xml.Name `xml:"trip"`
	ID          string   `xml:"trip_id"`
	Title       string   `xml:"trip_title"`
	StartDate   string   `xml:"trip_start_date"`
	Status      string   `xml:"status"`
	Activities  []string `xml:"activities>activity"`
	Difficulty  string   `xml:"tripDifficulty,omitempty"`
	Leader      string   `xml:"leader1"`
	LeaderEmail string   `xml:"leader1_email,omitempty"`
	Location    string   `xml:"trip_location,omitempty"`
}

type feedDoc struct {
	XMLName xml.Name   `xml:"trips"`
	Trips   []feedTrip `xml:"trip"`
}

// FeedXML encodes trips as an activities feed document. Start dates are
// written as wall-clock time in their own location.
func FeedXML(t *testing.T, trips ...domain.Trip) []byte {
	t.Helper()
	doc := feedDoc{}
	for _, tr := range trips {
		doc.Trips = append(doc.Trips, feedTrip{
			ID:          tr.ID,
			Title:       tr.Title,
			StartDate:   tr.StartDate.Format(feedDateLayout),
			Status:      tr.Status,
			Activities:  tr.ActivityTypes,
			Difficulty:  tr.DifficultyLevel,
			Leader:      tr.LeaderName,
			LeaderEmail: tr.LeaderEmail,
			Location:    tr.Location,
		})
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("testutil.FeedXML: marshal: %v", err)
	}
	return append([]byte(xml.Header), out...)
}

// RequireBalancedHTML tokenizes fragment and fails the test if an end tag
// does not close the most recently opened element, or if any element is
// left open.
func RequireBalancedHTML(t *testing.T, fragment string) {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(fragment))
	var stack []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				t.Fatalf("testutil.RequireBalancedHTML: tokenize: %v", err)
			}
			if len(stack) > 0 {
				t.Fatalf("testutil.RequireBalancedHTML: unclosed elements %v", stack)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 {
				t.Fatalf("testutil.RequireBalancedHTML: unexpected </%s>", name)
			}
			if top := stack[len(stack)-1]; top != string(name) {
				t.Fatalf("testutil.RequireBalancedHTML: </%s> closes <%s>", name, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
}
