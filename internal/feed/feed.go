// Package feed decodes the AMC activities XML document into a domain.Collection.
// Decoding happens once, up front: any problem with the document surfaces here
// as a domain.ErrParse so rendering never has to deal with bad input.
package feed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/net/html/charset"

	"github.com/amc-activities/eventlist/internal/domain"
)

// errorsRoot is the root element name the feed uses when it has no trips.
const errorsRoot = "errors"

// minStartYear is the earliest plausible trip year. dateparse reads some
// non-dates (e.g. "3.14") as dates in year 0.
const minStartYear = 1900

// minDigitsForDay is the shortest all-digit date that names a day (yyyymmdd).
const minDigitsForDay = 8

// document mirrors the feed layout. The root element name varies, so it is
// captured rather than matched.
type document struct {
	XMLName xml.Name
	Trips   []trip `xml:"trip"`
}

type trip struct {
	ID          string   `xml:"trip_id"`
	Title       string   `xml:"trip_title"`
	StartDate   string   `xml:"trip_start_date"`
	Status      string   `xml:"status"`
	Activities  []string `xml:"activities>activity"`
	Difficulty  string   `xml:"tripDifficulty"`
	Leader      string   `xml:"leader1"`
	LeaderEmail string   `xml:"leader1_email"`
	Location    string   `xml:"trip_location"`
}

// Parse decodes a feed document. Dates without an explicit offset are read
// as wall-clock time in loc; a nil loc means UTC.
func Parse(data []byte, loc *time.Location) (domain.Collection, error) {
	return ParseReader(bytes.NewReader(data), loc)
}

// ParseReader is Parse for a stream.
func ParseReader(r io.Reader, loc *time.Location) (domain.Collection, error) {
	if loc == nil {
		loc = time.UTC
	}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Collection{}, fmt.Errorf("feed.Parse: %w: empty document", domain.ErrParse)
		}
		return domain.Collection{}, fmt.Errorf("feed.Parse: %w: %v", domain.ErrParse, err)
	}
	if err := expectEnd(dec); err != nil {
		return domain.Collection{}, fmt.Errorf("feed.Parse: %w: %v", domain.ErrParse, err)
	}

	if doc.XMLName.Local == errorsRoot {
		return domain.Collection{Errors: true}, nil
	}

	trips := make([]domain.Trip, 0, len(doc.Trips))
	for i, t := range doc.Trips {
		start, err := parseStartDate(t.StartDate, loc)
		if err != nil {
			return domain.Collection{}, fmt.Errorf("feed.Parse: %w: trip %d (id %q): %v",
				domain.ErrParse, i, strings.TrimSpace(t.ID), err)
		}
		trips = append(trips, toDomain(t, start))
	}
	return domain.Collection{Trips: trips}, nil
}

// expectEnd rejects anything but whitespace, comments and processing
// instructions after the root element.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after document root", v.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(v)) > 0 {
				return errors.New("unexpected text after document root")
			}
		}
	}
}

// parseStartDate reads the feed's start date in whatever format it arrives.
func parseStartDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("missing trip_start_date")
	}
	if isDigits(s) && len(s) < minDigitsForDay {
		return time.Time{}, fmt.Errorf("trip_start_date %q: no day of month", s)
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("trip_start_date %q: %w", s, err)
	}
	if t.Year() < minStartYear {
		return time.Time{}, fmt.Errorf("trip_start_date %q: implausible year %d", s, t.Year())
	}
	return t.In(loc), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toDomain(t trip, start time.Time) domain.Trip {
	activities := make([]string, 0, len(t.Activities))
	for _, a := range t.Activities {
		activities = append(activities, strings.TrimSpace(a))
	}
	return domain.Trip{
		ID:              strings.TrimSpace(t.ID),
		Title:           strings.TrimSpace(t.Title),
		StartDate:       start,
		Status:          strings.TrimSpace(t.Status),
		ActivityTypes:   activities,
		DifficultyLevel: strings.TrimSpace(t.Difficulty),
		LeaderName:      strings.TrimSpace(t.Leader),
		LeaderEmail:     strings.TrimSpace(t.LeaderEmail),
		Location:        strings.TrimSpace(t.Location),
	}
}
