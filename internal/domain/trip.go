// Package domain contains the core data types for the AMC activity list renderer.
// This package has zero external dependencies and is imported by every other
// internal package (feed, render, service, handler).
package domain

import "time"

// Trip is a single scheduled activity read from the AMC activities feed.
// Optional fields (DifficultyLevel, LeaderEmail, Location) are empty strings
// when the feed does not supply them.
type Trip struct {
	ID              string
	Title           string
	StartDate       time.Time // midnight means "no specific time"
	Status          string
	ActivityTypes   []string
	DifficultyLevel string
	LeaderName      string
	LeaderEmail     string
	Location        string
}

// HasTime reports whether StartDate carries a time of day.
// 00:00 is the feed's way of saying the trip has no fixed start time.
func (t Trip) HasTime(loc *time.Location) bool {
	d := t.StartDate
	if loc != nil {
		d = d.In(loc)
	}
	return d.Hour() != 0 || d.Minute() != 0
}

// Collection is a parsed feed document. It is either a list of trips
// (possibly empty) or the "errors" state the feed reports when it has
// nothing to list.
type Collection struct {
	Trips  []Trip
	Errors bool
}

// NoEvents reports whether the collection is in the "errors" state.
func (c Collection) NoEvents() bool {
	return c.Errors
}
