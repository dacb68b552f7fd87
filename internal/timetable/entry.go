// Package timetable defines the core domain types for urnik and the grid
// layout engine that places class sessions into a day-by-hour grid.
package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Grid bounds. Days run Monday (0) to Friday (4); anchor hours run from
// FirstHour to LastHour inclusive and the display window closes at EndHour.
const (
	Days      = 5
	FirstHour = 7
	LastHour  = 20
	EndHour   = 21
	Slots     = LastHour - FirstHour + 1
)

// ErrDecode is returned when a response body is not a valid entry list.
var ErrDecode = errors.New("decoding timetable")

// Subject describes the course an entry belongs to.
type Subject struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation"`
	Location     string `json:"location"`
	Type         string `json:"type"`
}

// Entry is one scheduled class session.
//
// The JSON tags are wire contract v1: {"day", "time", "duration",
// "professor", "classroom", "subject": {...}}.
type Entry struct {
	Day       int     `json:"day" validate:"min=0,max=4"`
	StartHour int     `json:"time" validate:"min=7,max=20"`
	Duration  int     `json:"duration" validate:"min=1"`
	Professor string  `json:"professor"`
	Classroom string  `json:"classroom"`
	Subject   Subject `json:"subject"`
}

// EndHour returns the hour at which the entry ends (exclusive).
func (e Entry) EndHour() int {
	return e.StartHour + e.Duration
}

// Placeholder reports whether the entry only reserves a slot and must not be rendered.
func (e Entry) Placeholder() bool {
	return e.Duration <= 0
}

// Decode parses a wire contract v1 response body.
func Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

var (
	dayNames      = [Days]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	dayShortNames = [Days]string{"Mon", "Tue", "Wed", "Thu", "Fri"}
)

// DayName returns the full weekday name for a day index.
func DayName(day int) string {
	if day < 0 || day >= Days {
		return ""
	}
	return dayNames[day]
}

// DayShortName returns the three-letter weekday name for a day index.
func DayShortName(day int) string {
	if day < 0 || day >= Days {
		return ""
	}
	return dayShortNames[day]
}
