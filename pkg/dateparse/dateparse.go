// Package dateparse parses the calendar dates accepted by export query parameters.
//
// The grammar is a closed list of layouts rather than heuristic parsing: ISO-8601
// dates and timestamps first, then the handful of human formats the clinics send.
// Ambiguous numeric forms are read month-first (01/02/2006 is 2 January).
package dateparse

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("date is empty")

var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
}

// Parse returns the first layout match for raw, interpreted in UTC for
// layouts without a zone.
func Parse(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrEmpty
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}
