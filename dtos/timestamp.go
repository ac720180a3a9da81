package dtos

import (
	"fmt"
	"time"
)

// Timestamp layouts accepted on input, tried in order. The zone-less layouts
// deliberately have no location: time.Parse then yields UTC directly, which
// is the normalization policy — a client timestamp without an explicit zone
// is taken as UTC, not converted from an assumed local time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp normalizes a wire timestamp to UTC. Applied identically on
// create and update for every date field that crosses the boundary.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: want RFC3339 or 2006-01-02T15:04:05", s)
}
