package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexDate is a calendar date that tolerates the layouts the backend is
// known to emit: plain YYYY-MM-DD, RFC3339 and RFC3339 with fractional
// seconds. Anything else leaves the date zero instead of failing the whole
// payload, so a malformed record is a visible Valid()==false branch for the
// filters rather than a decode error.
type FlexDate struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	DateLayout,
}

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// null, numbers and objects all land here; treat as invalid
		return nil
	}
	if raw == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return nil
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// Valid reports whether a date was actually parsed.
func (d FlexDate) Valid() bool {
	return !d.IsZero()
}

// SameDay compares calendar dates (year, month, day) in local time.
func (d FlexDate) SameDay(t time.Time) bool {
	if !d.Valid() {
		return false
	}
	dy, dm, dd := d.Local().Date()
	ty, tm, td := t.Local().Date()
	return dy == ty && dm == tm && dd == td
}

// ParseClock parses a time-of-day like "09:30" or "09:30:00" into hour and
// minute. Trailing components are ignored, matching what the backend sends.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
