package models

import "time"

type Booking struct {
	ID         string    `json:"_id"`
	SlotID     string    `json:"slotId,omitempty"`
	Gym        *GymRef   `json:"gym,omitempty"`
	Date       FlexDate  `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	SlotType   string    `json:"slotType,omitempty"`
	AmountPaid float64   `json:"amountPaid"`
	Cancelled  bool      `json:"cancelled"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// EndInstant combines the booking date with its end time-of-day in local
// time, seconds zeroed. ok is false when the booking cannot be placed on
// the timeline (missing or unparseable date/endTime).
func (b Booking) EndInstant() (time.Time, bool) {
	if !b.Date.Valid() || b.EndTime == "" {
		return time.Time{}, false
	}

	hour, minute, ok := ParseClock(b.EndTime)
	if !ok {
		return time.Time{}, false
	}

	day := b.Date.Local()
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), true
}
