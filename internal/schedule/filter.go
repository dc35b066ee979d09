package schedule

import (
	"time"

	"gymslot/internal/models"
)

// FilterBookings produces the bookings-list view for a tab and an optional
// date filter, evaluated at now.
//
// The Upcoming tab keeps only bookings classified Upcoming, so cancelled
// rows never appear there. The Past tab is a pure time predicate (effective
// end at or before now): a cancelled booking whose slot time has elapsed
// still shows up in history. The asymmetry is deliberate product behavior;
// do not "fix" it. Rows without a usable end instant are dropped from every
// tab. The date filter intersects the tab filter on local calendar date.
// Input order is preserved.
func FilterBookings(all []models.Booking, tab Tab, dateFilter *time.Time, now time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range all {
		end, ok := b.EndInstant()
		if !ok {
			continue
		}

		switch tab {
		case TabUpcoming:
			c, ok := Classify(b, now)
			if !ok || c.Status != StatusUpcoming {
				continue
			}
		case TabPast:
			if end.After(now) {
				continue
			}
		}

		if dateFilter != nil && !b.Date.SameDay(*dateFilter) {
			continue
		}

		out = append(out, b)
	}
	return out
}
