package schedule

import (
	"time"

	"gymslot/internal/models"
)

// Classify computes the lifecycle state of a booking at a given instant.
//
//	create -> [Upcoming] --(end passes)--> [Completed]
//	              |
//	              +--(user cancels)--> [Cancelled]  terminal
//
// Cancellation is terminal and overrides the time computation. ok is false
// when the booking has no usable end instant and cannot be classified; such
// rows must be excluded from time-partitioned views.
func Classify(b models.Booking, now time.Time) (Classification, bool) {
	if b.Cancelled {
		return Classification{Status: StatusCancelled}, true
	}

	end, ok := b.EndInstant()
	if !ok {
		return Classification{}, false
	}

	if end.After(now) {
		return Classification{Status: StatusUpcoming, Cancellable: true}, true
	}
	return Classification{Status: StatusCompleted}, true
}
