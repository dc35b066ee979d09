package schedule

import (
	"time"

	"gymslot/internal/models"
)

// OfferableSlots returns the subset of slots that can be offered for the
// target date: the slot's calendar date equals the target's (local time)
// and the slot is not explicitly marked unavailable. A zero target means no
// date is selected, so nothing is offered. Malformed entries are skipped,
// never an error. Input order is preserved.
func OfferableSlots(slots []models.Slot, target time.Time) []models.Slot {
	if target.IsZero() {
		return nil
	}

	var offerable []models.Slot
	for _, slot := range slots {
		if !slot.Date.SameDay(target) {
			continue
		}
		if !slot.IsAvailable() {
			continue
		}
		offerable = append(offerable, slot)
	}
	return offerable
}
