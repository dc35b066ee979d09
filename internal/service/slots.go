package service

import (
	"context"
	"time"

	"gymslot/internal/gateway"
	"gymslot/internal/metrics"
	"gymslot/internal/models"
	"gymslot/internal/schedule"
)

// SlotsForDate fetches and filters the offerable slots for a gym and date.
// Each call supersedes any outstanding fetch for the same gym: a response
// that arrives after a newer request was issued is discarded with
// ErrSuperseded so the caller never renders stale slots.
func (c *Client) SlotsForDate(ctx context.Context, gymID string, date time.Time) ([]models.Slot, error) {
	if gymID == "" || date.IsZero() {
		return nil, gateway.ErrValidation
	}

	c.mu.Lock()
	c.slotGen[gymID]++
	gen := c.slotGen[gymID]
	c.mu.Unlock()

	slots, err := c.gw.Slots(ctx, gymID, date.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	current := c.slotGen[gymID]
	c.mu.Unlock()
	if current != gen {
		metrics.IncStaleResponse()
		c.logger.Debug().Str("gym_id", gymID).Msg("Discarding stale slot response")
		return nil, ErrSuperseded
	}

	c.reportInvalidSlots(slots)
	return schedule.OfferableSlots(slots, date), nil
}

// reportInvalidSlots logs and counts malformed entries; they are skipped by
// the filter, never surfaced as errors.
func (c *Client) reportInvalidSlots(slots []models.Slot) {
	invalid := 0
	for _, s := range slots {
		if !s.Date.Valid() {
			invalid++
			metrics.IncInvalidRecord("slot")
		}
	}
	if invalid > 0 {
		c.logger.Warn().Int("count", invalid).Msg("Skipping slots with malformed dates")
	}
}
