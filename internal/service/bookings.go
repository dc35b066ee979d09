package service

import (
	"context"
	"time"

	"gymslot/internal/metrics"
	"gymslot/internal/models"
	"gymslot/internal/schedule"
)

// LoadBookings refreshes the user's bookings from the backend.
func (c *Client) LoadBookings(ctx context.Context) error {
	bookings, err := c.gw.MyBookings(ctx)
	if err != nil {
		return err
	}

	invalid := 0
	now := c.clock()
	for _, b := range bookings {
		if _, ok := schedule.Classify(b, now); !ok {
			invalid++
			metrics.IncInvalidRecord("booking")
		}
	}
	if invalid > 0 {
		c.logger.Warn().Int("count", invalid).Msg("Bookings with unusable date or end time will be hidden from time views")
	}

	c.mu.Lock()
	c.bookings = bookings
	c.mu.Unlock()
	return nil
}

// SelectTab switches the bookings view between All, Upcoming and Past.
func (c *Client) SelectTab(tab schedule.Tab) {
	c.mu.Lock()
	c.tab = tab
	c.mu.Unlock()
}

// SelectDate narrows the view to one calendar date on top of the tab.
func (c *Client) SelectDate(date time.Time) {
	c.mu.Lock()
	c.dateFilter = &date
	c.mu.Unlock()
}

// ClearDateFilter drops the date filter and resets the view to the All
// tab, restoring the full list.
func (c *Client) ClearDateFilter() {
	c.mu.Lock()
	c.dateFilter = nil
	c.tab = schedule.TabAll
	c.mu.Unlock()
}

// View recomputes the filtered bookings list for the current tab and date
// filter at the current instant.
func (c *Client) View() []models.Booking {
	c.mu.Lock()
	bookings := append([]models.Booking(nil), c.bookings...)
	tab := c.tab
	dateFilter := c.dateFilter
	c.mu.Unlock()

	return schedule.FilterBookings(bookings, tab, dateFilter, c.clock())
}

// Classify exposes the lifecycle state of one booking for display.
func (c *Client) Classify(b models.Booking) (schedule.Classification, bool) {
	return schedule.Classify(b, c.clock())
}

// Book runs the whole purchase: the second call for the same slot while
// the first is still outstanding is rejected instead of double-charging.
func (c *Client) Book(ctx context.Context, slotID, paymentMethod string) (*models.Booking, error) {
	c.mu.Lock()
	if c.inFlight[slotID] {
		c.mu.Unlock()
		return nil, ErrBookingInFlight
	}
	c.inFlight[slotID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inFlight, slotID)
		c.mu.Unlock()
	}()

	slot, err := c.gw.SlotByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	intent, err := c.flow.Initiate(ctx, slotID, slot.Price)
	if err != nil {
		return nil, err
	}

	booking, err := c.flow.Confirm(ctx, intent, paymentMethod)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bookings = append(c.bookings, *booking)
	c.mu.Unlock()

	c.export()
	return booking, nil
}

// Cancel cancels a booking when its classification still allows it.
// Cancellation is irreversible.
func (c *Client) Cancel(ctx context.Context, bookingID string) error {
	c.mu.Lock()
	idx := -1
	for i, b := range c.bookings {
		if b.ID == bookingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return ErrBookingNotFound
	}
	booking := c.bookings[idx]
	c.mu.Unlock()

	cls, ok := schedule.Classify(booking, c.clock())
	if !ok || !cls.Cancellable {
		return ErrNotCancellable
	}

	if err := c.gw.CancelBooking(ctx, bookingID); err != nil {
		return err
	}

	c.mu.Lock()
	c.bookings[idx].Cancelled = true
	c.mu.Unlock()

	c.logger.Info().Str("booking_id", bookingID).Msg("Booking cancelled")
	c.export()
	return nil
}
