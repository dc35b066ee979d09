package gateway

import (
	"context"
	"net/http"
	"net/url"

	"gymslot/internal/models"
)

// Gyms lists gyms, optionally narrowed to a location substring.
func (c *Client) Gyms(ctx context.Context, location string) ([]models.Gym, error) {
	query := url.Values{}
	if location != "" {
		query.Set("location", location)
	}

	var gyms []models.Gym
	err := c.do(ctx, call{
		endpoint: "gyms",
		method:   http.MethodGet,
		path:     "/gyms",
		query:    query,
	}, &gyms)
	if err != nil {
		return nil, err
	}
	return gyms, nil
}

// GymByID fetches a single gym.
func (c *Client) GymByID(ctx context.Context, id string) (*models.Gym, error) {
	if id == "" {
		return nil, ErrValidation
	}

	var gym models.Gym
	err := c.do(ctx, call{
		endpoint: "gym",
		method:   http.MethodGet,
		path:     "/gyms/" + id,
	}, &gym)
	if err != nil {
		return nil, err
	}
	return &gym, nil
}

// Slots fetches the raw slot list for a gym on a date (YYYY-MM-DD). Both
// inputs are required, matching the upstream contract.
func (c *Client) Slots(ctx context.Context, gymID, date string) ([]models.Slot, error) {
	if gymID == "" || date == "" {
		return nil, ErrValidation
	}

	query := url.Values{}
	query.Set("date", date)

	var slots []models.Slot
	err := c.do(ctx, call{
		endpoint: "slots",
		method:   http.MethodGet,
		path:     "/slots/" + gymID,
		query:    query,
	}, &slots)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// SlotByID fetches a single slot.
func (c *Client) SlotByID(ctx context.Context, slotID string) (*models.Slot, error) {
	if slotID == "" {
		return nil, ErrValidation
	}

	var slot models.Slot
	err := c.do(ctx, call{
		endpoint: "slot",
		method:   http.MethodGet,
		path:     "/slots/slot/" + slotID,
	}, &slot)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
