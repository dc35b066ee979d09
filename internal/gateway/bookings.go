package gateway

import (
	"context"
	"net/http"

	"gymslot/internal/models"
)

// PaymentIntentResponse carries the server-issued authorization secret and
// the provisional booking identifier.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	BookingID    string `json:"bookingId"`
}

// CreatePaymentIntent requests an authorization secret for a slot purchase.
// Requires an authenticated session.
func (c *Client) CreatePaymentIntent(ctx context.Context, slotID string, amount float64) (*PaymentIntentResponse, error) {
	if slotID == "" {
		return nil, ErrValidation
	}

	var resp PaymentIntentResponse
	err := c.do(ctx, call{
		endpoint: "create_payment_intent",
		method:   http.MethodPost,
		path:     "/create-payment-intent",
		body: map[string]interface{}{
			"slotId": slotID,
			"amount": amount,
		},
		authed: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateBooking turns a provisionally-booked slot into a permanent booking
// record after the charge went through.
func (c *Client) CreateBooking(ctx context.Context, slotID, paymentIntentID string, amount float64) (*models.Booking, error) {
	if slotID == "" || paymentIntentID == "" {
		return nil, ErrValidation
	}

	var booking models.Booking
	err := c.do(ctx, call{
		endpoint: "create_booking",
		method:   http.MethodPost,
		path:     "/bookings",
		body: map[string]interface{}{
			"slotId":          slotID,
			"paymentIntentId": paymentIntentID,
			"amount":          amount,
		},
		authed: true,
	}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// MyBookings lists the current user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := c.do(ctx, call{
		endpoint: "my_bookings",
		method:   http.MethodGet,
		path:     "/bookings",
		authed:   true,
	}, &bookings)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking marks a booking cancelled. The backend answers 204.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	if id == "" {
		return ErrValidation
	}
	return c.do(ctx, call{
		endpoint: "cancel_booking",
		method:   http.MethodDelete,
		path:     "/bookings/" + id,
		authed:   true,
	}, nil)
}
