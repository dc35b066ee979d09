package payment

import (
	"context"
	"fmt"

	"gymslot/internal/gateway"
	"gymslot/internal/metrics"
	"gymslot/internal/models"

	"github.com/rs/zerolog"
)

// Backend is the slice of the gateway the flow needs.
type Backend interface {
	CreatePaymentIntent(ctx context.Context, slotID string, amount float64) (*gateway.PaymentIntentResponse, error)
	CreateBooking(ctx context.Context, slotID, paymentIntentID string, amount float64) (*models.Booking, error)
}

// Intent is a prepared, not-yet-confirmed payment.
type Intent struct {
	SlotID       string
	Amount       float64
	ClientSecret string
	BookingID    string
}

// Flow orchestrates the one place where two remote systems must agree:
// backend issues the authorization secret, the processor charges the card,
// then the backend records the booking. The flow never retries a charge on
// its own; a retry requires new user action.
type Flow struct {
	backend   Backend
	processor Processor
	logger    *zerolog.Logger
}

func NewFlow(backend Backend, processor Processor, logger *zerolog.Logger) *Flow {
	return &Flow{
		backend:   backend,
		processor: processor,
		logger:    logger,
	}
}

// Initiate asks the backend for an authorization secret and a provisional
// booking id. Gateway errors (including ErrUnauthenticated) pass through.
func (f *Flow) Initiate(ctx context.Context, slotID string, amount float64) (*Intent, error) {
	resp, err := f.backend.CreatePaymentIntent(ctx, slotID, amount)
	if err != nil {
		return nil, err
	}
	if resp.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	return &Intent{
		SlotID:       slotID,
		Amount:       amount,
		ClientSecret: resp.ClientSecret,
		BookingID:    resp.BookingID,
	}, nil
}

// Confirm hands the secret to the processor and, on success, creates the
// permanent booking record. A failure after a successful charge surfaces as
// ErrBookingRecordFailed so the caller never silently loses the fact that
// money moved.
func (f *Flow) Confirm(ctx context.Context, intent *Intent, paymentMethod string) (*models.Booking, error) {
	result, err := f.processor.ConfirmCardPayment(ctx, intent.ClientSecret, paymentMethod)
	if err != nil {
		metrics.IncPaymentOutcome("processor_error")
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	switch result.Status {
	case StatusSucceeded:
		booking, err := f.backend.CreateBooking(ctx, intent.SlotID, result.IntentID, intent.Amount)
		if err != nil {
			metrics.IncPaymentOutcome("booking_record_failed")
			f.logger.Error().
				Err(err).
				Str("intent_id", result.IntentID).
				Str("provisional_booking_id", intent.BookingID).
				Msg("Charge succeeded but booking record creation failed, manual reconciliation required")
			return nil, fmt.Errorf("%w: intent %s: %v", ErrBookingRecordFailed, result.IntentID, err)
		}

		metrics.IncPaymentOutcome("succeeded")
		f.logger.Info().
			Str("booking_id", booking.ID).
			Str("intent_id", result.IntentID).
			Msg("Booking confirmed")
		return booking, nil

	case StatusRequiresAction:
		metrics.IncPaymentOutcome("incomplete")
		return nil, ErrPaymentIncomplete

	default:
		metrics.IncPaymentOutcome("failed")
		if result.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, result.Message)
		}
		return nil, ErrPaymentFailed
	}
}
