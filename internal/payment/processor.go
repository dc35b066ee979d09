package payment

import "context"

// Status is the processor's verdict on a charge attempt.
type Status string

const (
	StatusSucceeded      Status = "succeeded"
	StatusRequiresAction Status = "requires_action"
	StatusFailed         Status = "failed"
)

// ConfirmResult is what the processor reports back for one charge attempt.
// IntentID identifies the transaction on success.
type ConfirmResult struct {
	Status   Status
	IntentID string
	Message  string
}

// Processor is the external payment processor boundary: confirm a card
// payment authorized by a client secret. A returned error means the attempt
// could not be delivered at all; a hard decline comes back as StatusFailed.
type Processor interface {
	ConfirmCardPayment(ctx context.Context, clientSecret, paymentMethod string) (*ConfirmResult, error)
}
