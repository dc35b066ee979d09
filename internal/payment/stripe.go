package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gymslot/internal/config"

	"github.com/rs/zerolog"
)

// StripeProcessor confirms card payments against the Stripe API using the
// publishable key, the way a browser client would.
type StripeProcessor struct {
	apiBase    string
	key        string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func NewStripeProcessor(cfg config.PaymentConfig, logger *zerolog.Logger) *StripeProcessor {
	return &StripeProcessor{
		apiBase: strings.TrimRight(cfg.APIBase, "/"),
		key:     cfg.PublishableKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

type stripeIntent struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *StripeProcessor) ConfirmCardPayment(ctx context.Context, clientSecret, paymentMethod string) (*ConfirmResult, error) {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("key", p.key)
	form.Set("client_secret", clientSecret)
	form.Set("payment_method", paymentMethod)

	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", p.apiBase, intentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create confirm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("processor unreachable: %w", err)
	}
	defer resp.Body.Close()

	var intent stripeIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("decode processor response: %w", err)
	}

	// Declines come back as non-2xx with an error object; that is a
	// definitive verdict, not a transport failure.
	if intent.Error != nil {
		return &ConfirmResult{Status: StatusFailed, Message: intent.Error.Message}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("processor returned status %d", resp.StatusCode)
	}

	result := &ConfirmResult{IntentID: intent.ID}
	switch intent.Status {
	case "succeeded":
		result.Status = StatusSucceeded
	case "requires_action", "requires_confirmation", "processing":
		result.Status = StatusRequiresAction
	default:
		result.Status = StatusFailed
		if intent.LastPaymentError != nil {
			result.Message = intent.LastPaymentError.Message
		}
	}

	p.logger.Debug().Str("intent_id", intent.ID).Str("status", intent.Status).Msg("Processor verdict")
	return result, nil
}

// intentIDFromSecret extracts "pi_123" from "pi_123_secret_456".
func intentIDFromSecret(clientSecret string) (string, error) {
	idx := strings.Index(clientSecret, "_secret_")
	if idx <= 0 {
		return "", fmt.Errorf("malformed client secret")
	}
	return clientSecret[:idx], nil
}
