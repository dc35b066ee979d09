package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gymslot/internal/models"
	"gymslot/internal/payment"
	"gymslot/internal/schedule"

	"github.com/rs/zerolog"
)

var (
	// ErrSuperseded означает, что ответ пришёл после более нового запроса и отброшен
	ErrSuperseded = errors.New("service: request superseded by a newer one")

	// ErrBookingInFlight означает повторный клик по брони, пока первый запрос не завершился
	ErrBookingInFlight = errors.New("service: booking already in flight for this slot")

	// ErrBookingNotFound возвращается при отмене неизвестной брони
	ErrBookingNotFound = errors.New("service: booking not found")

	// ErrNotCancellable возвращается при попытке отменить завершённую или уже отменённую бронь
	ErrNotCancellable = errors.New("service: booking can no longer be cancelled")
)

// Gateway is the slice of the backend client the service needs.
type Gateway interface {
	Slots(ctx context.Context, gymID, date string) ([]models.Slot, error)
	SlotByID(ctx context.Context, slotID string) (*models.Slot, error)
	MyBookings(ctx context.Context) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

// PaymentFlow runs the two-phase pay-then-record sequence.
type PaymentFlow interface {
	Initiate(ctx context.Context, slotID string, amount float64) (*payment.Intent, error)
	Confirm(ctx context.Context, intent *payment.Intent, paymentMethod string) (*models.Booking, error)
}

// Exporter receives booking snapshots after mutations. May be nil.
type Exporter interface {
	Enqueue(bookings []models.Booking)
}

// Client orchestrates the gateway, the decision engine and the payment
// flow for a single user session. All methods are safe for the
// event-driven, one-operation-at-a-time execution model; the mutex only
// protects the cached view state against callback interleaving.
type Client struct {
	gw       Gateway
	flow     PaymentFlow
	exporter Exporter
	logger   *zerolog.Logger
	clock    func() time.Time

	mu         sync.Mutex
	slotGen    map[string]uint64
	inFlight   map[string]bool
	bookings   []models.Booking
	tab        schedule.Tab
	dateFilter *time.Time
}

func NewClient(gw Gateway, flow PaymentFlow, exporter Exporter, logger *zerolog.Logger) *Client {
	return &Client{
		gw:       gw,
		flow:     flow,
		exporter: exporter,
		logger:   logger,
		clock:    time.Now,
		slotGen:  make(map[string]uint64),
		inFlight: make(map[string]bool),
	}
}

func (c *Client) export() {
	if c.exporter == nil {
		return
	}
	c.mu.Lock()
	snapshot := append([]models.Booking(nil), c.bookings...)
	c.mu.Unlock()
	c.exporter.Enqueue(snapshot)
}
