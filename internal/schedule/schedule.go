package schedule

// Status is the display state of a booking.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Tab selects the bookings-list view.
type Tab int

const (
	TabAll Tab = iota
	TabUpcoming
	TabPast
)

// Classification is the computed lifecycle state of a booking.
type Classification struct {
	Status      Status
	Cancellable bool
}
