package worker

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"gymslot/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu    sync.Mutex
	fails int
	calls int
	last  []models.Booking
	done  chan struct{}
}

func (f *fakeWriter) Write(bookings []models.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.fails {
		return "", errors.New("disk full")
	}
	f.last = bookings
	if f.done != nil {
		close(f.done)
		f.done = nil
	}
	return "/tmp/bookings.xlsx", nil
}

func (f *fakeWriter) stats() (int, []models.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.last
}

func testLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

func TestExportWorkerWritesSnapshot(t *testing.T) {
	writer := &fakeWriter{done: make(chan struct{})}
	done := writer.done
	w := NewExportWorker(writer, RetryPolicy{}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	w.Enqueue([]models.Booking{{ID: "bk1"}})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was not written")
	}

	calls, last := writer.stats()
	assert.Equal(t, 1, calls)
	require.Len(t, last, 1)
	assert.Equal(t, "bk1", last[0].ID)
}

func TestExportWorkerRetries(t *testing.T) {
	writer := &fakeWriter{fails: 2, done: make(chan struct{})}
	done := writer.done
	w := NewExportWorker(writer, RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	w.Enqueue([]models.Booking{{ID: "bk1"}})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was not written after retries")
	}

	calls, _ := writer.stats()
	assert.Equal(t, 3, calls)
}

func TestEnqueueNeverBlocks(t *testing.T) {
	// worker not started, queue fills up and old snapshots are evicted
	w := NewExportWorker(&fakeWriter{}, RetryPolicy{}, testLogger())

	for i := 0; i < models.WorkerQueueSize*2; i++ {
		w.Enqueue([]models.Booking{{ID: "bk"}})
	}

	assert.Equal(t, models.WorkerQueueSize, len(w.queue))
}

func TestRetryPolicyNextDelay(t *testing.T) {
	policy := RetryPolicy{
		MaxRetries:    5,
		InitialDelay:  time.Second,
		MaxDelay:      10 * time.Second,
		BackoffFactor: 2,
	}

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{"FirstAttempt", 1, time.Second},
		{"SecondAttempt", 2, 2 * time.Second},
		{"ThirdAttempt", 3, 4 * time.Second},
		{"ClampedToMax", 6, 10 * time.Second},
		{"BelowOneTreatedAsFirst", 0, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.NextDelay(tt.attempt))
		})
	}
}

func TestRetryPolicyZeroValueDefaults(t *testing.T) {
	var policy RetryPolicy
	assert.Equal(t, time.Second, policy.NextDelay(1))
	assert.Equal(t, 2*time.Second, policy.NextDelay(2))
}
