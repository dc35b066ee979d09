package worker

import (
	"context"
	"time"

	"gymslot/internal/metrics"
	"gymslot/internal/models"

	"github.com/rs/zerolog"
)

// SnapshotWriter persists one booking snapshot and returns the file path.
type SnapshotWriter interface {
	Write(bookings []models.Booking) (string, error)
}

// ExportWorker consumes booking snapshots and writes them to disk. Only
// the most recent snapshot matters, so a full queue drops the oldest
// entry instead of blocking the caller.
type ExportWorker struct {
	writer      SnapshotWriter
	retryPolicy RetryPolicy
	queue       chan []models.Booking
	logger      *zerolog.Logger
}

// NewExportWorker builds a worker with sane defaults.
func NewExportWorker(writer SnapshotWriter, retry RetryPolicy, logger *zerolog.Logger) *ExportWorker {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 5
	}
	if retry.InitialDelay == 0 {
		retry.InitialDelay = 2 * time.Second
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = 1 * time.Minute
	}
	if retry.BackoffFactor == 0 {
		retry.BackoffFactor = 2
	}

	return &ExportWorker{
		writer:      writer,
		retryPolicy: retry,
		queue:       make(chan []models.Booking, models.WorkerQueueSize),
		logger:      logger,
	}
}

// Enqueue schedules a snapshot for export. Never blocks.
func (w *ExportWorker) Enqueue(bookings []models.Booking) {
	for {
		select {
		case w.queue <- bookings:
			return
		default:
		}
		// очередь переполнена, вытесняем самый старый снимок
		select {
		case stale := <-w.queue:
			w.logger.Warn().Int("bookings", len(stale)).Msg("Export queue full, oldest snapshot dropped")
		default:
		}
	}
}

// Start launches the main loop; stops when ctx is done.
func (w *ExportWorker) Start(ctx context.Context) {
	w.logger.Info().Msg("Export worker started")
	defer w.logger.Info().Msg("Export worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-w.queue:
			w.process(ctx, snapshot)
		}
	}
}

func (w *ExportWorker) process(ctx context.Context, snapshot []models.Booking) {
	var lastErr error
	for attempt := 1; attempt <= w.retryPolicy.MaxRetries; attempt++ {
		path, err := w.writer.Write(snapshot)
		if err == nil {
			metrics.IncExport("success")
			w.logger.Debug().Str("file_path", path).Msg("Snapshot exported")
			return
		}
		lastErr = err

		delay := w.retryPolicy.NextDelay(attempt)
		w.logger.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", delay).Msg("Export attempt failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	metrics.IncExport("failed")
	w.logger.Error().Err(lastErr).Int("bookings", len(snapshot)).Msg("Snapshot export gave up")
}
