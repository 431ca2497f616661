// Package telemetry reports team selections to the backend. Recording is
// fire-and-forget: a failure is logged and dropped, it never reaches the
// user and never blocks or aborts a selection cycle.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/courtside/internal/logging"
	"github.com/google/uuid"
)

// Sender is the slice of the API client the recorder needs.
type Sender interface {
	RecordSelection(ctx context.Context, abbr string) error
}

type Recorder struct {
	sender  Sender
	log     logging.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewRecorder(sender Sender, timeout time.Duration, log logging.Logger) *Recorder {
	return &Recorder{sender: sender, timeout: timeout, log: log}
}

// Selected records one selection asynchronously. Each attempt carries its
// own timeout so a slow backend cannot pile up goroutines forever.
func (r *Recorder) Selected(abbr string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.sender.RecordSelection(ctx, abbr); err != nil {
			r.log.Warn(ctx, "selection telemetry dropped",
				"abbr", abbr, "eventID", uuid.NewString(), "error", err)
		}
	}()
}

// Flush waits for in-flight reports, for tests and orderly shutdown.
func (r *Recorder) Flush() {
	r.wg.Wait()
}
