package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/courtside/internal/logging"
	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	mu    sync.Mutex
	err   error
	abbrs []string
}

func (f *fakeSender) RecordSelection(ctx context.Context, abbr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abbrs = append(f.abbrs, abbr)
	return f.err
}

func (f *fakeSender) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.abbrs...)
}

func TestSelected_Reports(t *testing.T) {
	s := &fakeSender{}
	r := NewRecorder(s, time.Second, logging.NewDiscardLogger())

	r.Selected("BOS")
	r.Selected("LAL")
	r.Flush()

	assert.ElementsMatch(t, []string{"BOS", "LAL"}, s.recorded())
}

func TestSelected_FailureNeverPropagates(t *testing.T) {
	s := &fakeSender{err: errors.New("backend down")}
	r := NewRecorder(s, time.Second, logging.NewDiscardLogger())

	// must not panic, block, or surface the error anywhere
	r.Selected("BOS")
	r.Flush()

	assert.Equal(t, []string{"BOS"}, s.recorded())
}
