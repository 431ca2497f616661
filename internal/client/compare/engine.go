// Package compare implements the dual-slot comparison engine. Selections
// alternate strictly between the left and right slot; at most one selection
// cycle is in flight at a time, and a second click while busy is dropped
// rather than queued.
package compare

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/courtside/internal/client/access"
	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/dmitrijs2005/courtside/internal/client/session"
	"github.com/dmitrijs2005/courtside/internal/logging"
)

// Side identifies one of the two comparison slots.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

func (s Side) other() Side {
	if s == Left {
		return Right
	}
	return Left
}

// SlotState holds one selected team's stats. A zero TeamID means the slot
// is empty. A slot is only ever written whole, by a completed cycle.
type SlotState struct {
	TeamID  string
	Summary *models.TeamSummary
	Detail  *models.TeamDetail
}

// State is an observable snapshot of the engine.
type State struct {
	Target Side
	Busy   bool
	Left   SlotState
	Right  SlotState
}

// GateError reports a selection blocked by the access gate. The decision
// tells the caller which prompt to surface.
type GateError struct {
	Decision access.Decision
}

func (e *GateError) Error() string {
	return "selection blocked: " + e.Decision.String()
}

// StatsFetcher is the slice of the API client the engine needs.
type StatsFetcher interface {
	FetchSummary(ctx context.Context, teamID string) (*models.TeamSummary, error)
	FetchDetail(ctx context.Context, teamID string) (*models.TeamDetail, error)
}

// Recorder receives fire-and-forget selection telemetry.
type Recorder interface {
	Selected(abbr string)
}

// Engine is the selection state machine. The mutex guards the state; the
// two fetches run outside the lock, so a handler reading Snapshot or the
// live merger is never blocked behind the network.
type Engine struct {
	fetcher   StatsFetcher
	sessions  func() session.Session
	telemetry Recorder
	log       logging.Logger

	mu       sync.Mutex
	state    State
	closed   bool
	observer func(State)
}

func NewEngine(fetcher StatsFetcher, sessions func() session.Session, telemetry Recorder, log logging.Logger) *Engine {
	return &Engine{
		fetcher:   fetcher,
		sessions:  sessions,
		telemetry: telemetry,
		log:       log,
		state:     State{Target: Left},
	}
}

// SetObserver registers a callback invoked with a state snapshot after every
// observable transition. During a successful cycle the observer sees the
// slot write (busy still set) strictly before the busy clear; UI code can
// therefore rely on the final slot content being visible when busy drops.
func (e *Engine) SetObserver(fn func(State)) {
	e.mu.Lock()
	e.observer = fn
	e.mu.Unlock()
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Close marks the engine dead. In-flight fetches are allowed to resolve;
// their results are discarded instead of being written into slots.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// Select runs one selection cycle for the given team:
//
//  1. Dropped silently while a cycle is in flight or after Close.
//  2. Dropped silently when the team already occupies either slot.
//  3. Blocked with a GateError when the access gate does not allow it;
//     the engine never enters the busy state for a blocked click.
//  4. Otherwise fetches summary then detail (detail only after the summary
//     succeeded), writes the target slot atomically, flips the target, and
//     clears busy strictly after the slot write is observable.
//
// A fetch failure aborts the cycle with the slot untouched and busy
// cleared; the same team may be selected again.
func (e *Engine) Select(ctx context.Context, team models.Team) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	if e.state.Busy {
		e.mu.Unlock()
		e.log.Debug(ctx, "selection dropped, cycle in flight", "team", team.Abbr)
		return nil
	}
	if team.ID == e.state.Left.TeamID || team.ID == e.state.Right.TeamID {
		e.mu.Unlock()
		e.log.Debug(ctx, "selection dropped, team already selected", "team", team.Abbr)
		return nil
	}
	if d := access.Decide(team, e.sessions()); d != access.Allow {
		e.mu.Unlock()
		return &GateError{Decision: d}
	}
	e.state.Busy = true
	target := e.state.Target
	e.mu.Unlock()

	summary, err := e.fetcher.FetchSummary(ctx, team.ID)
	if err != nil {
		e.abort()
		return fmt.Errorf("summary fetch for team %s: %w", team.ID, err)
	}

	detail, err := e.fetcher.FetchDetail(ctx, team.ID)
	if err != nil {
		e.abort()
		return fmt.Errorf("detail fetch for team %s: %w", team.ID, err)
	}

	// Phase one: publish the completed slot, busy still set.
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	slot := SlotState{TeamID: team.ID, Summary: summary, Detail: detail}
	if target == Left {
		e.state.Left = slot
	} else {
		e.state.Right = slot
	}
	e.state.Target = target.other()
	written := e.state
	observer := e.observer
	e.mu.Unlock()
	notify(observer, written)

	// Phase two: only now does busy drop.
	e.mu.Lock()
	e.state.Busy = false
	done := e.state
	observer = e.observer
	e.mu.Unlock()
	notify(observer, done)

	if e.telemetry != nil {
		e.telemetry.Selected(team.Abbr)
	}
	return nil
}

// abort clears busy after a failed cycle, leaving both slots untouched.
func (e *Engine) abort() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.state.Busy = false
	st := e.state
	observer := e.observer
	e.mu.Unlock()
	notify(observer, st)
}

func notify(observer func(State), st State) {
	if observer != nil {
		observer(st)
	}
}
