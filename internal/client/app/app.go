// Package app wires the Courtside client together: credential database,
// API client, session manager, selection engine, live merger, telemetry,
// and the push channel.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/courtside/internal/client/api"
	"github.com/dmitrijs2005/courtside/internal/client/compare"
	"github.com/dmitrijs2005/courtside/internal/client/config"
	"github.com/dmitrijs2005/courtside/internal/client/credentials"
	"github.com/dmitrijs2005/courtside/internal/client/live"
	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/dmitrijs2005/courtside/internal/client/push"
	"github.com/dmitrijs2005/courtside/internal/client/session"
	"github.com/dmitrijs2005/courtside/internal/client/telemetry"
	"github.com/dmitrijs2005/courtside/internal/common"
	"github.com/dmitrijs2005/courtside/internal/logging"
	"golang.org/x/sync/errgroup"
)

// maxTeams caps the selection grid, matching the dashboard layout.
const maxTeams = 30

type App struct {
	cfg *config.Config
	log logging.Logger

	db        *sql.DB
	store     *credentials.Store
	api       api.Client
	session   *session.Manager
	engine    *compare.Engine
	merger    *live.Merger
	channel   push.Channel
	telemetry *telemetry.Recorder

	mu    sync.RWMutex
	teams []models.Team
}

func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init credential database: %w", err)
	}

	a := &App{cfg: cfg, log: log, db: db}
	a.store = credentials.NewStore(db)

	tokens := func(ctx context.Context) string { return a.store.Token(ctx) }
	onUnauthorized := func() { a.session.Deliver(session.Expired{}) }
	httpClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, tokens, onUnauthorized, log)

	a.api = httpClient
	a.session = session.NewManager(httpClient, a.store, log)
	a.telemetry = telemetry.NewRecorder(httpClient, cfg.RequestTimeout, log)
	a.engine = compare.NewEngine(httpClient, a.session.Current, a.telemetry, log)
	a.merger = live.NewMerger()
	a.channel = push.NewWSChannel(cfg.PushURL, log)

	return a, nil
}

// Run bootstraps the session and then supervises the background loops: the
// session inbox and the push channel. It blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Bootstrap(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.session.RunInbox(ctx) })
	g.Go(func() error { return a.channel.Run(ctx, a) })
	return g.Wait()
}

// Close releases everything. In-flight selection fetches resolve into a
// dead engine and are discarded.
func (a *App) Close() error {
	a.engine.Close()
	a.telemetry.Flush()
	_ = a.api.Close()
	return a.db.Close()
}

// HandleGameSnapshot implements push.Handler.
func (a *App) HandleGameSnapshot(snap models.PushSnapshot) {
	a.merger.ApplySnapshot(snap)
}

// HandleDonationConfirmed implements push.Handler.
func (a *App) HandleDonationConfirmed(userID string) {
	a.session.Deliver(session.DonationConfirmed{UserID: userID})
}

// LoadTeams fetches and caches the selection grid.
func (a *App) LoadTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.api.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	if len(teams) > maxTeams {
		teams = teams[:maxTeams]
	}

	a.mu.Lock()
	a.teams = teams
	a.mu.Unlock()
	return teams, nil
}

// Teams returns the cached selection grid.
func (a *App) Teams() []models.Team {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.teams
}

// SelectByAbbr runs a selection cycle for the cached team with the given
// abbreviation.
func (a *App) SelectByAbbr(ctx context.Context, abbr string) error {
	a.mu.RLock()
	var found *models.Team
	for i := range a.teams {
		if a.teams[i].Abbr == abbr {
			found = &a.teams[i]
			break
		}
	}
	a.mu.RUnlock()

	if found == nil {
		return fmt.Errorf("%w: team %s", common.ErrNotFound, abbr)
	}
	return a.engine.Select(ctx, *found)
}

// Session exposes the session manager to the UI layer.
func (a *App) Session() *session.Manager { return a.session }

// Engine exposes the selection engine to the UI layer.
func (a *App) Engine() *compare.Engine { return a.engine }

// Merger exposes the live-info view to the UI layer.
func (a *App) Merger() *live.Merger { return a.merger }

// API exposes the backend client for operations the app does not wrap,
// such as the admin panel calls.
func (a *App) API() api.Client { return a.api }
