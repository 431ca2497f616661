// Package live holds the latest push-delivered game snapshot and exposes a
// read-only per-team view to the display layer. Each snapshot fully replaces
// the previous one; a team missing from the new snapshot simply has no live
// info. Live info is a decorative overlay on the selection grid and never
// feeds back into the selection engine.
package live

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/courtside/internal/client/models"
)

type Merger struct {
	mu       sync.RWMutex
	gameDate time.Time
	byAbbr   map[string]models.TeamGameInfo
}

func NewMerger() *Merger {
	return &Merger{byAbbr: map[string]models.TeamGameInfo{}}
}

// ApplySnapshot replaces the retained snapshot in full. No history, no
// merging with prior entries.
func (m *Merger) ApplySnapshot(snap models.PushSnapshot) {
	byAbbr := make(map[string]models.TeamGameInfo, len(snap.TeamInfo))
	for _, info := range snap.TeamInfo {
		byAbbr[info.Abbr] = info
	}

	m.mu.Lock()
	m.gameDate = snap.GameDate
	m.byAbbr = byAbbr
	m.mu.Unlock()
}

// InfoFor returns the live info for the given team abbreviation, if any.
func (m *Merger) InfoFor(abbr string) (models.TeamGameInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, ok := m.byAbbr[abbr]
	return info, ok
}

// GameDate returns the date of the retained snapshot, zero when none has
// arrived yet.
func (m *Merger) GameDate() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gameDate
}
