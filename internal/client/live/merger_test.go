package live

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerger_EmptyBeforeFirstSnapshot(t *testing.T) {
	m := NewMerger()

	_, ok := m.InfoFor("BOS")
	assert.False(t, ok)
	assert.True(t, m.GameDate().IsZero())
}

func TestMerger_LookupByAbbr(t *testing.T) {
	m := NewMerger()
	date := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)

	m.ApplySnapshot(models.PushSnapshot{
		GameDate: date,
		TeamInfo: []models.TeamGameInfo{
			{Abbr: "BOS", PointLeader: "Tatum", AssistLeader: "White", ReboundLeader: "Horford"},
			{Abbr: "LAL", PointLeader: "James"},
		},
	})

	info, ok := m.InfoFor("BOS")
	require.True(t, ok)
	assert.Equal(t, "Tatum", info.PointLeader)
	assert.Equal(t, date, m.GameDate())

	_, ok = m.InfoFor("MIA")
	assert.False(t, ok)
}

func TestMerger_SecondSnapshotFullyReplacesFirst(t *testing.T) {
	m := NewMerger()

	m.ApplySnapshot(models.PushSnapshot{
		TeamInfo: []models.TeamGameInfo{
			{Abbr: "BOS", PointLeader: "Tatum"},
			{Abbr: "LAL", PointLeader: "James"},
		},
	})
	m.ApplySnapshot(models.PushSnapshot{
		TeamInfo: []models.TeamGameInfo{
			{Abbr: "BOS", PointLeader: "Brown"},
		},
	})

	info, ok := m.InfoFor("BOS")
	require.True(t, ok)
	assert.Equal(t, "Brown", info.PointLeader)

	// LAL was absent from the second snapshot: no stale entry resurfaces
	_, ok = m.InfoFor("LAL")
	assert.False(t, ok)
}
