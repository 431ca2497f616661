package models

import "time"

// PushSnapshot is the latest live-data payload delivered over the push
// channel. Each snapshot fully replaces the previous one; entries are keyed
// by team abbreviation.
type PushSnapshot struct {
	GameDate time.Time      `json:"gameDate"`
	TeamInfo []TeamGameInfo `json:"teamInfo"`
}

// TeamGameInfo is the decorative per-team overlay shown on the selection
// grid: the current leaders for the team's most recent game.
type TeamGameInfo struct {
	Abbr          string `json:"abbr"`
	PointLeader   string `json:"pointLeader"`
	AssistLeader  string `json:"assistLeader"`
	ReboundLeader string `json:"reboundLeader"`
}
