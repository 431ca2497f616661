package models

import "time"

// TeamSummary is the first-stage stats payload for a selected team:
// per-player season averages. Its successful fetch establishes that data
// exists for the team before the heavier detail fetch is issued.
type TeamSummary struct {
	TeamID   string          `json:"teamId"`
	TeamName string          `json:"teamName"`
	Players  []PlayerSummary `json:"players"`
}

type PlayerSummary struct {
	PlayerCode  string  `json:"playerCode"`
	Minutes     float64 `json:"mins"`
	PointsAvg   float64 `json:"pointsAvg"`
	ReboundsAvg float64 `json:"reboundsAvg"`
	AssistsAvg  float64 `json:"assistsAvg"`
}

// TeamDetail is the second-stage payload: per-player lines for the last
// ten games, used by the chart layer.
type TeamDetail struct {
	TeamID  string         `json:"teamId"`
	Players []PlayerDetail `json:"players"`
}

type PlayerDetail struct {
	PlayerCode string     `json:"playerCode"`
	LastGames  []GameLine `json:"pointsPerLast10Games"`
}

type GameLine struct {
	GameDate  time.Time `json:"gameDate"`
	Minutes   float64   `json:"mins"`
	Points    int       `json:"points"`
	Rebounds  int       `json:"rebounds"`
	Assists   int       `json:"assists"`
	Outcome   string    `json:"winOrLoss"`
	TeamScore int       `json:"teamScore"`
	Opponent  string    `json:"oppTeamName"`
}
