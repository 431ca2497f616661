package models

// Team is one selectable entry in the comparison grid. Eligible is the
// server-supplied flag gating whether an unauthenticated or non-donating
// user may select the team.
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Abbr     string `json:"abbr"`
	Logo     string `json:"logo"`
	Eligible bool   `json:"eligible"`
}
