// Package access implements the per-click gating policy for selectable
// teams. Decide is a pure function over the team's eligibility flag and the
// current session; it is cheap enough to call on every render.
package access

import (
	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/dmitrijs2005/courtside/internal/client/session"
)

// Decision is the gate's verdict for one click.
type Decision int

const (
	// Allow lets the selection proceed.
	Allow Decision = iota
	// PromptRegister asks an unauthenticated user to create an account.
	PromptRegister
	// PromptDonate asks an authenticated, non-donating user to donate.
	PromptDonate
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case PromptRegister:
		return "prompt-register"
	case PromptDonate:
		return "prompt-donate"
	default:
		return "unknown"
	}
}

// Decide gates one selection attempt. Eligible teams are open to everyone;
// restricted teams require an authenticated session, and a donation unlocks
// them.
func Decide(team models.Team, s session.Session) Decision {
	if team.Eligible {
		return Allow
	}
	if !s.IsAuthenticated {
		return PromptRegister
	}
	if !s.Donated() {
		return PromptDonate
	}
	return Allow
}
