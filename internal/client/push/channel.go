// Package push maintains the persistent subscription to the live game
// channel. The connection auto-reconnects with backoff; incoming events are
// dispatched to a Handler and never touch client state directly.
package push

import (
	"context"

	"github.com/dmitrijs2005/courtside/internal/client/models"
)

// Handler receives decoded push events. Implementations must be safe for
// calls from the channel's read goroutine.
type Handler interface {
	HandleGameSnapshot(snap models.PushSnapshot)
	HandleDonationConfirmed(userID string)
}

// Channel is a persistent push subscription. Run blocks until ctx is
// cancelled, reconnecting as needed.
type Channel interface {
	Run(ctx context.Context, h Handler) error
}
