package session

// Event is a message delivered into the manager's inbox. Push-channel
// handlers and the HTTP 401 hook communicate with the manager exclusively
// through events, never by touching session state directly.
type Event interface{ isEvent() }

// DonationConfirmed signals that a donation was processed for the given
// user. It is applied only when the ID matches the current session's user.
type DonationConfirmed struct {
	UserID string
}

func (DonationConfirmed) isEvent() {}

// Expired signals that an authenticated request was rejected by the server:
// the session died mid-use and must be torn down.
type Expired struct{}

func (Expired) isEvent() {}
