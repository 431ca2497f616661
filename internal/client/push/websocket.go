package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/dmitrijs2005/courtside/internal/logging"
	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"
)

// Event names carried in the envelope.
const (
	eventGameSnapshot      = "gameSnapshot"
	eventDonationConfirmed = "donationConfirmed"
)

type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type donationPayload struct {
	UserID string `json:"userId"`
}

// WSChannel is the websocket implementation of Channel.
type WSChannel struct {
	url    string
	dialer *websocket.Dialer
	log    logging.Logger

	// backoff bounds for redialing; a fresh backoff is used per outage so
	// the delay resets after a healthy connection
	minDelay time.Duration
	maxDelay time.Duration
}

func NewWSChannel(url string, log logging.Logger) *WSChannel {
	return &WSChannel{
		url:      url,
		dialer:   websocket.DefaultDialer,
		log:      log,
		minDelay: 500 * time.Millisecond,
		maxDelay: 30 * time.Second,
	}
}

// Run connects and pumps events until ctx is cancelled. A dropped
// connection is re-established with fibonacci backoff; handler errors are
// never fatal.
func (c *WSChannel) Run(ctx context.Context, h Handler) error {
	for {
		conn, err := c.connect(ctx)
		if err != nil {
			// only context cancellation gets here
			return nil
		}
		c.log.Info(ctx, "push channel connected", "url", c.url)

		c.pump(ctx, conn, h)
		_ = conn.Close()

		if ctx.Err() != nil {
			return nil
		}
		c.log.Warn(ctx, "push channel lost, reconnecting", "url", c.url)
	}
}

// connect dials until it succeeds or ctx is cancelled.
func (c *WSChannel) connect(ctx context.Context) (*websocket.Conn, error) {
	var conn *websocket.Conn

	backoff := retry.WithCappedDuration(c.maxDelay, retry.NewFibonacci(c.minDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		dialed, _, err := c.dialer.DialContext(ctx, c.url, nil)
		if err != nil {
			c.log.Debug(ctx, "push dial failed, backing off", "error", err)
			return retry.RetryableError(err)
		}
		conn = dialed
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("push dial: %w", err)
	}
	return conn, nil
}

// pump reads envelopes until the connection breaks or ctx is cancelled.
func (c *WSChannel) pump(ctx context.Context, conn *websocket.Conn, h Handler) {
	// unblock the blocking read when ctx is cancelled
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			if ctx.Err() == nil {
				c.log.Debug(ctx, "push read failed", "error", err)
			}
			return
		}
		dispatch(ctx, env, h, c.log)
	}
}

// dispatch decodes one envelope and hands it to the handler. Unknown events
// and undecodable payloads are logged and skipped.
func dispatch(ctx context.Context, env envelope, h Handler, log logging.Logger) {
	switch env.Event {
	case eventGameSnapshot:
		var snap models.PushSnapshot
		if err := json.Unmarshal(env.Payload, &snap); err != nil {
			log.Warn(ctx, "bad game snapshot payload", "error", err)
			return
		}
		h.HandleGameSnapshot(snap)
	case eventDonationConfirmed:
		var p donationPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			log.Warn(ctx, "bad donation payload", "error", err)
			return
		}
		h.HandleDonationConfirmed(p.UserID)
	default:
		log.Debug(ctx, "unknown push event", "event", env.Event)
	}
}
