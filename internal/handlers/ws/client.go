package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/clueduel/clueduel/internal/services/match"
	"github.com/clueduel/clueduel/internal/services/matchmaking"
)

const (
	// writeWait is the deadline for a single outbound write
	writeWait = 10 * time.Second

	// pongWait is how long to keep a silent connection alive
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	// sendBuffer bounds the outbound queue; a client that cannot keep
	// up has events dropped rather than stalling the match engine
	sendBuffer = 64
)

// client is one websocket connection and the player identity bound to
// it. Notify is safe to call from any goroutine and never blocks.
type client struct {
	gateway *Gateway
	conn    *websocket.Conn

	playerID string
	name     string

	send chan Envelope
	done chan struct{}
}

func newClient(g *Gateway, conn *websocket.Conn) *client {
	return &client{
		gateway:  g,
		conn:     conn,
		playerID: g.uuider.NewUUID(),
		send:     make(chan Envelope, sendBuffer),
		done:     make(chan struct{}),
	}
}

// Notify implements the services' notifier contract. A full send
// buffer drops the event instead of blocking a timer callback.
func (c *client) Notify(event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("[WS] %s: failed to marshal %s payload: %v", c.playerID, event, err)
		return
	}

	select {
	case c.send <- Envelope{Event: event, Data: raw}:
	default:
		log.Printf("[WS] %s: send buffer full, dropping %s", c.playerID, event)
	}
}

// readPump consumes client frames until the connection drops, then
// removes the player from the matchmaking pool. The send channel is
// never closed; stray timer notifications after disconnect land in a
// buffer nobody drains.
func (c *client) readPump() {
	defer func() {
		c.disconnect()
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] %s: read error: %v", c.playerID, err)
			}
			return
		}
		c.dispatch(env)
	}
}

// writePump flushes the outbound queue and keeps the connection alive
// with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case env := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(env); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// dispatch routes one client frame to the owning service
func (c *client) dispatch(env Envelope) {
	ctx := context.Background()

	switch env.Event {
	case EventJoinMatchmaking:
		c.handleJoin(ctx, env)
	case EventCancelMatchmaking:
		c.handleCancel(ctx)
	case EventStartGame:
		c.handleStartGame(ctx, env)
	case EventSubmitAnswer:
		c.handleSubmitAnswer(ctx, env)
	case EventEndMatch:
		c.handleEndMatch(ctx, env)
	default:
		c.reject(env.Event, "unknown event")
	}
}

func (c *client) handleJoin(ctx context.Context, env Envelope) {
	var req JoinMatchmakingRequest
	if err := unmarshal(env.Data, &req); err != nil {
		c.reject(env.Event, "malformed payload")
		return
	}

	if req.PlayerID != "" {
		c.playerID = req.PlayerID
	}
	c.name = req.Name
	if c.name == "" {
		c.name = "Player"
	}

	if _, err := c.gateway.matchmaking.Join(ctx, &matchmaking.JoinInput{
		PlayerID:   c.playerID,
		PlayerName: c.name,
		Notifier:   c,
	}); err != nil {
		c.reject(env.Event, err.Error())
	}
}

func (c *client) handleCancel(ctx context.Context) {
	if _, err := c.gateway.matchmaking.Cancel(ctx, &matchmaking.CancelInput{
		PlayerID: c.playerID,
	}); err != nil {
		c.reject(EventCancelMatchmaking, err.Error())
	}
}

func (c *client) handleStartGame(ctx context.Context, env Envelope) {
	var req StartGameRequest
	if err := unmarshal(env.Data, &req); err != nil {
		c.reject(env.Event, "malformed payload")
		return
	}

	if _, err := c.gateway.matches.StartRound(ctx, &match.StartRoundInput{
		MatchID: req.MatchID,
	}); err != nil {
		c.reject(env.Event, err.Error())
	}
}

func (c *client) handleSubmitAnswer(ctx context.Context, env Envelope) {
	var req SubmitAnswerRequest
	if err := unmarshal(env.Data, &req); err != nil {
		c.reject(env.Event, "malformed payload")
		return
	}

	if _, err := c.gateway.matches.SubmitAnswer(ctx, &match.SubmitAnswerInput{
		MatchID:  req.MatchID,
		PlayerID: c.playerID,
		Answer:   req.Answer,
		TimeLeft: req.TimeLeft,
	}); err != nil {
		// Late, duplicate, and unknown-match submissions are dropped
		// without an error echo; the round outcome events tell the
		// client everything it needs
		switch err {
		case match.ErrAlreadyAnswered, match.ErrInvalidState, match.ErrMatchNotFound:
			log.Printf("[WS] %s: dropped answer for %s: %v", c.playerID, req.MatchID, err)
		default:
			c.reject(env.Event, err.Error())
		}
	}
}

func (c *client) handleEndMatch(ctx context.Context, env Envelope) {
	var req EndMatchRequest
	if err := unmarshal(env.Data, &req); err != nil {
		c.reject(env.Event, "malformed payload")
		return
	}

	if _, err := c.gateway.matches.EndMatch(ctx, &match.EndMatchInput{
		MatchID: req.MatchID,
	}); err != nil {
		c.reject(env.Event, err.Error())
	}
}

// disconnect removes the connection's player from the matchmaking
// pool; a player mid-match keeps their session until it settles or is
// ended explicitly.
func (c *client) disconnect() {
	if _, err := c.gateway.matchmaking.Cancel(context.Background(), &matchmaking.CancelInput{
		PlayerID: c.playerID,
	}); err != nil {
		log.Printf("[WS] %s: cancel on disconnect failed: %v", c.playerID, err)
	}
	log.Printf("[WS] %s: disconnected", c.playerID)
}

func (c *client) reject(event, message string) {
	c.Notify(EventError, ErrorPayload{
		Event:   event,
		Message: message,
	})
}

func unmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
