package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/clueduel/clueduel/internal/common/uuid"
	"github.com/clueduel/clueduel/internal/services/match"
	"github.com/clueduel/clueduel/internal/services/matchmaking"
)

// GatewayError is a custom error type for gateway configuration errors
type GatewayError string

// Error implements the error interface
func (e GatewayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig             GatewayError = "config cannot be nil"
	ErrNilMatchService       GatewayError = "match service cannot be nil"
	ErrNilMatchmakingService GatewayError = "matchmaking service cannot be nil"
	ErrNilUUIDGenerator      GatewayError = "UUID generator cannot be nil"
)

// Config holds configuration for the websocket gateway
type Config struct {
	// Service dependencies
	MatchService       match.Service
	MatchmakingService matchmaking.Service
	UUIDGenerator      uuid.UUID

	// CheckOrigin overrides the upgrader's origin policy; nil allows
	// every origin, matching a browser client served from anywhere
	CheckOrigin func(r *http.Request) bool
}

// Gateway upgrades HTTP requests to websocket connections and binds
// each one to the matchmaking and match services
type Gateway struct {
	matches     match.Service
	matchmaking matchmaking.Service
	uuider      uuid.UUID
	upgrader    websocket.Upgrader
}

// New creates a new websocket gateway
func New(cfg *Config) (*Gateway, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}
	if cfg.MatchmakingService == nil {
		return nil, ErrNilMatchmakingService
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}

	return &Gateway{
		matches:     cfg.MatchService,
		matchmaking: cfg.MatchmakingService,
		uuider:      cfg.UUIDGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}, nil
}

// ServeWS handles a websocket upgrade request
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	c := newClient(g, conn)
	log.Printf("[WS] %s: connected from %s", c.playerID, r.RemoteAddr)

	go c.writePump()
	go c.readPump()
}
