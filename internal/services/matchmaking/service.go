package matchmaking

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/clueduel/clueduel/internal/common/clock"
	"github.com/clueduel/clueduel/internal/models"
	playerRepo "github.com/clueduel/clueduel/internal/repositories/player"
	"github.com/clueduel/clueduel/internal/rng"
	"github.com/clueduel/clueduel/internal/services/match"
)

const (
	defaultRatingBand      = 100
	defaultPairingDelayMin = 2 * time.Second
	defaultPairingDelayMax = 5 * time.Second
)

// queueEntry is one waiting player. It lives from join until paired or
// cancelled, and leaves the queue exactly once.
type queueEntry struct {
	player   *models.Player
	notifier Notifier
	joinedAt time.Time
}

// service implements the Service interface
type service struct {
	config *Config

	playerRepo   playerRepo.Repository
	matchService MatchCreator
	clk          clock.Clock
	random       *rng.Source

	// Queue of waiting players keyed by player ID; the only structure
	// shared across connections, guarded by mu.
	mu    sync.Mutex
	queue map[string]*queueEntry
}

// New creates a new matchmaking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.RatingBand == 0 {
		cfg.RatingBand = defaultRatingBand
	}
	if cfg.PairingDelayMin == 0 {
		cfg.PairingDelayMin = defaultPairingDelayMin
	}
	if cfg.PairingDelayMax == 0 {
		cfg.PairingDelayMax = defaultPairingDelayMax
	}

	return &service{
		config:       cfg,
		playerRepo:   cfg.PlayerRepo,
		matchService: cfg.MatchService,
		clk:          cfg.Clock,
		random:       cfg.Random,
		queue:        make(map[string]*queueEntry),
	}, nil
}

// Join enqueues a player and schedules a pairing attempt after a
// randomized delay. A second join from the same player replaces the
// earlier entry rather than duplicating it.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrMissingPlayer
	}

	player, err := s.playerRepo.GetOrCreatePlayer(ctx, &playerRepo.GetOrCreatePlayerInput{
		PlayerID: input.PlayerID,
		Name:     input.PlayerName,
	})
	if err != nil {
		return nil, err
	}

	entry := &queueEntry{
		player:   player,
		notifier: input.Notifier,
		joinedAt: s.clk.Now(),
	}

	s.mu.Lock()
	s.queue[player.ID] = entry
	s.mu.Unlock()

	if entry.notifier != nil {
		entry.notifier.Notify(EventMatchmakingStatus, StatusPayload{
			Status:  "searching",
			Message: "Finding opponent...",
		})
	}

	delay := s.random.Between(s.config.PairingDelayMin, s.config.PairingDelayMax)
	s.clk.AfterFunc(delay, func() {
		s.pair(entry)
	})

	log.Printf("[MATCHMAKING] %s (%d) queued, pairing in %s", player.Name, player.Rating, delay)

	return &JoinOutput{Rating: player.Rating}, nil
}

// Cancel removes a pending queue entry. A pairing callback that fires
// afterwards finds the entry gone and aborts silently.
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrMissingPlayer
	}

	s.mu.Lock()
	entry, ok := s.queue[input.PlayerID]
	if ok {
		delete(s.queue, input.PlayerID)
	}
	s.mu.Unlock()

	if !ok {
		return &CancelOutput{Cancelled: false}, nil
	}

	if entry.notifier != nil {
		entry.notifier.Notify(EventMatchmakingCancelled, struct{}{})
	}

	log.Printf("[MATCHMAKING] %s left the queue", input.PlayerID)

	return &CancelOutput{Cancelled: true}, nil
}

// pair attempts to match the given entry: a queued real player inside
// the rating band wins, otherwise a roster profile. The entry identity
// check makes a cancelled or replaced entry a silent no-op.
func (s *service) pair(entry *queueEntry) {
	band := s.config.RatingBand

	s.mu.Lock()
	current, ok := s.queue[entry.player.ID]
	if !ok || current != entry {
		s.mu.Unlock()
		return
	}

	candidates := make([]*queueEntry, 0, len(s.queue))
	for id, e := range s.queue {
		if id == entry.player.ID {
			continue
		}
		if abs(e.player.Rating-entry.player.Rating) <= band {
			candidates = append(candidates, e)
		}
	}

	var opponent *queueEntry
	if len(candidates) > 0 {
		opponent = candidates[s.random.Intn(len(candidates))]
		delete(s.queue, opponent.player.ID)
	}
	delete(s.queue, entry.player.ID)
	s.mu.Unlock()

	if opponent != nil {
		s.createRealMatch(entry, opponent)
		return
	}

	s.createBotMatch(entry)
}

func (s *service) createRealMatch(entry, opponent *queueEntry) {
	out, err := s.matchService.CreateMatch(context.Background(), &match.CreateMatchInput{
		Player1: &match.RealPlayer{Player: entry.player, Notifier: entry.notifier},
		Player2: &match.RealPlayer{Player: opponent.player, Notifier: opponent.notifier},
	})
	if err != nil {
		log.Printf("[MATCHMAKING] failed to create match for %s vs %s: %v",
			entry.player.ID, opponent.player.ID, err)
		s.notifyFailure(entry, opponent)
		return
	}

	log.Printf("[MATCHMAKING] paired %s with %s (match %s)",
		entry.player.Name, opponent.player.Name, out.MatchID)

	if entry.notifier != nil {
		entry.notifier.Notify(EventMatchFound, MatchFoundPayload{
			MatchID:       out.MatchID,
			Opponent:      opponent.player.Public(),
			PointsAtStake: out.PointsAtStake,
		})
	}
	if opponent.notifier != nil {
		opponent.notifier.Notify(EventMatchFound, MatchFoundPayload{
			MatchID:       out.MatchID,
			Opponent:      entry.player.Public(),
			PointsAtStake: out.PointsAtStake,
		})
	}
}

func (s *service) createBotMatch(entry *queueEntry) {
	bot := s.pickBot(entry.player.Rating)

	out, err := s.matchService.CreateMatch(context.Background(), &match.CreateMatchInput{
		Player1: &match.RealPlayer{Player: entry.player, Notifier: entry.notifier},
		Bot:     &bot,
	})
	if err != nil {
		log.Printf("[MATCHMAKING] failed to create match for %s vs %s: %v",
			entry.player.ID, bot.ID, err)
		s.notifyFailure(entry, nil)
		return
	}

	log.Printf("[MATCHMAKING] paired %s with simulated %s (match %s)",
		entry.player.Name, bot.Name, out.MatchID)

	if entry.notifier != nil {
		entry.notifier.Notify(EventMatchFound, MatchFoundPayload{
			MatchID:       out.MatchID,
			Opponent:      bot.Public(),
			PointsAtStake: out.PointsAtStake,
		})
	}
}

// pickBot prefers roster profiles inside the rating band, falling back
// to the whole roster
func (s *service) pickBot(rating int) models.BotProfile {
	band := s.config.RatingBand

	inBand := make([]models.BotProfile, 0, len(Roster))
	for _, p := range Roster {
		if abs(p.Rating-rating) <= band {
			inBand = append(inBand, p)
		}
	}

	if len(inBand) > 0 {
		return inBand[s.random.Intn(len(inBand))]
	}
	return Roster[s.random.Intn(len(Roster))]
}

// notifyFailure resets clients whose pairing could not be completed
func (s *service) notifyFailure(entries ...*queueEntry) {
	for _, e := range entries {
		if e == nil || e.notifier == nil {
			continue
		}
		e.notifier.Notify(EventMatchmakingCancelled, struct{}{})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
