package match

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/clueduel/clueduel/internal/common/clock"
	"github.com/clueduel/clueduel/internal/common/uuid"
	"github.com/clueduel/clueduel/internal/models"
	matchRepo "github.com/clueduel/clueduel/internal/repositories/match"
	playerRepo "github.com/clueduel/clueduel/internal/repositories/player"
	questionRepo "github.com/clueduel/clueduel/internal/repositories/question"
	"github.com/clueduel/clueduel/internal/rng"
)

// Default pacing: clues every 2s, a 2s pause before options, a 30s
// answer window, and simulated answers 1-3s after options show.
const (
	defaultCluePace          = 2 * time.Second
	defaultRevealPause       = 2 * time.Second
	defaultAnswerWindow      = 30 * time.Second
	defaultBotAnswerDelayMin = 1 * time.Second
	defaultBotAnswerDelayMax = 3 * time.Second

	// Simulated accuracy is drawn per match from this range
	defaultBotAccuracyMin = 0.6
	defaultBotAccuracyMax = 0.9
)

// service implements the Service interface
type service struct {
	config *Config

	questionRepo questionRepo.Repository
	playerRepo   playerRepo.Repository
	matchRepo    matchRepo.Repository

	clk    clock.Clock
	uuider uuid.UUID
	random *rng.Source

	// Registry of live sessions; the only structure shared across
	// matches, guarded by mu.
	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.QuestionRepo == nil {
		return nil, ErrNilQuestionRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.CluePace == 0 {
		cfg.CluePace = defaultCluePace
	}
	if cfg.RevealPause == 0 {
		cfg.RevealPause = defaultRevealPause
	}
	if cfg.AnswerWindow == 0 {
		cfg.AnswerWindow = defaultAnswerWindow
	}
	if cfg.BotAnswerDelayMin == 0 {
		cfg.BotAnswerDelayMin = defaultBotAnswerDelayMin
	}
	if cfg.BotAnswerDelayMax == 0 {
		cfg.BotAnswerDelayMax = defaultBotAnswerDelayMax
	}
	if cfg.BotAccuracyMin == 0 && cfg.BotAccuracyMax == 0 {
		cfg.BotAccuracyMin = defaultBotAccuracyMin
		cfg.BotAccuracyMax = defaultBotAccuracyMax
	}

	return &service{
		config:       cfg,
		questionRepo: cfg.QuestionRepo,
		playerRepo:   cfg.PlayerRepo,
		matchRepo:    cfg.MatchRepo,
		clk:          cfg.Clock,
		uuider:       cfg.UUIDGenerator,
		random:       cfg.Random,
		sessions:     make(map[string]*session),
	}, nil
}

// CreateMatch registers a new match between the initiating player and
// either a second real player or a simulated opponent. Points at stake
// are fixed here, from the initiator's current balance, and never
// recomputed.
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil || input.Player1 == nil || input.Player1.Player == nil {
		return nil, ErrMissingParticipant
	}
	if (input.Player2 == nil) == (input.Bot == nil) {
		return nil, ErrMissingParticipant
	}

	stake := PointsAtStake(input.Player1.Player.Points)

	sess := &session{
		svc:           s,
		id:            s.uuider.NewUUID(),
		state:         stateWaitingForQuestion,
		round:         1,
		pointsAtStake: stake,
		createdAt:     s.clk.Now(),
	}

	sess.parts[0] = &participant{
		id:       input.Player1.Player.ID,
		name:     input.Player1.Player.Name,
		rating:   input.Player1.Player.Rating,
		notifier: input.Player1.Notifier,
	}

	if input.Player2 != nil {
		if input.Player2.Player == nil {
			return nil, ErrMissingParticipant
		}
		sess.parts[1] = &participant{
			id:       input.Player2.Player.ID,
			name:     input.Player2.Player.Name,
			rating:   input.Player2.Player.Rating,
			notifier: input.Player2.Notifier,
		}
	} else {
		accuracy := s.config.BotAccuracyMin +
			s.random.Float64()*(s.config.BotAccuracyMax-s.config.BotAccuracyMin)
		sess.parts[1] = &participant{
			id:     input.Bot.ID,
			name:   input.Bot.Name,
			rating: input.Bot.Rating,
			bot:    newSimulatedOpponent(*input.Bot, accuracy),
		}
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Printf("[MATCH] %s: created %s vs %s, %d points at stake",
		sess.id, sess.parts[0].name, sess.parts[1].name, stake)

	return &CreateMatchOutput{
		MatchID:       sess.id,
		PointsAtStake: stake,
	}, nil
}

// StartRound fetches a question and begins the current round
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	sess := s.get(input.MatchID)
	if sess == nil {
		return nil, ErrMatchNotFound
	}

	round, err := sess.startRound(ctx)
	if err != nil {
		return nil, err
	}

	return &StartRoundOutput{Round: round}, nil
}

// SubmitAnswer records a real player's answer for the current round
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	sess := s.get(input.MatchID)
	if sess == nil {
		return nil, ErrMatchNotFound
	}

	if err := sess.submit(input.PlayerID, input.Answer, input.TimeLeft); err != nil {
		return nil, err
	}

	return &SubmitAnswerOutput{Accepted: true}, nil
}

// EndMatch removes a match from the registry and cancels its timers
func (s *service) EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error) {
	s.mu.Lock()
	sess, ok := s.sessions[input.MatchID]
	if ok {
		delete(s.sessions, input.MatchID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrMatchNotFound
	}

	sess.teardown()
	log.Printf("[MATCH] %s: ended and removed", input.MatchID)

	return &EndMatchOutput{Removed: true}, nil
}

// fetchQuestion pulls a random question, retrying once before the
// caller aborts the match
func (s *service) fetchQuestion(ctx context.Context) (*models.Question, error) {
	q, err := s.questionRepo.GetRandomQuestion(ctx)
	if err == nil {
		return q, nil
	}
	log.Printf("[MATCH] question fetch failed, retrying once: %v", err)

	return s.questionRepo.GetRandomQuestion(ctx)
}

func (s *service) get(matchID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[matchID]
}

func (s *service) remove(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, matchID)
}
