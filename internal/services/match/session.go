package match

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/clueduel/clueduel/internal/common/clock"
	"github.com/clueduel/clueduel/internal/models"
	matchRepo "github.com/clueduel/clueduel/internal/repositories/match"
	playerRepo "github.com/clueduel/clueduel/internal/repositories/player"
)

// sessionState tracks the per-round state machine
type sessionState string

const (
	stateWaitingForQuestion sessionState = "waiting_for_question"
	stateFetchingQuestion   sessionState = "fetching_question"
	stateCluesRevealing     sessionState = "clues_revealing"
	stateAcceptingAnswers   sessionState = "accepting_answers"
	stateSettled            sessionState = "settled"
	stateAborted            sessionState = "aborted"
)

const (
	// maxRounds caps a match at five rounds
	maxRounds = 5

	// winsToClinch ends a match early once a side takes three rounds
	winsToClinch = 3
)

// submittedAnswer is one side's recorded answer for the current round.
// Answers filled in by the countdown expiry go through the same
// resolution as submitted ones.
type submittedAnswer struct {
	label    models.Label
	timeLeft int
}

// participant is one side of a live match
type participant struct {
	id       string
	name     string
	rating   int
	notifier Notifier

	// bot is nil for real players
	bot *simulatedOpponent

	wins   int
	answer *submittedAnswer
}

func (p *participant) real() bool {
	return p.bot == nil
}

func (p *participant) public() models.PublicProfile {
	return models.PublicProfile{
		Name:   p.name,
		Rating: p.rating,
	}
}

func (p *participant) notify(event string, data any) {
	if p.notifier != nil {
		p.notifier.Notify(event, data)
	}
}

// session is the live state of one match. All mutation happens under
// mu; timer callbacks re-check state and round so a stale callback can
// never touch a later round.
type session struct {
	mu  sync.Mutex
	svc *service

	id            string
	state         sessionState
	round         int
	pointsAtStake int
	parts         [2]*participant
	question      *models.Question
	timers        []clock.Timer
	createdAt     time.Time
}

// schedule registers a cancellable timer tied to the session lifetime.
// Caller must hold mu.
func (s *session) schedule(d time.Duration, f func()) {
	s.timers = append(s.timers, s.svc.clk.AfterFunc(d, f))
}

// cancelTimersLocked stops every pending timer. Caller must hold mu.
func (s *session) cancelTimersLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

func (s *session) notifyReal(event string, data any) {
	for _, p := range s.parts {
		if p.real() {
			p.notify(event, data)
		}
	}
}

func (s *session) findParticipant(playerID string) (int, *participant) {
	for i, p := range s.parts {
		if p.real() && p.id == playerID {
			return i, p
		}
	}
	return -1, nil
}

// startRound fetches a question and begins the staged clue reveal.
// Only valid while the session is waiting for a question; anything
// else is an invalid-state drop.
func (s *session) startRound(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.state != stateWaitingForQuestion {
		s.mu.Unlock()
		return 0, ErrInvalidState
	}
	s.state = stateFetchingQuestion
	round := s.round
	s.mu.Unlock()

	// The fetch happens outside the lock; retry once before giving up
	// on the whole match.
	q, err := s.svc.fetchQuestion(ctx)
	if err != nil {
		log.Printf("[MATCH] %s: question fetch failed, aborting: %v", s.id, err)
		s.abort("question repository unavailable")
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateFetchingQuestion || s.round != round {
		return 0, ErrInvalidState
	}

	s.question = q
	s.state = stateCluesRevealing

	s.notifyReal(EventQuestionReceived, QuestionPayload{
		MatchID:  s.id,
		Round:    round,
		Question: q.View(),
	})

	// First clue lands with the question, the rest follow on the pace.
	s.notifyReal(EventClueRevealed, CluePayload{
		MatchID: s.id,
		Round:   round,
		Index:   0,
		Clue:    q.Clues[0],
	})

	pace := s.svc.config.CluePace
	for i := 1; i < len(q.Clues); i++ {
		idx := i
		s.schedule(pace*time.Duration(i), func() {
			s.revealClue(round, idx)
		})
	}

	// Options appear after the last clue plus a pause.
	revealAt := pace*time.Duration(len(q.Clues)-1) + s.svc.config.RevealPause
	s.schedule(revealAt, func() {
		s.revealAnswers(round)
	})

	return round, nil
}

func (s *session) revealClue(round, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateCluesRevealing || s.round != round {
		return
	}

	s.notifyReal(EventClueRevealed, CluePayload{
		MatchID: s.id,
		Round:   round,
		Index:   index,
		Clue:    s.question.Clues[index],
	})
}

// revealAnswers opens the answer window: the countdown starts and, for
// simulated matches, the bot's answer gets scheduled.
func (s *session) revealAnswers(round int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateCluesRevealing || s.round != round {
		return
	}

	s.state = stateAcceptingAnswers

	window := s.svc.config.AnswerWindow
	s.notifyReal(EventAnswersRevealed, AnswersRevealedPayload{
		MatchID:     s.id,
		Round:       round,
		TimeLimitMS: window.Milliseconds(),
	})

	s.schedule(window, func() {
		s.answerTimeout(round)
	})

	for _, p := range s.parts {
		if p.bot == nil {
			continue
		}
		delay := s.svc.random.Between(s.svc.config.BotAnswerDelayMin, s.svc.config.BotAnswerDelayMax)
		s.schedule(delay, func() {
			s.botAnswer(round)
		})
	}
}

// submit records a real player's answer. At most one submission per
// round is accepted; everything else returns a typed error for the
// caller to drop.
func (s *session) submit(playerID string, answer models.Label, timeLeft int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, p := s.findParticipant(playerID)
	if p == nil {
		return ErrNotParticipant
	}
	if s.state != stateAcceptingAnswers {
		return ErrInvalidState
	}
	if p.answer != nil {
		return ErrAlreadyAnswered
	}
	if !answer.Valid() {
		return ErrInvalidAnswer
	}

	p.answer = &submittedAnswer{
		label:    answer,
		timeLeft: timeLeft,
	}

	if s.allAnsweredLocked() {
		s.resolveRoundLocked()
	}

	return nil
}

func (s *session) botAnswer(round int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateAcceptingAnswers || s.round != round {
		return
	}

	for _, p := range s.parts {
		if p.bot == nil || p.answer != nil {
			continue
		}
		label, ok := p.bot.pickAnswer(s.question, s.svc.random)
		if !ok {
			continue
		}
		p.answer = &submittedAnswer{label: label}
	}

	if s.allAnsweredLocked() {
		s.resolveRoundLocked()
	}
}

// answerTimeout fires when the countdown expires: any side without an
// answer gets a uniformly random one, then the round resolves normally.
func (s *session) answerTimeout(round int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateAcceptingAnswers || s.round != round {
		return
	}

	for _, p := range s.parts {
		if p.answer != nil {
			continue
		}
		if p.bot != nil {
			p.bot.answered = true
		}
		p.answer = &submittedAnswer{
			label: s.svc.random.Label(),
		}
	}

	s.resolveRoundLocked()
}

func (s *session) allAnsweredLocked() bool {
	for _, p := range s.parts {
		if p.answer == nil {
			return false
		}
	}
	return true
}

func toRoundAnswer(a *submittedAnswer) RoundAnswer {
	if a == nil {
		return RoundAnswer{}
	}
	return RoundAnswer{Label: a.label, Answered: true}
}

// resolveRoundLocked resolves the current round exactly once: state
// has already been checked by the caller and is flipped before any
// notification goes out. Caller must hold mu.
func (s *session) resolveRoundLocked() {
	round := s.round
	correct := s.question.Correct
	s.cancelTimersLocked()

	outcome := Resolve(toRoundAnswer(s.parts[0].answer), toRoundAnswer(s.parts[1].answer), correct)
	switch outcome.Winner {
	case models.WinnerPlayer:
		s.parts[0].wins++
	case models.WinnerOpponent:
		s.parts[1].wins++
	}

	for i, p := range s.parts {
		if !p.real() {
			continue
		}
		other := s.parts[1-i]

		// The opposing pick is only revealed now, at resolution, so a
		// correctness flag can never leak the right label early.
		if other.answer != nil {
			p.notify(EventOpponentAnswer, OpponentAnswerPayload{
				MatchID:  s.id,
				Round:    round,
				Answer:   other.answer.label,
				Correct:  other.answer.label == correct,
				Opponent: other.public(),
			})
		}

		p.notify(EventRoundResult, s.roundResultLocked(i, round, correct))
	}

	if s.parts[0].wins >= winsToClinch || s.parts[1].wins >= winsToClinch || round >= maxRounds {
		s.finishLocked()
		return
	}

	// Next round: clear per-round state, keep cumulative wins.
	s.round++
	s.question = nil
	for _, p := range s.parts {
		p.answer = nil
		if p.bot != nil {
			p.bot.reset()
		}
	}
	s.state = stateWaitingForQuestion
}

// roundResultLocked builds the round outcome from the perspective of
// the participant at index i. Caller must hold mu.
func (s *session) roundResultLocked(i, round int, correct models.Label) RoundResultPayload {
	me := s.parts[i]
	other := s.parts[1-i]

	outcome := Resolve(toRoundAnswer(me.answer), toRoundAnswer(other.answer), correct)

	payload := RoundResultPayload{
		MatchID:         s.id,
		Round:           round,
		PlayerCorrect:   outcome.PlayerCorrect,
		OpponentCorrect: outcome.OpponentCorrect,
		RoundWinner:     outcome.Winner,
		CorrectAnswer:   correct,
		PlayerWins:      me.wins,
		OpponentWins:    other.wins,
	}
	if me.answer != nil {
		payload.PlayerAnswer = &me.answer.label
	}
	if other.answer != nil {
		payload.OpponentAnswer = &other.answer.label
	}

	return payload
}

// finishLocked settles the match: deltas applied and persisted per
// real participant, a match record written, final results pushed.
// Caller must hold mu.
func (s *session) finishLocked() {
	s.state = stateSettled
	ctx := context.Background()

	for i, p := range s.parts {
		if !p.real() {
			continue
		}
		other := s.parts[1-i]

		settlement := Settle(p.wins, other.wins, s.pointsAtStake)

		player, err := s.svc.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: p.id,
		})
		if err != nil {
			log.Printf("[MATCH] %s: failed to load player %s for settlement: %v", s.id, p.id, err)
			continue
		}

		player.Rating += settlement.RatingDelta
		player.Points += settlement.PointsDelta
		if player.Points < 0 {
			player.Points = 0
		}
		player.GamesPlayed++
		if settlement.Won {
			player.GamesWon++
		}

		if err := s.svc.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: player,
		}); err != nil {
			log.Printf("[MATCH] %s: failed to persist settlement for %s: %v", s.id, p.id, err)
		}

		p.notify(EventMatchResult, MatchResultPayload{
			MatchID:      s.id,
			Won:          settlement.Won,
			PlayerWins:   p.wins,
			OpponentWins: other.wins,
			RatingDelta:  settlement.RatingDelta,
			PointsDelta:  settlement.PointsDelta,
			Rating:       player.Rating,
			Points:       player.Points,
		})
	}

	winnerID := ""
	if s.parts[0].wins > s.parts[1].wins {
		winnerID = s.parts[0].id
	} else if s.parts[1].wins > s.parts[0].wins {
		winnerID = s.parts[1].id
	}

	record := &models.Match{
		ID:            s.id,
		Player1ID:     s.parts[0].id,
		Player2ID:     s.parts[1].id,
		Status:        models.MatchStatusFinished,
		WinnerID:      winnerID,
		Player1Wins:   s.parts[0].wins,
		Player2Wins:   s.parts[1].wins,
		Rounds:        s.round,
		PointsAtStake: s.pointsAtStake,
		CreatedAt:     s.createdAt,
		FinishedAt:    s.svc.clk.Now(),
	}

	if err := s.svc.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: record,
	}); err != nil {
		log.Printf("[MATCH] %s: failed to persist match record: %v", s.id, err)
	}
}

// abort tears the session down on a terminal error. Pending timers are
// cancelled, both real sides get a match-aborted notification, and the
// session leaves the registry.
func (s *session) abort(reason string) {
	s.mu.Lock()
	if s.state == stateSettled || s.state == stateAborted {
		s.mu.Unlock()
		return
	}
	s.state = stateAborted
	s.cancelTimersLocked()
	s.notifyReal(EventMatchAborted, MatchAbortedPayload{
		MatchID: s.id,
		Reason:  reason,
	})
	s.mu.Unlock()

	s.svc.remove(s.id)
}

// teardown cancels pending work ahead of registry removal
func (s *session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimersLocked()
	if s.state != stateSettled {
		s.state = stateAborted
	}
}
