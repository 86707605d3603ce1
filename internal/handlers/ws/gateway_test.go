package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/suite"

	"github.com/clueduel/clueduel/internal/common/uuid"
	"github.com/clueduel/clueduel/internal/models"
	"github.com/clueduel/clueduel/internal/services/match"
	"github.com/clueduel/clueduel/internal/services/matchmaking"
)

// fakeMatchService records calls and answers with canned outputs
type fakeMatchService struct {
	mu        sync.Mutex
	started   []*match.StartRoundInput
	submits   []*match.SubmitAnswerInput
	ended     []*match.EndMatchInput
	submitErr error
}

func (f *fakeMatchService) CreateMatch(ctx context.Context, input *match.CreateMatchInput) (*match.CreateMatchOutput, error) {
	return &match.CreateMatchOutput{MatchID: "m-1", PointsAtStake: 50}, nil
}

func (f *fakeMatchService) StartRound(ctx context.Context, input *match.StartRoundInput) (*match.StartRoundOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, input)
	return &match.StartRoundOutput{Round: 1}, nil
}

func (f *fakeMatchService) SubmitAnswer(ctx context.Context, input *match.SubmitAnswerInput) (*match.SubmitAnswerOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits = append(f.submits, input)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &match.SubmitAnswerOutput{Accepted: true}, nil
}

func (f *fakeMatchService) EndMatch(ctx context.Context, input *match.EndMatchInput) (*match.EndMatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ended = append(f.ended, input)
	return &match.EndMatchOutput{Removed: true}, nil
}

func (f *fakeMatchService) lastSubmit() *match.SubmitAnswerInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.submits) == 0 {
		return nil
	}
	return f.submits[len(f.submits)-1]
}

// fakeMatchmakingService records joins and keeps the notifier so the
// test can push events back through the connection
type fakeMatchmakingService struct {
	mu       sync.Mutex
	joins    []*matchmaking.JoinInput
	cancels  []*matchmaking.CancelInput
	notifier matchmaking.Notifier
}

func (f *fakeMatchmakingService) Join(ctx context.Context, input *matchmaking.JoinInput) (*matchmaking.JoinOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joins = append(f.joins, input)
	f.notifier = input.Notifier
	return &matchmaking.JoinOutput{Rating: models.DefaultRating}, nil
}

func (f *fakeMatchmakingService) Cancel(ctx context.Context, input *matchmaking.CancelInput) (*matchmaking.CancelOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels = append(f.cancels, input)
	return &matchmaking.CancelOutput{Cancelled: true}, nil
}

func (f *fakeMatchmakingService) lastJoin() *matchmaking.JoinInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.joins) == 0 {
		return nil
	}
	return f.joins[len(f.joins)-1]
}

func (f *fakeMatchmakingService) cancelCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cancels)
}

type GatewayTestSuite struct {
	suite.Suite

	matches *fakeMatchService
	pool    *fakeMatchmakingService
	server  *httptest.Server
	conn    *websocket.Conn
}

func (s *GatewayTestSuite) SetupTest() {
	s.matches = &fakeMatchService{}
	s.pool = &fakeMatchmakingService{}

	gw, err := New(&Config{
		MatchService:       s.matches,
		MatchmakingService: s.pool,
		UUIDGenerator:      &uuid.DefaultUUID{},
	})
	s.Require().NoError(err)

	router := httprouter.New()
	router.GET("/ws", gw.ServeWS)
	s.server = httptest.NewServer(router)

	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.conn = conn
}

func (s *GatewayTestSuite) TearDownTest() {
	s.conn.Close()
	s.server.Close()
}

func (s *GatewayTestSuite) sendEvent(event string, payload any) {
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)
	s.Require().NoError(s.conn.WriteJSON(Envelope{Event: event, Data: raw}))
}

func (s *GatewayTestSuite) readEvent() Envelope {
	s.Require().NoError(s.conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var env Envelope
	s.Require().NoError(s.conn.ReadJSON(&env))
	return env
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilMatchService, err)

	_, err = New(&Config{MatchService: s.matches})
	s.Equal(ErrNilMatchmakingService, err)
}

// Joining binds the supplied player identity to the connection and
// routes service events back over the socket.
func (s *GatewayTestSuite) TestJoinRoundTrip() {
	s.sendEvent(EventJoinMatchmaking, JoinMatchmakingRequest{
		PlayerID: "p1",
		Name:     "Neo",
	})

	s.Require().Eventually(func() bool {
		return s.pool.lastJoin() != nil
	}, 2*time.Second, 5*time.Millisecond)

	join := s.pool.lastJoin()
	s.Equal("p1", join.PlayerID)
	s.Equal("Neo", join.PlayerName)
	s.Require().NotNil(join.Notifier)

	// A service-side event flows out through the connection
	join.Notifier.Notify(matchmaking.EventMatchmakingStatus, matchmaking.StatusPayload{
		Status:  "searching",
		Message: "Finding opponent...",
	})

	env := s.readEvent()
	s.Equal(matchmaking.EventMatchmakingStatus, env.Event)

	var status matchmaking.StatusPayload
	s.Require().NoError(json.Unmarshal(env.Data, &status))
	s.Equal("searching", status.Status)
}

// Answers submitted on the socket carry the connection's identity.
func (s *GatewayTestSuite) TestSubmitAnswerCarriesIdentity() {
	s.sendEvent(EventJoinMatchmaking, JoinMatchmakingRequest{PlayerID: "p1", Name: "Neo"})
	s.sendEvent(EventSubmitAnswer, SubmitAnswerRequest{
		MatchID:  "m-1",
		Answer:   models.LabelB,
		TimeLeft: 21,
	})

	s.Require().Eventually(func() bool {
		return s.matches.lastSubmit() != nil
	}, 2*time.Second, 5*time.Millisecond)

	submit := s.matches.lastSubmit()
	s.Equal("m-1", submit.MatchID)
	s.Equal("p1", submit.PlayerID)
	s.Equal(models.LabelB, submit.Answer)
	s.Equal(21, submit.TimeLeft)
}

func (s *GatewayTestSuite) TestStartGameAndEndMatchDispatch() {
	s.sendEvent(EventStartGame, StartGameRequest{MatchID: "m-1"})
	s.sendEvent(EventEndMatch, EndMatchRequest{MatchID: "m-1"})

	s.Require().Eventually(func() bool {
		s.matches.mu.Lock()
		defer s.matches.mu.Unlock()
		return len(s.matches.started) == 1 && len(s.matches.ended) == 1
	}, 2*time.Second, 5*time.Millisecond)

	s.matches.mu.Lock()
	defer s.matches.mu.Unlock()
	s.Equal("m-1", s.matches.started[0].MatchID)
	s.Equal("m-1", s.matches.ended[0].MatchID)
}

func (s *GatewayTestSuite) TestUnknownEventRejected() {
	s.sendEvent("no-such-event", struct{}{})

	env := s.readEvent()
	s.Equal(EventError, env.Event)

	var payload ErrorPayload
	s.Require().NoError(json.Unmarshal(env.Data, &payload))
	s.Equal("no-such-event", payload.Event)
}

// A duplicate or late submission is dropped without an error echo; the
// next frame the client sees is for the following request.
func (s *GatewayTestSuite) TestDroppedSubmissionIsSilent() {
	s.matches.mu.Lock()
	s.matches.submitErr = match.ErrAlreadyAnswered
	s.matches.mu.Unlock()

	s.sendEvent(EventSubmitAnswer, SubmitAnswerRequest{
		MatchID: "m-1",
		Answer:  models.LabelC,
	})
	s.sendEvent("no-such-event", struct{}{})

	// Frames are ordered: the first one back must belong to the
	// unknown event, not the dropped submission
	env := s.readEvent()
	s.Equal(EventError, env.Event)

	var payload ErrorPayload
	s.Require().NoError(json.Unmarshal(env.Data, &payload))
	s.Equal("no-such-event", payload.Event)
}

// Closing the socket pulls the player out of the matchmaking pool.
func (s *GatewayTestSuite) TestDisconnectCancelsMatchmaking() {
	s.sendEvent(EventJoinMatchmaking, JoinMatchmakingRequest{PlayerID: "p1", Name: "Neo"})

	s.Require().Eventually(func() bool {
		return s.pool.lastJoin() != nil
	}, 2*time.Second, 5*time.Millisecond)

	s.conn.Close()

	s.Require().Eventually(func() bool {
		return s.pool.cancelCount() > 0
	}, 2*time.Second, 5*time.Millisecond)
}
