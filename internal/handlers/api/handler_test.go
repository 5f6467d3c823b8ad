package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/tallidarts/tally/internal/common/clock/mocks"
	uuidMocks "github.com/tallidarts/tally/internal/common/uuid/mocks"
	"github.com/tallidarts/tally/internal/models"
	playerRepo "github.com/tallidarts/tally/internal/repositories/player"
	playerRepoMocks "github.com/tallidarts/tally/internal/repositories/player/mocks"
	matchService "github.com/tallidarts/tally/internal/services/match"
	matchServiceMocks "github.com/tallidarts/tally/internal/services/match/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPlayerRepo   *playerRepoMocks.MockRepository
	mockMatchService *matchServiceMocks.MockService
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	router           http.Handler
	testNow          time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerRepoMocks.NewMockRepository(s.ctrl)
	s.mockMatchService = matchServiceMocks.NewMockService(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.testNow = time.Date(2026, 8, 30, 20, 0, 0, 0, time.UTC)

	h, err := New(&Config{
		PlayerRepo:    s.mockPlayerRepo,
		MatchService:  s.mockMatchService,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.router = h.Routes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) serve(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{PlayerRepo: s.mockPlayerRepo})
	s.Error(err)
}

func (s *HandlerTestSuite) TestHealthCheck() {
	rec := s.serve(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
}

func (s *HandlerTestSuite) TestCreatePlayer() {
	s.mockUUID.EXPECT().NewUUID().Return("new-player-id")
	s.mockClock.EXPECT().Now().Return(s.testNow)
	s.mockPlayerRepo.EXPECT().SavePlayer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, input *playerRepo.SavePlayerInput) error {
			s.Equal("new-player-id", input.Player.ID)
			s.Equal("Alice", input.Player.Name)
			s.Equal(models.GroupHouse, input.Player.Group)
			s.Equal(float64(models.DefaultElo), input.Player.Elo)
			s.Equal("The Lounge", input.Player.Club)
			return nil
		})

	rec := s.serve(http.MethodPost, "/api/v1/players", map[string]string{
		"name": "Alice",
		"club": "The Lounge",
	})
	s.Equal(http.StatusCreated, rec.Code)

	var p models.Player
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &p))
	s.Equal("new-player-id", p.ID)
}

func (s *HandlerTestSuite) TestCreatePlayerRequiresName() {
	rec := s.serve(http.MethodPost, "/api/v1/players", map[string]string{
		"group": "visitor",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCreatePlayerRejectsUnknownGroup() {
	rec := s.serve(http.MethodPost, "/api/v1/players", map[string]string{
		"name":  "Alice",
		"group": "league",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestListPlayers() {
	s.mockPlayerRepo.EXPECT().ListPlayers(gomock.Any(), &playerRepo.ListPlayersInput{}).Return(
		&playerRepo.ListPlayersOutput{
			Players: []*models.Player{
				models.NewPlayer("p1", "Alice", models.GroupHouse, s.testNow),
				models.NewPlayer("p2", "Bob", models.GroupHouse, s.testNow),
			},
		}, nil)

	rec := s.serve(http.MethodGet, "/api/v1/players", nil)
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Players []*models.Player `json:"players"`
		Count   int              `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(2, body.Count)
	s.Len(body.Players, 2)
}

func (s *HandlerTestSuite) TestListPlayersRejectsUnknownGroup() {
	rec := s.serve(http.MethodGet, "/api/v1/players?group=league", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetPlayerNotFound() {
	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{PlayerID: "missing"}).
		Return(nil, playerRepo.ErrPlayerNotFound)

	rec := s.serve(http.MethodGet, "/api/v1/players/missing", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestDeletePlayer() {
	s.mockPlayerRepo.EXPECT().DeletePlayer(gomock.Any(), &playerRepo.DeletePlayerInput{PlayerID: "p1"}).Return(nil)

	rec := s.serve(http.MethodDelete, "/api/v1/players/p1", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestRecordMatch() {
	s.mockMatchService.EXPECT().RecordMatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, input *matchService.RecordMatchInput) (*matchService.RecordMatchOutput, error) {
			s.Equal("p1", input.Player1ID)
			s.Equal(models.GameMode501, input.GameMode)
			s.True(input.IsRanked)
			return &matchService.RecordMatchOutput{
				Match: &models.MatchResult{ID: "match-id", GameMode: models.GameMode501},
			}, nil
		})

	rec := s.serve(http.MethodPost, "/api/v1/matches", map[string]interface{}{
		"player1_id":   "p1",
		"player2_id":   "p2",
		"winner_id":    "p1",
		"player1_legs": 2,
		"player2_legs": 0,
		"game_mode":    "501",
		"legs_to_win":  2,
		"is_ranked":    true,
	})
	s.Equal(http.StatusCreated, rec.Code)

	var m models.MatchResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &m))
	s.Equal("match-id", m.ID)
}

func (s *HandlerTestSuite) TestRecordMatchValidationFailure() {
	s.mockMatchService.EXPECT().RecordMatch(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrRankedCricket)

	rec := s.serve(http.MethodPost, "/api/v1/matches", map[string]interface{}{
		"player1_id": "p1",
		"player2_id": "p2",
		"winner_id":  "p1",
		"game_mode":  "cricket",
		"is_ranked":  true,
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestListMatchesWithLimit() {
	s.mockMatchService.EXPECT().ListMatches(gomock.Any(), &matchService.ListMatchesInput{Limit: 5}).Return(
		&matchService.ListMatchesOutput{
			Matches: []*models.MatchResult{{ID: "m1"}},
		}, nil)

	rec := s.serve(http.MethodGet, "/api/v1/matches?limit=5", nil)
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Matches []*models.MatchResult `json:"matches"`
		Count   int                   `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(1, body.Count)
}

func (s *HandlerTestSuite) TestDeleteMatch() {
	s.mockMatchService.EXPECT().DeleteMatch(gomock.Any(), &matchService.DeleteMatchInput{MatchID: "m1"}).Return(nil)

	rec := s.serve(http.MethodDelete, "/api/v1/matches/m1", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestGetCheckout() {
	rec := s.serve(http.MethodGet, "/api/v1/checkout/170", nil)
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Remaining int   `json:"remaining"`
		Darts     []int `json:"darts"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(170, body.Remaining)
	s.Equal([]int{60, 60, 50}, body.Darts)
}

func (s *HandlerTestSuite) TestGetCheckoutBogey() {
	rec := s.serve(http.MethodGet, "/api/v1/checkout/169", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestGetCheckoutRejectsNonInteger() {
	rec := s.serve(http.MethodGet, "/api/v1/checkout/ton-eighty", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestResetStats() {
	s.mockMatchService.EXPECT().ResetAllStats(gomock.Any()).Return(nil)

	rec := s.serve(http.MethodPost, "/api/v1/reset", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}
