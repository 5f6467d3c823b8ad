package player

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tallidarts/tally/internal/models"
	"github.com/tallidarts/tally/internal/repositories/txn"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := models.NewPlayer("test-player-id", "Test Player", models.GroupHouse, s.testNow)
	player.Elo = 1032.5
	player.Wins = 3
	player.OneEighties = 2

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: player,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-player-id", retrieved.ID)
	s.Equal("Test Player", retrieved.Name)
	s.Equal(models.GroupHouse, retrieved.Group)
	s.Equal(1032.5, retrieved.Elo)
	s.Equal(float64(models.DefaultElo), retrieved.Elo501)
	s.Equal(3, retrieved.Wins)
	s.Equal(2, retrieved.OneEighties)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "missing",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestListPlayersOrderedByElo() {
	ratings := map[string]float64{
		"low":  960,
		"high": 1120,
		"mid":  1000,
	}

	for id, elo := range ratings {
		p := models.NewPlayer(id, id, models.GroupHouse, s.testNow)
		p.Elo = elo
		s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{
			Player: p,
		}))
	}

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 3)

	s.Equal("high", out.Players[0].ID)
	s.Equal("mid", out.Players[1].ID)
	s.Equal("low", out.Players[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListPlayersFiltersByGroup() {
	house := models.NewPlayer("house-1", "House", models.GroupHouse, s.testNow)
	visitor := models.NewPlayer("visitor-1", "Visitor", models.GroupVisitor, s.testNow)

	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: house}))
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: visitor}))

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{
		Group: models.GroupVisitor,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 1)
	s.Equal("visitor-1", out.Players[0].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveUpdatesEloIndex() {
	p := models.NewPlayer("climber", "Climber", models.GroupHouse, s.testNow)
	p.Elo = 900
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: p}))

	other := models.NewPlayer("steady", "Steady", models.GroupHouse, s.testNow)
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: other}))

	// Re-save with a higher rating moves the player up the index
	p.Elo = 1100
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: p}))

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 2)
	s.Equal("climber", out.Players[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayer() {
	p := models.NewPlayer("doomed", "Doomed", models.GroupVisitor, s.testNow)
	s.Require().NoError(s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: p}))

	err := s.repo.DeletePlayer(context.Background(), &DeletePlayerInput{
		PlayerID: "doomed",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "doomed"})
	s.ErrorIs(err, ErrPlayerNotFound)

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{})
	s.Require().NoError(err)
	s.Empty(out.Players)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayerNotFound() {
	err := s.repo.DeletePlayer(context.Background(), &DeletePlayerInput{
		PlayerID: "missing",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerOpCommitsThroughRunner() {
	runner, err := txn.NewRedis(&txn.Config{RedisClient: s.client})
	s.Require().NoError(err)

	p1 := models.NewPlayer("op-1", "Op One", models.GroupHouse, s.testNow)
	p2 := models.NewPlayer("op-2", "Op Two", models.GroupHouse, s.testNow)

	op1, err := s.repo.SavePlayerOp(p1)
	s.Require().NoError(err)
	op2, err := s.repo.SavePlayerOp(p2)
	s.Require().NoError(err)

	s.Require().NoError(runner.Run(context.Background(), op1, op2))

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{})
	s.Require().NoError(err)
	s.Len(out.Players, 2)
}
