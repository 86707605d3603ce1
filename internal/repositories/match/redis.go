package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clueduel/clueduel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix         = "match:"
	playerMatchesKeyPrefix = "player_matches:"

	// Per-player history is trimmed to this many entries
	historyLimit = 50

	defaultMatchesLimit = 10
)

// ErrMatchNotFound is returned when a match record is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveMatch persists a finished match record and indexes it under both
// participants
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	m := input.Match

	if m.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, m.ID)
	pipe.Set(ctx, matchKey, matchJSON, 0)

	for _, playerID := range []string{m.Player1ID, m.Player2ID} {
		if playerID == "" {
			continue
		}
		historyKey := fmt.Sprintf("%s%s", playerMatchesKeyPrefix, playerID)
		pipe.LPush(ctx, historyKey, m.ID)
		pipe.LTrim(ctx, historyKey, 0, historyLimit-1)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match record by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var m models.Match
	if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &m, nil
}

// GetPlayerMatches returns a player's most recent matches, newest first
func (r *redisRepository) GetPlayerMatches(ctx context.Context, input *GetPlayerMatchesInput) (*GetPlayerMatchesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	limit := defaultMatchesLimit
	if input.Limit > 0 {
		limit = input.Limit
	}

	historyKey := fmt.Sprintf("%s%s", playerMatchesKeyPrefix, input.PlayerID)
	matchIDs, err := r.client.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match history: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		m, err := r.GetMatch(ctx, &GetMatchInput{MatchID: matchID})
		if err != nil {
			if errors.Is(err, ErrMatchNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, m)
	}

	return &GetPlayerMatchesOutput{
		Matches: matches,
	}, nil
}
