package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clueduel/clueduel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"

	// Sorted set of player IDs scored by rating
	leaderboardKey = "leaderboard:rating"

	defaultLeaderboardLimit = 10
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayer persists a player to Redis and keeps the rating
// leaderboard in step
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player

	// Ensure the player has an ID
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	// Marshal the player to JSON
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	// Save the profile and the leaderboard entry together
	pipe := r.client.Pipeline()

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	pipe.Set(ctx, playerKey, playerJSON, 0)
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(player.Rating),
		Member: player.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// Get the player from Redis
	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// Unmarshal the player from JSON
	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetOrCreatePlayer retrieves a player, creating a default record when
// the ID is unknown
func (r *redisRepository) GetOrCreatePlayer(ctx context.Context, input *GetOrCreatePlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	player, err := r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err == nil {
		// Keep the display name current
		if input.Name != "" && player.Name != input.Name {
			player.Name = input.Name
			if err := r.SavePlayer(ctx, &SavePlayerInput{Player: player}); err != nil {
				return nil, err
			}
		}
		return player, nil
	}

	if !errors.Is(err, ErrPlayerNotFound) {
		return nil, err
	}

	player = &models.Player{
		ID:        input.PlayerID,
		Name:      input.Name,
		Rating:    models.DefaultRating,
		Points:    models.DefaultPoints,
		CreatedAt: time.Now(),
	}

	if err := r.SavePlayer(ctx, &SavePlayerInput{Player: player}); err != nil {
		return nil, err
	}

	return player, nil
}

// GetLeaderboard returns the top players by rating
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := defaultLeaderboardLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	playerIDs, err := r.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard members: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetLeaderboardOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Fetch all profiles in one pipeline
	pipe := r.client.Pipeline()
	playerCommands := make([]*redis.StringCmd, 0, len(playerIDs))

	for _, playerID := range playerIDs {
		playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
		playerCommands = append(playerCommands, pipe.Get(ctx, playerKey))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get leaderboard players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Profile deleted between the range and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}

		players = append(players, &player)
	}

	return &GetLeaderboardOutput{
		Players: players,
	}, nil
}
