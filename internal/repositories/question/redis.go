package question

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
	questionKeyPrefix = "question:"

	// Set of all question IDs, used for uniform random selection
	questionIDsKey = "questions"
)

// ErrNoQuestions is returned when the question set is empty
var ErrNoQuestions = errors.New("no questions available")

// Config holds configuration for the Redis question repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed question repository
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

// SaveQuestion persists a question to Redis
func (r *redisRepository) SaveQuestion(ctx context.Context, input *SaveQuestionInput) error {
	if input == nil || input.Question == nil {
		return errors.New("input and question cannot be nil")
	}

	q := input.Question

	if q.ID == "" {
		return errors.New("question ID cannot be empty")
	}
	if len(q.Clues) != 3 {
		return errors.New("question must have exactly three clues")
	}
	if len(q.Answers) != 4 {
		return errors.New("question must have exactly four answers")
	}
	if !q.Correct.Valid() {
		return errors.New("question correct label must be one of A-D")
	}

	questionJSON, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}

	// Store the record and index its ID together
	pipe := r.client.Pipeline()

	questionKey := fmt.Sprintf("%s%s", questionKeyPrefix, q.ID)
	pipe.Set(ctx, questionKey, questionJSON, 0)
	pipe.SAdd(ctx, questionIDsKey, q.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	return nil
}

// GetRandomQuestion returns one question selected uniformly at random
func (r *redisRepository) GetRandomQuestion(ctx context.Context) (*models.Question, error) {
	questionID, err := r.client.SRandMember(ctx, questionIDsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoQuestions
		}
		return nil, fmt.Errorf("failed to pick random question: %w", err)
	}

	questionKey := fmt.Sprintf("%s%s", questionKeyPrefix, questionID)
	questionJSON, err := r.client.Get(ctx, questionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoQuestions
		}
		return nil, fmt.Errorf("failed to get question %s: %w", questionID, err)
	}

	var q models.Question
	if err := json.Unmarshal([]byte(questionJSON), &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question %s: %w", questionID, err)
	}

	return &q, nil
}

// Seed stores the given questions if the repository is empty
func (r *redisRepository) Seed(ctx context.Context, input *SeedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	count, err := r.client.SCard(ctx, questionIDsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, q := range input.Questions {
		if err := r.SaveQuestion(ctx, &SaveQuestionInput{Question: q}); err != nil {
			return err
		}
	}

	return nil
}
