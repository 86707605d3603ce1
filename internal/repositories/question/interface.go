package question

import (
	"context"

	"github.com/clueduel/clueduel/internal/models"
)

// Repository defines the interface for question storage and selection
type Repository interface {
	// SaveQuestion persists a question
	SaveQuestion(ctx context.Context, input *SaveQuestionInput) error

	// GetRandomQuestion returns one question selected uniformly at random
	GetRandomQuestion(ctx context.Context) (*models.Question, error)

	// Seed stores the given questions if the repository is empty
	Seed(ctx context.Context, input *SeedInput) error
}
