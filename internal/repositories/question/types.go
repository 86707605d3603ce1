package question

import "github.com/clueduel/clueduel/internal/models"

// SaveQuestionInput contains parameters for saving a question
type SaveQuestionInput struct {
	Question *models.Question
}

// SeedInput contains the starter question set
type SeedInput struct {
	Questions []*models.Question
}
