package question

import (
	"github.com/google/uuid"

	"github.com/clueduel/clueduel/internal/models"
)

// StarterQuestions returns the built-in question set used to seed an
// empty repository.
func StarterQuestions() []*models.Question {
	return []*models.Question{
		{
			ID:       uuid.New().String(),
			Category: "Science",
			Clues: []string{
				"This element has the atomic number 1",
				"It's the most abundant element in the universe",
				"It's the fuel that powers the sun",
			},
			Answers: []string{"Hydrogen", "Helium", "Oxygen", "Carbon"},
			Correct: models.LabelA,
		},
		{
			ID:       uuid.New().String(),
			Category: "History",
			Clues: []string{
				"This war lasted from 1939 to 1945",
				"It involved most of the world's nations",
				"It ended with the dropping of atomic bombs",
			},
			Answers: []string{"World War I", "World War II", "Korean War", "Vietnam War"},
			Correct: models.LabelB,
		},
		{
			ID:       uuid.New().String(),
			Category: "Geography",
			Clues: []string{
				"This is the largest continent by area",
				"It contains both the highest and lowest points on Earth",
				"It's home to Mount Everest",
			},
			Answers: []string{"Africa", "North America", "Asia", "Europe"},
			Correct: models.LabelC,
		},
		{
			ID:       uuid.New().String(),
			Category: "Science",
			Clues: []string{
				"This is often called the universal speed limit",
				"Nothing with mass can reach it",
				"It's approximately 300,000 km/s",
			},
			Answers: []string{"299,792,458 m/s", "300,000 m/s", "150,000 m/s", "600,000 m/s"},
			Correct: models.LabelA,
		},
	}
}
