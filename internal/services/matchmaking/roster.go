package matchmaking

import "github.com/clueduel/clueduel/internal/models"

// Roster is the fixed pool of simulated opponents used when no real
// player is queued inside the rating band. Profiles are never removed;
// the pool is inexhaustible.
var Roster = []models.BotProfile{
	{ID: "sim_1", Name: "Alex_Trivia", Rating: 1250},
	{ID: "sim_2", Name: "QuizMaster", Rating: 1180},
	{ID: "sim_3", Name: "BrainBox", Rating: 1320},
	{ID: "sim_4", Name: "KnowledgeSeeker", Rating: 1100},
	{ID: "sim_5", Name: "TriviaChamp", Rating: 1400},
	{ID: "sim_6", Name: "SmartPlayer", Rating: 1050},
}
