package rng

import (
	"math/rand"
	"sync"
	"time"

	"github.com/clueduel/clueduel/internal/models"
)

// Source provides the randomness the match engine depends on: pairing
// picks, simulated-answer delays, accuracy draws, and fallback answers.
// Safe for concurrent use; timer callbacks from many sessions share one
// source.
type Source struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n)
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}

// Float64 returns a uniform value in [0.0, 1.0)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Float64()
}

// Between returns a uniform duration in [min, max]
func (s *Source) Between(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + time.Duration(s.random.Int63n(int64(max-min)+1))
}

// Label returns a uniformly random answer label
func (s *Source) Label() models.Label {
	return models.Labels[s.Intn(len(models.Labels))]
}

// WrongLabel returns a uniformly random label other than correct
func (s *Source) WrongLabel(correct models.Label) models.Label {
	wrong := make([]models.Label, 0, len(models.Labels)-1)
	for _, l := range models.Labels {
		if l != correct {
			wrong = append(wrong, l)
		}
	}
	return wrong[s.Intn(len(wrong))]
}
