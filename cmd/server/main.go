package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"

	"github.com/clueduel/clueduel/internal/common/clock"
	"github.com/clueduel/clueduel/internal/common/uuid"
	"github.com/clueduel/clueduel/internal/handlers/ws"
	matchRepo "github.com/clueduel/clueduel/internal/repositories/match"
	playerRepo "github.com/clueduel/clueduel/internal/repositories/player"
	questionRepo "github.com/clueduel/clueduel/internal/repositories/question"
	"github.com/clueduel/clueduel/internal/rng"
	matchService "github.com/clueduel/clueduel/internal/services/match"
	matchmakingService "github.com/clueduel/clueduel/internal/services/matchmaking"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	questions, err := questionRepo.NewRedis(&questionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create question repository: %v", err)
	}

	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create match repository: %v", err)
	}

	// Seed the starter question set on an empty store
	if err := questions.Seed(ctx, &questionRepo.SeedInput{
		Questions: questionRepo.StarterQuestions(),
	}); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	// Shared infrastructure
	clk := &clock.DefaultClock{}
	uuider := uuid.New()
	random := rng.New(&rng.Config{})

	// Initialize match service
	matchSvc, err := matchService.New(&matchService.Config{
		QuestionRepo:  questions,
		PlayerRepo:    players,
		MatchRepo:     matches,
		Clock:         clk,
		UUIDGenerator: uuider,
		Random:        random,
	})
	if err != nil {
		log.Fatalf("Failed to create match service: %v", err)
	}

	// Initialize matchmaking service
	matchmakingSvc, err := matchmakingService.New(&matchmakingService.Config{
		PlayerRepo:   players,
		MatchService: matchSvc,
		Clock:        clk,
		Random:       random,
	})
	if err != nil {
		log.Fatalf("Failed to create matchmaking service: %v", err)
	}

	// Initialize websocket gateway
	gateway, err := ws.New(&ws.Config{
		MatchService:       matchSvc,
		MatchmakingService: matchmakingSvc,
		UUIDGenerator:      uuider,
	})
	if err != nil {
		log.Fatalf("Failed to create websocket gateway: %v", err)
	}

	router := httprouter.New()
	router.GET("/ws", gateway.ServeWS)
	router.GET("/healthz", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.GET("/api/leaderboard", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		out, err := players.GetLeaderboard(r.Context(), &playerRepo.GetLeaderboardInput{})
		if err != nil {
			http.Error(w, "failed to load leaderboard", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out.Players); err != nil {
			log.Printf("Failed to encode leaderboard: %v", err)
		}
	})

	addr := getEnv("LISTEN_ADDR", ":8080")
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
