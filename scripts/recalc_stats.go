// Rebuilds lifetime statistics for every user from the source tables.
//
// The API exposes the same operation per user (POST /api/stats/users/:id/recalculate);
// this script walks all users at once, for use after a manual data import
// or a restore from backup.
//
// Usage: go run scripts/recalc_stats.go
package main

import (
	"log"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/config"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/task"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/database"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	stats := service.NewStatsService(
		repository.NewStatsRepository(db),
		userRepo,
		repository.NewResultRepository(db),
		repository.NewTestRepository(db),
		repository.NewSubmissionRepository(db),
		repository.NewLinkRepository(db),
		repository.NewTemplateRepository(db),
		task.NewMemoryQueue(cfg.Queue.MaxAttempts),
	)

	ids, err := userRepo.FindAllIDs()
	if err != nil {
		log.Fatalf("failed to list users: %v", err)
	}

	log.Printf("recalculating statistics for %d users...", len(ids))
	failed := 0
	for _, id := range ids {
		if _, err := stats.RecalculateUserStats(id); err != nil {
			log.Printf("user %d: %v", id, err)
			failed++
		}
	}
	log.Printf("done, %d users recalculated, %d failed", len(ids)-failed, failed)
}
