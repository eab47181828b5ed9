// @title IELTS Mock Exam API
// @version 1.0
// @description Backend for authoring, delivering and grading IELTS mock exams.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/app"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/config"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/configwatcher"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
