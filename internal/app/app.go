package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/config"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/controller"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/repository"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/task"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/database"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/logger"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/monitoring"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/security"
	"github.com/yaxyobekuz/ielts-mock-backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	queue    *task.RedisQueue
	services *services
}

type repositories struct {
	user       *repository.UserRepository
	test       *repository.TestRepository
	part       *repository.PartRepository
	section    *repository.SectionRepository
	link       *repository.LinkRepository
	submission *repository.SubmissionRepository
	result     *repository.ResultRepository
	template   *repository.TemplateRepository
	audio      *repository.AudioRepository
	stats      *repository.StatsRepository
}

type services struct {
	auth       *service.AuthService
	stats      *service.StatsService
	test       *service.TestService
	part       *service.PartService
	section    *service.SectionService
	link       *service.LinkService
	submission *service.SubmissionService
	result     *service.ResultService
	template   *service.TemplateService
	audio      *service.AudioService
	storage    service.StorageProvider
}

type controllers struct {
	auth       *controller.AuthController
	test       *controller.TestController
	part       *controller.PartController
	section    *controller.SectionController
	link       *controller.LinkController
	submission *controller.SubmissionController
	result     *controller.ResultController
	stats      *controller.StatsController
	template   *controller.TemplateController
	audio      *controller.AudioController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		test:       repository.NewTestRepository(db),
		part:       repository.NewPartRepository(db),
		section:    repository.NewSectionRepository(db),
		link:       repository.NewLinkRepository(db),
		submission: repository.NewSubmissionRepository(db),
		result:     repository.NewResultRepository(db),
		template:   repository.NewTemplateRepository(db),
		audio:      repository.NewAudioRepository(db),
		stats:      repository.NewStatsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, queue task.Queue) (*services, error) {
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.stats = service.NewStatsService(repos.stats, repos.user, repos.result, repos.test, repos.submission, repos.link, repos.template, queue)
	s.test = service.NewTestService(repos.test, repos.part, s.stats)
	s.part = service.NewPartService(repos.part, repos.test)
	s.section = service.NewSectionService(repos.section, repos.part)
	s.link = service.NewLinkService(repos.link, repos.test, s.stats)
	s.submission = service.NewSubmissionService(repos.submission, repos.link, repos.test, s.link, s.stats)
	s.result = service.NewResultService(repos.result, repos.submission, repos.part, repos.test, s.stats)
	s.template = service.NewTemplateService(repos.template, s.stats)
	s.audio = service.NewAudioService(repos.audio, repos.test, storage)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		test:       controller.NewTestController(s.test, s.auth),
		part:       controller.NewPartController(s.part, s.auth),
		section:    controller.NewSectionController(s.section, s.auth),
		link:       controller.NewLinkController(s.link, s.auth),
		submission: controller.NewSubmissionController(s.submission, s.auth),
		result:     controller.NewResultController(s.result, s.auth),
		stats:      controller.NewStatsController(s.stats, s.auth),
		template:   controller.NewTemplateController(s.template, s.auth),
		audio:      controller.NewAudioController(s.audio, s.auth),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.Limits.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.Limits.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	app.queue = task.NewRedisQueue(rdb, cfg.Queue.Shards, cfg.Queue.MaxAttempts)

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, app.queue)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	services.stats.RegisterHandlers(app.queue)

	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ielts-mock-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ReloadConfig applies the hot-swappable parts of a freshly loaded
// configuration. Middlewares read through the shared pointer, so rotated
// JWT secrets take effect on the next request.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config.JWT = cfg.JWT
	a.Config.Limits = cfg.Limits
	logger.Log.Info("configuration reloaded")
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	a.queue.Start()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Drain in-flight stats tasks before the process exits.
	a.queue.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
