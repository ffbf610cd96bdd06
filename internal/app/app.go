package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vsl_edu_backend/internal/config"
	"vsl_edu_backend/internal/controller"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/service"
	"vsl_edu_backend/pkg/configwatcher"
	"vsl_edu_backend/pkg/database"
	"vsl_edu_backend/pkg/logger"
	"vsl_edu_backend/pkg/monitoring"
	"vsl_edu_backend/pkg/security"
	"vsl_edu_backend/pkg/tracing"

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
}

type repositories struct {
	user     *repository.UserRepository
	course   *repository.CourseRepository
	lesson   *repository.LessonRepository
	video    *repository.VideoRepository
	quiz     *repository.QuizRepository
	progress *repository.ProgressRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	storage  *service.StorageService
	course   *service.CourseService
	lesson   *service.LessonService
	video    *service.VideoService
	quizSet  *service.QuizSetService
	grading  *service.GradingService
	progress *service.ProgressService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	course   *controller.CourseController
	lesson   *controller.LessonController
	video    *controller.VideoController
	quiz     *controller.QuizController
	progress *controller.ProgressController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		course:   repository.NewCourseRepository(db),
		lesson:   repository.NewLessonRepository(db),
		video:    repository.NewVideoRepository(db),
		quiz:     repository.NewQuizRepository(db),
		progress: repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course)
	s.quizSet = service.NewQuizSetService(repos.quiz, repos.lesson, rdb, db)
	s.lesson = service.NewLessonService(repos.lesson, repos.video, repos.quiz, s.quizSet)
	s.video = service.NewVideoService(repos.video, repos.lesson, s.storage)
	s.grading = service.NewGradingService(s.quizSet, repos.quiz)
	s.progress = service.NewProgressService(repos.progress, repos.lesson)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		course:   controller.NewCourseController(s.course),
		lesson:   controller.NewLessonController(s.lesson),
		video:    controller.NewVideoController(s.video),
		quiz:     controller.NewQuizController(s.quizSet, s.grading),
		progress: controller.NewProgressController(s.progress),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The quiz set cache degrades to plain DB reads without Redis.
		logger.Log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("vsl-learning-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, os.ModePerm)
		}
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, app.applyConfig)

	return app
}

// applyConfig swaps in a reloaded config. Middleware holds a pointer
// to the shared Config, so JWT and rate limit changes take effect on
// the next request. Command-line flags survive the reload.
func (a *App) applyConfig(newCfg interface{}) {
	updated, ok := newCfg.(*config.Config)
	if !ok {
		return
	}
	updated.ForceMigrate = a.Config.ForceMigrate
	updated.MigrateOnly = a.Config.MigrateOnly
	*a.Config = *updated
	logger.Log.Info("Config reloaded")
}

func (a *App) Run() {
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
