package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gamehubHTTP "gamehub/internal/controller/http"
	"gamehub/internal/jobs"
	"gamehub/internal/repo/persistent"
	"gamehub/internal/usecase"
	"gamehub/pkg/cache"
	"gamehub/pkg/config"
	"gamehub/pkg/database"
	"gamehub/pkg/google"
	"gamehub/pkg/jwt"
	"gamehub/pkg/logger"
	"gamehub/pkg/middleware"
	"gamehub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "gamehub/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
	stopJobs    context.CancelFunc
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis is optional: the token-version cache degrades to DB lookups
		// and the rate limiter switches off.
		log.Warn("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	imageRepo := persistent.NewImageRepository(a.db)
	tempUploadRepo := persistent.NewTempUploadRepository(a.db)
	auditRepo := persistent.NewImpersonationLogRepository(a.db)

	tokenVersions := cache.NewTokenVersions(a.redisClient)
	googleVerifier := google.NewVerifier(a.cfg.GoogleClientID)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, imageRepo, a.jwtService, googleVerifier, a.log)
	userUseCase := usecase.NewUserUseCase(userRepo, imageRepo, a.s3Client, a.log)
	adminUseCase := usecase.NewAdminUseCase(userRepo, imageRepo, tokenVersions, a.log)
	superAdminUseCase := usecase.NewSuperAdminUseCase(userRepo, auditRepo, a.jwtService, tokenVersions, a.log)
	uploadUseCase := usecase.NewUploadUseCase(tempUploadRepo, a.s3Client, a.log)

	// HTTP handlers
	handlers := gamehubHTTP.Handlers{
		Auth:       gamehubHTTP.NewAuthHandler(authUseCase, a.jwtService),
		User:       gamehubHTTP.NewUserHandler(userUseCase),
		Admin:      gamehubHTTP.NewAdminHandler(adminUseCase),
		SuperAdmin: gamehubHTTP.NewSuperAdminHandler(superAdminUseCase, a.jwtService),
		Upload:     gamehubHTTP.NewUploadHandler(uploadUseCase),
	}
	authMiddleware := gamehubHTTP.NewAuthMiddleware(a.jwtService, tokenVersions, userRepo, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var rateLimit gin.HandlerFunc
	if a.redisClient != nil {
		rateLimit = middleware.RateLimitMiddleware(a.redisClient, 20, time.Minute)
	}
	gamehubHTTP.RegisterRoutes(r, handlers, authMiddleware, rateLimit)

	// Background trash purge
	jobCtx, stopJobs := context.WithCancel(context.Background())
	a.stopJobs = stopJobs
	cleanup := jobs.NewCleanup(userRepo, a.cfg.CleanupInterval, a.cfg.TrashRetention, a.log)
	go cleanup.Run(jobCtx)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.stopJobs != nil {
		a.stopJobs()
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing redis: %v", err)
		}
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	a.log.Info("Server exited")
	return nil
}
