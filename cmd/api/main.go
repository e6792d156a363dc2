package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/migration"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/routes"
	"github.com/portfolio/backend/internal/service"
	pkgcache "github.com/portfolio/backend/pkg/cache"
	"github.com/portfolio/backend/pkg/geoip"
	pkggithub "github.com/portfolio/backend/pkg/github"
	pkgjwt "github.com/portfolio/backend/pkg/jwt"
	pkglogger "github.com/portfolio/backend/pkg/logger"
	pkgredis "github.com/portfolio/backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Portfolio website backend: content, contact, GitHub activity and visitor analytics
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin secret or session token. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		pkglogger.Warn("Migration warning: %v", err)
	}

	// Redis (optional; cache and rate limiting degrade without it)
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	// External collaborators
	geoResolver := geoip.NewHTTPResolver(geoip.Config{
		PrimaryURL:   cfg.Geo.PrimaryURL,
		SecondaryURL: cfg.Geo.SecondaryURL,
		SecondaryKey: cfg.Geo.SecondaryKey,
		FallbackIP:   cfg.Geo.FallbackIP,
		Timeout:      cfg.Geo.Timeout.Std(),
	})
	githubClient := pkggithub.NewClient(cfg.GitHub.Token)

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	contactRepo := repository.NewContactRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	// Services
	jwtManager := pkgjwt.NewManager(cfg.Admin.JWTSecret, cfg.Admin.JWTTTL.Std())
	authService := service.NewAuthService(cfg.Admin.Token, jwtManager)
	profileService := service.NewProfileService(profileRepo)
	projectService := service.NewProjectService(projectRepo)
	skillService := service.NewSkillService(skillRepo)
	resumeService := service.NewResumeService(experienceRepo, educationRepo)
	contactService := service.NewContactService(contactRepo, nil)
	githubService := service.NewGitHubService(githubClient, cacheService, cfg.GitHub.Username, cfg.GitHub.CacheTTL.Std())
	trackingService := service.NewTrackingService(trackingRepo, geoResolver, service.TrackingConfig{
		Enabled:         cfg.Tracking.Enabled,
		VisitorWindow:   cfg.Tracking.VisitorWindow,
		ClickWindow:     cfg.Tracking.ClickWindow,
		AdminPathPrefix: cfg.Tracking.AdminPathPrefix,
	})
	statsService := service.NewStatsService(trackingRepo, cacheService)

	// Handlers
	profileHandler := handler.NewProfileHandler(profileService)
	projectHandler := handler.NewProjectHandler(projectService)
	skillHandler := handler.NewSkillHandler(skillService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	contactHandler := handler.NewContactHandler(contactService)
	githubHandler := handler.NewGitHubHandler(githubService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	statsHandler := handler.NewStatsHandler(statsService)
	authHandler := handler.NewAuthHandler(authService)

	// Router
	if env != "local" && env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rateLimit := middleware.DefaultRateLimitConfig()
	if cfg.Tracking.RequestsPerMinute > 0 {
		rateLimit.RequestsPerMinute = cfg.Tracking.RequestsPerMinute
	}

	routes.Setup(
		router,
		profileHandler,
		projectHandler,
		skillHandler,
		resumeHandler,
		contactHandler,
		githubHandler,
		trackingHandler,
		statsHandler,
		authHandler,
		authService,
		redisClient,
		rateLimit,
	)

	// Serve with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		pkglogger.Info("Listening on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	pkglogger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		pkglogger.Error("Forced shutdown: %v", err)
	}
}

// initDB opens the MySQL connection with conservative pool settings
func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
