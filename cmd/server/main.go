package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	identityapp "github.com/portfolio/backend/internal/application/identity"
	"github.com/portfolio/backend/internal/infrastructure/auth"
	"github.com/portfolio/backend/internal/infrastructure/config"
	"github.com/portfolio/backend/internal/infrastructure/logger"
	"github.com/portfolio/backend/internal/infrastructure/persistence"
	"github.com/portfolio/backend/internal/infrastructure/storage"
	"github.com/portfolio/backend/internal/interfaces/http/handler"
	"github.com/portfolio/backend/internal/interfaces/http/middleware"
	"github.com/portfolio/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting portfolio backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize file storage
	fileStore, err := storage.NewLocalStore(cfg.Upload.Dir, storage.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// Initialize repositories
	heroRepo := persistence.NewGormHeroRepository(db.DB)
	aboutRepo := persistence.NewGormAboutRepository(db.DB)
	skillRepo := persistence.NewGormSkillRepository(db.DB)
	experienceRepo := persistence.NewGormExperienceRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	educationRepo := persistence.NewGormEducationRepository(db.DB)
	certificationRepo := persistence.NewGormCertificationRepository(db.DB)
	footerRepo := persistence.NewGormFooterRepository(db.DB)
	adminRepo := persistence.NewGormAdminRepository(db.DB)

	// Initialize application services
	imagePolicy := contentapp.ImagePolicy(cfg.Upload.MaxImageBytes)
	pdfPolicy := contentapp.PDFPolicy(cfg.Upload.MaxPDFBytes)

	heroService := contentapp.NewHeroService(heroRepo, fileStore, imagePolicy, log)
	aboutService := contentapp.NewAboutService(aboutRepo, log)
	skillService := contentapp.NewSkillService(skillRepo, fileStore, imagePolicy, log)
	experienceService := contentapp.NewExperienceService(experienceRepo, log)
	projectService := contentapp.NewProjectService(projectRepo, fileStore, imagePolicy, log)
	educationService := contentapp.NewEducationService(educationRepo, log)
	certificationService := contentapp.NewCertificationService(certificationRepo, log)
	footerService := contentapp.NewFooterService(footerRepo, fileStore, pdfPolicy, log)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(adminRepo, jwtService, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Stored uploads are served directly
	engine.Static("/uploads", cfg.Upload.Dir)

	authRequired := middleware.RequireAuth(jwtService, log)

	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewHeroHandler(heroService)).
		Register(handler.NewAboutHandler(aboutService)).
		Register(handler.NewSkillHandler(skillService, authRequired)).
		Register(handler.NewExperienceHandler(experienceService, authRequired)).
		Register(handler.NewProjectHandler(projectService, authRequired)).
		Register(handler.NewEducationHandler(educationService, authRequired)).
		Register(handler.NewCertificationHandler(certificationService, authRequired)).
		Register(handler.NewFooterHandler(footerService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
