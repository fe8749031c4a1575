package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fantera.backend/internal/config"
	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/internal/infrastructure/jobs"
	"fantera.backend/internal/infrastructure/marketdata"
	"fantera.backend/internal/infrastructure/repositories"
	"fantera.backend/internal/interfaces/http/handlers"
	"fantera.backend/internal/interfaces/http/middleware"
	"fantera.backend/internal/usecases"
	"fantera.backend/pkg/logger"
	"fantera.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize identity-provider clients
	tokenVerifier, err := identity.NewPrivyTokenVerifier(cfg.Privy.AppID, cfg.Privy.VerificationKey)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	webhookVerifier, err := identity.NewSvixWebhookVerifier(cfg.Privy.WebhookSigningKey)
	if err != nil {
		return fmt.Errorf("failed to initialize webhook verifier: %w", err)
	}
	kycClient := identity.NewPrivyKYCClient(cfg.Privy.AppID, cfg.Privy.AppSecret, cfg.Privy.KYCProvider, cfg.Privy.APIBase)

	// Initialize market-data client
	alpacaClient := marketdata.NewAlpacaClient(cfg.Alpaca.APIKey, cfg.Alpaca.APISecret, cfg.Alpaca.DataBase, cfg.Alpaca.Timeout)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	clubRepo := repositories.NewClubRepository(db)
	priceRepo := repositories.NewPriceRepository(db)

	// Initialize price cache
	priceCache := redis.NewPriceCache(cfg.Sync.PriceTTL)

	// Initialize usecases
	kycUsecase := usecases.NewKYCUsecase(userRepo, kycClient)
	webhookUsecase := usecases.NewWebhookUsecase(userRepo)
	clubUsecase := usecases.NewClubUsecase(clubRepo, priceRepo)
	priceUsecase := usecases.NewPriceUsecase(priceRepo, clubRepo, priceCache)
	priceSyncUsecase := usecases.NewPriceSyncUsecase(clubRepo, priceRepo, alpacaClient, priceCache)

	// Initialize handlers
	kycHandler := handlers.NewKYCHandler(kycUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookVerifier, webhookUsecase)
	clubHandler := handlers.NewClubHandler(clubUsecase)
	priceHandler := handlers.NewPriceHandler(priceUsecase)
	cronHandler := handlers.NewCronHandler(cfg.Cron.Secret, priceSyncUsecase)
	healthHandler := handlers.NewHealthHandler()

	authMiddleware := middleware.AuthMiddleware(tokenVerifier)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var syncJob *jobs.PriceSyncJob
	if cfg.Sync.Enabled {
		syncJob = jobs.NewPriceSyncJob(priceSyncUsecase, cfg.Sync.Interval)
		go syncJob.Start(ctx)
	}

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerAPIRoutes(r, routeDeps{
		kycHandler:     kycHandler,
		webhookHandler: webhookHandler,
		clubHandler:    clubHandler,
		priceHandler:   priceHandler,
		cronHandler:    cronHandler,
		healthHandler:  healthHandler,
		authMiddleware: authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		if syncJob != nil {
			syncJob.Stop()
		}
		cancel()
	}()

	// Start server
	log.Printf("🚀 Fantera Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
