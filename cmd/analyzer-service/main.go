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

	"crypto-sentiment-analyzer/internal/analyzer/config"
	delivery "crypto-sentiment-analyzer/internal/analyzer/delivery/http"
	_ "crypto-sentiment-analyzer/internal/analyzer/docs"
	"crypto-sentiment-analyzer/internal/analyzer/repository"
	"crypto-sentiment-analyzer/internal/analyzer/service"
	"crypto-sentiment-analyzer/internal/nlp"
	"crypto-sentiment-analyzer/pkg/logger"
	"crypto-sentiment-analyzer/pkg/postgres"
	"crypto-sentiment-analyzer/pkg/ratelimit"
	"crypto-sentiment-analyzer/pkg/redis"
	"crypto-sentiment-analyzer/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the sentiment analyzer service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Sentiment Analyzer Service", logger.Field("name", cfg.App.Name))

	// Initialize database; history is optional and skipped when no host is
	// configured.
	var recordRepo repository.AnalysisRecordRepository
	if cfg.Database.Host != "" {
		postgresCfg := postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}
		db, err := postgres.NewDB(postgresCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		recordRepo = repository.NewAnalysisRecordRepository(db.DB)
	} else {
		appLogger.Info("No database configured, analysis history disabled")
	}

	// Initialize Redis; the shared result cache is optional.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err = redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
	}

	// Initialize the analyzer service; it rejects requests until the models
	// finish loading.
	analyzerSvc := service.NewAnalyzerService(cfg, appLogger, recordRepo, redisClient)

	onnxModelsCh := make(chan *repository.ONNXModels, 1)
	switch cfg.Models.Backend {
	case "lexicon":
		analyzerSvc.SetModels(repository.NewVaderModelRepository(), repository.NewLexicalEntityRepository())
		appLogger.Info("Lexicon backend ready")
	default:
		// Model download and ONNX session creation can take minutes on a
		// cold start, so load in the background.
		go func() {
			models, err := repository.NewONNXModels(cfg, nlp.NewEntityExtractor(), appLogger)
			if err != nil {
				appLogger.Error("Failed to load ONNX models, service stays unavailable", logger.ErrorField(err))
				return
			}
			analyzerSvc.SetModels(models.Sentiment, models.Entities)
			appLogger.Info("ONNX models loaded",
				logger.StringField("sentiment_model", cfg.Models.SentimentModel),
				logger.StringField("ner_model", cfg.Models.NERModel))
			onnxModelsCh <- models
		}()
	}
	defer func() {
		select {
		case models := <-onnxModelsCh:
			models.Close()
		default:
		}
	}()

	// Initialize the telegram notifier for high impact alerts.
	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Error("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Start the feed watcher
	feedWatcher := service.NewFeedWatcher(cfg, appLogger, analyzerSvc, notifier)
	if err := feedWatcher.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start feed watcher", logger.ErrorField(err))
	}
	defer feedWatcher.Stop()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	limiter := ratelimit.NewRequestLimiter(cfg.Analyzer.RateLimitPerMinute, cfg.Analyzer.RateLimitBurst)
	analyzerHandler := delivery.NewAnalyzerHandler(analyzerSvc, appLogger, limiter)
	healthHandler := delivery.NewHealthHandler(analyzerSvc, cfg.App.Version)

	apiV1 := e.Group("/api/v1")
	analyzerHandler.RegisterRoutes(apiV1)
	healthHandler.RegisterRoutes(apiV1)
	// Health is also served unversioned for probes.
	healthHandler.RegisterRoutes(e.Group(""))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Crypto Sentiment Analyzer API
// @version 1.0
// @description Sentiment, entity, keyword and impact analysis for crypto news and social text.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "analyzer-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analyzer-service CLI: %s\n", err)
		os.Exit(1)
	}
}
