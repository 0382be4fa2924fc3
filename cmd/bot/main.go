package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/config"
	"github.com/lavrov08/trainers-tinder/internal/delivery/ops"
	"github.com/lavrov08/trainers-tinder/internal/delivery/telegram"
	"github.com/lavrov08/trainers-tinder/internal/repository/sqlite"
	"github.com/lavrov08/trainers-tinder/internal/session"
	"github.com/lavrov08/trainers-tinder/internal/usecase"
	"github.com/lavrov08/trainers-tinder/pkg/database"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting trainers tinder bot", "db", cfg.DatabasePath)

	// 3. Setup Database
	db, err := database.NewSQLiteConnection(cfg.DatabasePath)
	if err != nil {
		logger.Log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.InitSchema(context.Background(), db); err != nil {
		logger.Log.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	userRepo := sqlite.NewUserRepository(db)
	clientRepo := sqlite.NewClientRepository(db)
	trainerRepo := sqlite.NewTrainerRepository(db)
	likeRepo := sqlite.NewLikeRepository(db)

	// 5. Setup Bot API
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Log.Error("Failed to connect to Telegram", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validator.New()
	sessions := session.NewStore()
	notifier := telegram.NewNotifier(api)

	accountUC := usecase.NewAccountUsecase(userRepo, clientRepo, cfg.InitialLikes)
	registrationUC := usecase.NewRegistrationUsecase(trainerRepo, sessions, notifier, validate, cfg)
	browseUC := usecase.NewBrowseUsecase(trainerRepo, likeRepo, clientRepo, sessions, notifier, cfg)
	moderationUC := usecase.NewModerationUsecase(trainerRepo, likeRepo, clientRepo, notifier, cfg)

	bot := telegram.NewBot(telegram.Deps{
		API:          api,
		Config:       cfg,
		Sessions:     sessions,
		Accounts:     accountUC,
		Registration: registrationUC,
		Browse:       browseUC,
		Moderation:   moderationUC,
	})

	// 7. Start Ops Server
	srv := &http.Server{
		Addr:    ":" + cfg.OpsPort,
		Handler: ops.NewRouter(db),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Ops server listen failed", "error", err)
		}
	}()

	// 8. Run Bot
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := bot.Run(ctx); err != nil && err != context.Canceled {
			logger.Log.Error("Bot stopped", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Ops server forced to shutdown", "error", err)
	}

	logger.Log.Info("Bot exiting")
}
