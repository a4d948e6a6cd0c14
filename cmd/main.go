package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/config"
	"github.com/dmdipanshu/premium-sub-bot/internal/delivery"
	"github.com/dmdipanshu/premium-sub-bot/internal/domain"
	"github.com/dmdipanshu/premium-sub-bot/internal/infra"
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"github.com/dmdipanshu/premium-sub-bot/internal/sweeper"
	"github.com/dmdipanshu/premium-sub-bot/internal/telegram"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	if err := infra.InitSchema(initCtx, db); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := baseLogger.Sugar()

	// =========================================================================
	// TELEGRAM CLIENT
	// =========================================================================

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}
	bot.Client = &http.Client{Timeout: 60 * time.Second}
	zl.Infow("telegram bot authorized", "username", bot.Self.UserName)

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	var archive ports.ProofArchive
	if cfg.S3Enabled() {
		s3Client, err := infra.NewS3Client(cfg)
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
		archive = domain.NewProofArchive(s3Client)
	}

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	userRepo := infra.NewUserRepo(db)
	paymentRepo := infra.NewPaymentRepo(db)
	ticketRepo := infra.NewTicketRepo(db)

	// =========================================================================
	// TELEGRAM TRANSPORT
	// =========================================================================

	notifier := telegram.NewNotifier(bot, cfg.AdminIDList(), zl)
	channel := telegram.NewChannelControl(bot, cfg.ChannelID, zl)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	ledgerService := domain.NewLedgerService(userRepo, paymentRepo, zl)
	paymentService := domain.NewPaymentService(
		paymentRepo,
		ledgerService,
		notifier,
		channel,
		cfg.AdminIDList(),
		zl,
	)
	ticketService := domain.NewTicketService(ticketRepo, notifier, zl)
	broadcastService := domain.NewBroadcastService(userRepo, notifier, zl)
	authService := domain.NewAuthService(cfg.AdminAPIPassword, cfg.AuthSecret)

	// =========================================================================
	// BOT APP
	// =========================================================================

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	botApp := telegram.NewBotApp(
		bot,
		cfg,
		ledgerService,
		paymentService,
		ticketService,
		broadcastService,
		paymentRepo,
		archive,
		zl,
	)
	go botApp.Run(ctx)

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	sweep := sweeper.New(ledgerService, notifier, channel, zl)
	if err := sweep.Start(cfg.SweepSchedule); err != nil {
		log.Fatalf("failed to start sweeper: %v", err)
	}
	defer sweep.Stop()

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	healthHandler := delivery.NewHealthHandler(db)
	authHandler := delivery.NewAuthHandler(authService)
	adminHandler := delivery.NewAdminHandler(ledgerService, paymentService, zl)

	delivery.RegisterRoutes(r, healthHandler, authHandler, adminHandler, authService)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		zl.Infow("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Errorw("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Warnw("server shutdown", "error", err)
	}
	os.Exit(0)
}
