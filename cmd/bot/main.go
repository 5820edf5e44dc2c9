package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/schar1067/Payments-assistant-bot/internal/amqp"
	"github.com/schar1067/Payments-assistant-bot/internal/bot"
	"github.com/schar1067/Payments-assistant-bot/internal/config"
	"github.com/schar1067/Payments-assistant-bot/internal/dates"
	"github.com/schar1067/Payments-assistant-bot/internal/interpreter"
	applog "github.com/schar1067/Payments-assistant-bot/internal/log"
	"github.com/schar1067/Payments-assistant-bot/internal/planner"
	"github.com/schar1067/Payments-assistant-bot/internal/store"
	"github.com/schar1067/Payments-assistant-bot/internal/store/memory"
	"github.com/schar1067/Payments-assistant-bot/internal/store/sqlite"
	"github.com/schar1067/Payments-assistant-bot/internal/translator/openai"
)

// maxInFlight bounds how many updates are handled concurrently. Handlers
// share no mutable state, so per-user ordering across concurrent messages
// is not guaranteed.
const maxInFlight = 32

func main() {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	resolver := dates.New(cfg.Timezone)

	var records store.RecordStore
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := sqlite.NewRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("failed to initialize sqlite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		records = repo
	default:
		records = memory.New()
	}
	logger.Info("record store initialized", "backend", cfg.DataBackend)

	var audit interpreter.AuditPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("failed to initialize AMQP client, continuing without audit events", "error", err)
		} else {
			defer client.Close()
			audit = client
			logger.Info("AMQP audit publisher initialized",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	interp := interpreter.New(
		records,
		planner.New(records, resolver),
		resolver,
		openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		audit,
	)

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Error("bot init failed", "error", err)
		os.Exit(1)
	}

	h := bot.NewHandler(botAPI, interp, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		logger.Info("shutdown signal received", "signal", sig.String())
		cancel()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	logger.Info("bot started", "username", botAPI.Self.UserName)

	// Each update runs as its own task; the group bounds concurrency and
	// lets in-flight handlers finish on shutdown.
	g := new(errgroup.Group)
	g.SetLimit(maxInFlight)

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case upd, ok := <-updates:
			if !ok {
				break loop
			}
			g.Go(func() error {
				h.HandleUpdate(ctx, upd)
				return nil
			})
		}
	}

	botAPI.StopReceivingUpdates()
	_ = g.Wait()
	logger.Info("bot stopped")
}
