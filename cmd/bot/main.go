// Package main contains the entrypoint for the air quality Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"
	"github.com/joho/godotenv"

	"github.com/edgard/airbot/internal/airquality"
	"github.com/edgard/airbot/internal/bot"
	"github.com/edgard/airbot/internal/bot/handlers"
	"github.com/edgard/airbot/internal/bot/tasks"
	"github.com/edgard/airbot/internal/config"
	"github.com/edgard/airbot/internal/location"
	"github.com/edgard/airbot/internal/logger"
	"github.com/edgard/airbot/internal/metrics"
	"github.com/edgard/airbot/internal/report"
	"github.com/edgard/airbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components, blocks until shutdown, and returns the
// process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	envPath := flag.String("env", ".env", "Path to dotenv file (ignored if missing)")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load dotenv file", "path", *envPath, "error", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	store := location.NewMemoryStore()

	airClient, err := airquality.NewClient(
		cfg.AirQuality.BaseURL,
		cfg.AirQuality.APIKey,
		&http.Client{Timeout: cfg.AirQuality.Timeout},
	)
	if err != nil {
		log.Error("Failed to create air quality client", "error", err)
		return 1
	}

	router := handlers.NewRouter(handlers.HandlerDeps{
		Logger:    log,
		Store:     store,
		AirClient: airClient,
		Formatter: report.NewFormatter(),
		Metrics:   m,
	})

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(telegram.NewUpdateHandler(router, log)),
		tgbot.WithErrorsHandler(telegram.ErrorsHandler(log)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	if err := telegram.RegisterCommands(ctx, tg, log); err != nil {
		log.Warn("Failed to register bot commands", "error", err)
	}

	taskMap := tasks.RegisterAllTasks(tasks.TaskDeps{
		Logger:  log,
		Store:   store,
		Metrics: m,
	})
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, taskMap)
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, cfg, tg, sched, m)

	log.Info("Starting bot...")
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Bot stopped due to error", "error", err)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
