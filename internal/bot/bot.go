// Package bot wires the bot's long-running components together and manages
// their lifecycle.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/airbot/internal/config"
	"github.com/edgard/airbot/internal/metrics"
)

const metricsShutdownTimeout = 5 * time.Second

// Listener receives chat updates until its context is cancelled.
// *github.com/go-telegram/bot.Bot satisfies it.
type Listener interface {
	Start(ctx context.Context)
}

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	listener  Listener
	scheduler *Scheduler
	metrics   *metrics.Metrics
}

// NewBot creates the orchestrator. m may be nil when metrics are disabled.
func NewBot(
	logger *slog.Logger,
	cfg *config.Config,
	listener Listener,
	scheduler *Scheduler,
	m *metrics.Metrics,
) *Bot {
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		cfg:       cfg,
		listener:  listener,
		scheduler: scheduler,
		metrics:   m,
	}
}

// Run starts the update listener, the scheduler and, when enabled, the
// metrics endpoint. It blocks until ctx is cancelled or a component fails.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener...")
		b.listener.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		if err := b.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	if b.cfg.Metrics.Enabled && b.metrics != nil {
		srv := &http.Server{
			Addr:              b.cfg.Metrics.Address,
			Handler:           b.metricsMux(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			b.logger.Info("Starting metrics server", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				b.logger.Error("Error stopping metrics server", "error", err)
			}
			return nil
		})
	}

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}

func (b *Bot) metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", b.metrics.Handler())
	return mux
}
