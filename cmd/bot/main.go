package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	_ "github.com/joho/godotenv/autoload"

	orderbot "github.com/avdeev-m/orderbot"
	"github.com/avdeev-m/orderbot/internal/config"
	"github.com/avdeev-m/orderbot/internal/handler"
	"github.com/avdeev-m/orderbot/internal/middleware"
	"github.com/avdeev-m/orderbot/internal/repository"
	"github.com/avdeev-m/orderbot/internal/server"
	"github.com/avdeev-m/orderbot/internal/service"
	"github.com/avdeev-m/orderbot/internal/session"
	"github.com/avdeev-m/orderbot/internal/storage"
	tg "github.com/avdeev-m/orderbot/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(orderbot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	orderRepo := repository.NewOrderRepository(pool)
	rateLimitRepo := repository.NewRateLimitRepository(pool)

	// Object storage
	s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		slog.Error("failed to create storage client", "error", err)
		os.Exit(1)
	}

	// Handler and notifier pointers for use in middleware/default-handler
	// closures; both are assigned after the bot exists
	var h *handler.Handler
	var notifier *tg.Notifier

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(func(err error, where string) {
				if notifier != nil {
					notifier.NotifyError(err, where)
				}
			}),
			middleware.Logging(),
			middleware.RateLimit(rateLimitRepo),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil || update.Message == nil {
				return
			}
			// Photos and free-form text land here; commands have their own
			// registered handlers
			if len(update.Message.Photo) > 0 {
				h.HandlePhoto(ctx, b, update)
				return
			}
			if update.Message.Text != "" {
				h.HandleText(ctx, b, update)
			}
		}),
	}
	if cfg.WebhookSecret != "" {
		opts = append(opts, bot.WithWebhookSecretToken(cfg.WebhookSecret))
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Services
	sessions := session.NewStore()
	intakeService := service.NewIntakeService(sessions)
	notifier = tg.NewNotifier(b, cfg.AdminChatID)
	orderService := service.NewOrderService(s3Client, orderRepo, notifier)

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:       b,
		Cfg:       cfg,
		Intake:    intakeService,
		Orders:    orderService,
		OrderRepo: orderRepo,
	})
	h.Register()

	// Expired rate-limit window cleanup
	go func() {
		ticker := time.NewTicker(config.RateLimitCleanup)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := rateLimitRepo.DeleteExpired(context.Background()); err != nil {
					slog.Error("cleanup rate limit windows", "error", err)
				}
			}
		}
	}()

	// Optional stale conversation sweep
	if cfg.SessionTTLMinutes > 0 {
		ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
		go func() {
			ticker := time.NewTicker(config.SessionSweep)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if removed := sessions.DeleteStale(ttl); removed > 0 {
						slog.Info("stale conversations dropped", "count", removed)
					}
				}
			}
		}()
	}

	// Start bot: webhook behind the HTTP server when configured, long
	// polling otherwise
	if cfg.WebhookURL != "" {
		if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{
			URL:                cfg.WebhookURL,
			SecretToken:        cfg.WebhookSecret,
			DropPendingUpdates: cfg.DropPendingUpdates,
		}); err != nil {
			slog.Error("failed to set webhook", "error", err)
			os.Exit(1)
		}

		srv := server.New(cfg.Port, b.WebhookHandler())
		go func() {
			if err := srv.Start(); err != nil {
				slog.Error("webhook server failed", "error", err)
				stop()
			}
		}()

		slog.Info("starting bot in webhook mode", "username", me.Username, "port", cfg.Port)
		b.StartWebhook(ctx)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("webhook server shutdown", "error", err)
		}
	} else {
		if cfg.DropPendingUpdates {
			b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true})
		}
		slog.Info("starting bot in polling mode", "username", me.Username, "id", me.ID)
		b.Start(ctx)
	}

	slog.Info("bot stopped gracefully")
}
