package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeev-m/orderbot/internal/config"
	"github.com/avdeev-m/orderbot/internal/repository"
)

// RateLimit returns middleware that enforces per-chat per-minute limits.
// The counter lives in the record store so limits hold across restarts.
func RateLimit(repo *repository.RateLimitRepository) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			// Only rate limit messages, button presses stay cheap
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID

			count, err := repo.CheckAndIncrement(ctx, chatID)
			if err != nil {
				slog.Error("rate limit check failed", "error", err, "chat_id", chatID)
				next(ctx, b, update)
				return
			}

			if count > config.RateLimitPerChat {
				slog.Debug("rate limited", "chat_id", chatID, "count", count)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Слишком много запросов. Подождите немного.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
