package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Recover returns middleware that keeps a panicking handler from taking the
// process down. One user's malformed input must never stop the bot. The
// optional notify callback reports the panic to the administrator.
func Recover(notify func(err error, where string)) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered in handler",
						"panic", r,
						"stack", string(debug.Stack()),
					)
					if notify != nil {
						notify(fmt.Errorf("panic: %v", r), "update handler")
					}
				}
			}()
			next(ctx, b, update)
		}
	}
}
