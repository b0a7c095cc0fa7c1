package handler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeev-m/orderbot/internal/config"
)

// handleStat reports order totals and the latest orders to an administrator.
func (h *Handler) handleStat(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		return
	}

	chatID := update.Message.Chat.ID

	total, err := h.orderRepo.Count(ctx)
	if err != nil {
		slog.Error("count orders", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось получить статистику.",
		})
		return
	}

	recent, err := h.orderRepo.Recent(ctx, 5)
	if err != nil {
		slog.Error("recent orders", "error", err)
		recent = nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Всего заказов: %d\n", total))
	if len(recent) > 0 {
		sb.WriteString("\nПоследние:\n")
		for _, o := range recent {
			sb.WriteString(fmt.Sprintf("• %s — %s (%s)\n", o.ClientName, o.Appointment, o.Status))
		}
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

// handleRestart terminates the process after a short delay. External process
// supervision is expected to bring the bot back up; all in-memory
// conversations are dropped.
func (h *Handler) handleRestart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   fmt.Sprintf("Перезапускаюсь через %s...", config.RestartDelay),
	})

	slog.Warn("restart requested by admin", "admin_id", update.Message.From.ID)
	time.AfterFunc(config.RestartDelay, func() {
		os.Exit(0)
	})
}
