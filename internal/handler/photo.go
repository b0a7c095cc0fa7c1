package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/avdeev-m/orderbot/internal/telegram"
)

// HandlePhoto downloads the highest-resolution variant of a submitted photo
// and advances the conversation to month selection.
func (h *Handler) HandlePhoto(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message
	userID := msg.From.ID
	chatID := msg.Chat.ID

	best, ok := tg.LargestPhoto(msg.Photo)
	if !ok {
		return
	}

	data, err := tg.DownloadFile(ctx, b, best.FileID)
	if err != nil {
		slog.Error("download photo failed", "error", err, "user_id", userID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Не получилось загрузить фото. Попробуй отправить его ещё раз.",
		})
		return
	}

	prompt := h.intake.SubmitPhoto(userID, data)
	h.sendPrompt(ctx, chatID, prompt)
}
