package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	msgOrderSaved  = "Фото и заказ успешно сохранены! Ожидай подтверждения."
	msgOrderFailed = "Произошла ошибка при сохранении заказа. Попробуй снова."
)

// handleSelection consumes month/day/hour/minute button presses. A token
// that does not match the conversation's current step falls through without
// a reply or an acknowledgement, matching how stale buttons behave after a
// grid has already been answered.
func (h *Handler) handleSelection(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}

	userID := cb.From.ID
	chatID := cb.Message.Message.Chat.ID

	prompt, commit := h.intake.Select(userID, cb.Data)

	if prompt != nil {
		h.sendPrompt(ctx, chatID, prompt)
		h.answerCallback(ctx, update)
		return
	}

	if !commit {
		return
	}

	h.commitOrder(ctx, userID, chatID)
	h.answerCallback(ctx, update)
}

// commitOrder is the single fault boundary around the commit pipeline. On
// success the conversation is removed; on any failure it stays in place,
// fully populated, so another minute tap retries with a fresh storage key.
func (h *Handler) commitOrder(ctx context.Context, userID, chatID int64) {
	conv, ok := h.intake.Conversation(userID)
	if !ok {
		return
	}

	_, err := h.orders.Place(ctx, conv)
	if err != nil {
		slog.Error("order commit failed", "error", err, "user_id", userID)
		h.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   msgOrderFailed,
		})
		return
	}

	h.intake.Finish(userID)
	h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   msgOrderSaved,
	})
}
