package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleStart opens a fresh conversation, discarding any in-flight progress
// the user had. /start mid-flow is a full reset back to the name step.
func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	prompt := h.intake.Begin(userID, chatID)
	h.sendPrompt(ctx, chatID, prompt)
}
