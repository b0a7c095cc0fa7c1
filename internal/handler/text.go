package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleText feeds plain text into the intake flow. Only the name step
// consumes it; everything else is either redirected or silently ignored.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message

	// Commands are routed by their own handlers
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	prompt := h.intake.SubmitName(msg.From.ID, msg.Text)
	h.sendPrompt(ctx, msg.Chat.ID, prompt)
}
