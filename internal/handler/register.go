package handler

import (
	"github.com/go-telegram/bot"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stat", bot.MatchTypePrefix, h.handleStat)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/restart", bot.MatchTypePrefix, h.handleRestart)

	// Appointment selection callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "month_", bot.MatchTypePrefix, h.handleSelection)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "day_", bot.MatchTypePrefix, h.handleSelection)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "hour_", bot.MatchTypePrefix, h.handleSelection)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "minute_", bot.MatchTypePrefix, h.handleSelection)

	// Free-form text and photo messages fall through to the default handler
	// wired in main, which routes them to HandleText / HandlePhoto.
}
