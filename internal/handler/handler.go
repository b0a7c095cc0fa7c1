package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avdeev-m/orderbot/internal/config"
	"github.com/avdeev-m/orderbot/internal/repository"
	"github.com/avdeev-m/orderbot/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot       *bot.Bot
	cfg       *config.Config
	intake    *service.IntakeService
	orders    *service.OrderService
	orderRepo *repository.OrderRepository
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot       *bot.Bot
	Cfg       *config.Config
	Intake    *service.IntakeService
	Orders    *service.OrderService
	OrderRepo *repository.OrderRepository
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:       deps.Bot,
		cfg:       deps.Cfg,
		intake:    deps.Intake,
		orders:    deps.Orders,
		orderRepo: deps.OrderRepo,
	}
}

// sendPrompt delivers a service prompt to a chat, attaching the inline
// keyboard when the step has one.
func (h *Handler) sendPrompt(ctx context.Context, chatID int64, prompt *service.Prompt) {
	if prompt == nil {
		return
	}

	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   prompt.Text,
	}
	if prompt.Keyboard != nil {
		params.ReplyMarkup = prompt.Keyboard
	}
	h.bot.SendMessage(ctx, params)
}

// answerCallback clears the pending indicator on an inline button press.
func (h *Handler) answerCallback(ctx context.Context, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	h.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})
}
