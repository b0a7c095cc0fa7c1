package service

import (
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/avdeev-m/orderbot/internal/config"
	"github.com/avdeev-m/orderbot/internal/domain"
	"github.com/avdeev-m/orderbot/internal/session"
	tg "github.com/avdeev-m/orderbot/internal/telegram"
)

const (
	msgStartOver = "Пожалуйста, начни с команды /start."
	msgAskName   = "👋 Привет! Напиши имя клиента."
	msgAskPhoto  = "Принято! Теперь пришли фото."
	msgNeedPhoto = "Сейчас я жду фото. Чтобы начать заново, используй /start."
	msgAskMonth  = "Выбери месяц:"
	msgAskDay    = "Выбери день:"
	msgAskHour   = "Выбери час:"
	msgAskMinute = "Выбери минуты:"
)

// Prompt is the outbound reaction to an intake event: a text and, for the
// selection steps, an inline keyboard.
type Prompt struct {
	Text     string
	Keyboard *models.InlineKeyboardMarkup
}

// IntakeService drives a user's conversation through the ordered intake
// steps. All state lives in the injected session store; the service itself
// holds none.
type IntakeService struct {
	sessions *session.Store
}

func NewIntakeService(sessions *session.Store) *IntakeService {
	return &IntakeService{sessions: sessions}
}

// Begin starts a conversation for the user, discarding any prior progress.
func (s *IntakeService) Begin(userID, chatID int64) *Prompt {
	s.sessions.Set(userID, domain.NewConversation(userID, chatID))
	return &Prompt{Text: msgAskName}
}

// SubmitName consumes a text event. Only the name-collection step accepts
// text; the photo step answers with a redirect hint, the selection steps
// ignore text entirely.
func (s *IntakeService) SubmitName(userID int64, text string) *Prompt {
	conv, ok := s.sessions.Get(userID)
	if !ok {
		return &Prompt{Text: msgStartOver}
	}

	switch conv.Step {
	case domain.StepAwaitingName:
		if text == "" {
			return nil
		}
		conv.ClientName = text
		conv.Step = domain.StepAwaitingPhoto
		conv.Touch()
		return &Prompt{Text: msgAskPhoto}
	case domain.StepAwaitingPhoto:
		return &Prompt{Text: msgNeedPhoto}
	default:
		return nil
	}
}

// SubmitPhoto consumes the photo bytes and opens the month selection.
func (s *IntakeService) SubmitPhoto(userID int64, photo []byte) *Prompt {
	conv, ok := s.sessions.Get(userID)
	if !ok {
		return &Prompt{Text: msgStartOver}
	}

	if conv.Step != domain.StepAwaitingPhoto || len(photo) == 0 {
		return nil
	}

	conv.PhotoBytes = photo
	conv.Step = domain.StepSelectingMonth
	conv.Touch()
	return &Prompt{
		Text:     msgAskMonth,
		Keyboard: tg.Grid(tg.NumericCodes(1, 13), 3, "month"),
	}
}

// Select consumes a "<prefix>_<value>" button token. A token whose prefix
// does not match the current step mutates nothing and produces no reply.
// When the minute lands, commit is true: the conversation stays in place,
// fully populated, until the caller's commit attempt succeeds.
func (s *IntakeService) Select(userID int64, token string) (prompt *Prompt, commit bool) {
	conv, ok := s.sessions.Get(userID)
	if !ok {
		return &Prompt{Text: msgStartOver}, false
	}

	prefix, value, ok := strings.Cut(token, "_")
	if !ok || value == "" {
		return nil, false
	}

	switch {
	case prefix == "month" && conv.Step == domain.StepSelectingMonth:
		conv.Appointment.Month = value
		conv.Step = domain.StepSelectingDay
		conv.Touch()
		return &Prompt{
			Text:     msgAskDay,
			Keyboard: tg.Grid(tg.NumericCodes(1, 32), 5, "day"),
		}, false

	case prefix == "day" && conv.Step == domain.StepSelectingDay:
		conv.Appointment.Day = value
		conv.Step = domain.StepSelectingHour
		conv.Touch()
		return &Prompt{
			Text:     msgAskHour,
			Keyboard: tg.Grid(tg.NumericCodes(0, 24), 6, "hour"),
		}, false

	case prefix == "hour" && conv.Step == domain.StepSelectingHour:
		conv.Appointment.Hour = value
		conv.Step = domain.StepSelectingMinute
		conv.Touch()
		return &Prompt{
			Text:     msgAskMinute,
			Keyboard: tg.Grid(config.MinuteOptions, len(config.MinuteOptions), "minute"),
		}, false

	case prefix == "minute" && conv.Step == domain.StepSelectingMinute:
		conv.Appointment.Minute = value
		conv.Touch()
		return nil, true
	}

	return nil, false
}

// Conversation exposes the user's in-flight conversation to the commit path.
func (s *IntakeService) Conversation(userID int64) (*domain.Conversation, bool) {
	return s.sessions.Get(userID)
}

// Finish removes a committed conversation from the store.
func (s *IntakeService) Finish(userID int64) {
	s.sessions.Delete(userID)
}
