package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"

	"github.com/avdeev-m/orderbot/internal/config"
	"github.com/avdeev-m/orderbot/internal/domain"
)

// Notifier delivers operational messages to the fixed administrator chat.
type Notifier struct {
	bot     *bot.Bot
	chatID  int64
	timeout time.Duration
}

func NewNotifier(b *bot.Bot, chatID int64) *Notifier {
	return &Notifier{
		bot:     b,
		chatID:  chatID,
		timeout: config.NotifierTimeout,
	}
}

// NotifyNewOrder tells the administrator about a freshly committed order.
func (n *Notifier) NotifyNewOrder(ctx context.Context, order *domain.Order) error {
	text := fmt.Sprintf(
		"Новый заказ от %s:\nДата: %s\nФото: %s\nНомер: %s",
		order.ClientName, order.Appointment, order.PhotoURL, order.Reference,
	)
	return n.send(ctx, text)
}

// NotifyError reports a handler-level failure to the administrator.
func (n *Notifier) NotifyError(err error, where string) {
	text := fmt.Sprintf("❌ Ошибка\n\nГде: %s\nЧто: %s\nКогда: %s",
		where, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	if sendErr := n.send(context.Background(), text); sendErr != nil {
		slog.Error("failed to notify admin about error", "error", sendErr)
	}
}

func (n *Notifier) send(ctx context.Context, text string) error {
	if n.chatID == 0 {
		return nil
	}

	// Truncate if too long
	if len([]rune(text)) > config.MaxTelegramMessageLen {
		text = string([]rune(text)[:config.MaxTelegramMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send admin notification: %w", err)
	}
	return nil
}
