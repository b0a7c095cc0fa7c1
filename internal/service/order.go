package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avdeev-m/orderbot/internal/config"
	"github.com/avdeev-m/orderbot/internal/domain"
)

// ObjectStorage is the binary store for order photos.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) (string, error)
}

// OrderStore persists committed orders.
type OrderStore interface {
	Insert(ctx context.Context, order *domain.Order) error
}

// AdminNotifier delivers the new-order message to the administrator.
type AdminNotifier interface {
	NotifyNewOrder(ctx context.Context, order *domain.Order) error
}

// OrderService runs the one-shot commit pipeline: upload the photo, resolve
// its public URL, insert the record, notify the administrator. The first
// failing step aborts the rest; nothing is retried or rolled back.
type OrderService struct {
	storage  ObjectStorage
	orders   OrderStore
	notifier AdminNotifier
	now      func() time.Time
}

func NewOrderService(storage ObjectStorage, orders OrderStore, notifier AdminNotifier) *OrderService {
	return &OrderService{
		storage:  storage,
		orders:   orders,
		notifier: notifier,
		now:      time.Now,
	}
}

// Place commits a fully populated conversation as an order.
func (s *OrderService) Place(ctx context.Context, conv *domain.Conversation) (*domain.Order, error) {
	if !conv.Appointment.Complete() {
		return nil, fmt.Errorf("place order: appointment incomplete")
	}
	if len(conv.PhotoBytes) == 0 {
		return nil, domain.ErrEmptyPhoto
	}

	key := ObjectKey(conv.ClientName, s.now())
	slog.Info("uploading order photo", "key", key, "size", len(conv.PhotoBytes))

	if err := s.storage.Upload(ctx, key, conv.PhotoBytes, config.PhotoContentType); err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	photoURL, err := s.storage.PublicURL(key)
	if err != nil {
		return nil, fmt.Errorf("resolve photo url: %w", err)
	}
	if photoURL == "" {
		return nil, domain.ErrNoPublicURL
	}

	order := &domain.Order{
		Reference:   uuid.New(),
		ClientName:  conv.ClientName,
		PhotoURL:    photoURL,
		Amount:      decimal.NewFromInt(config.OrderAmount),
		Appointment: conv.Appointment.String(),
		Status:      config.OrderStatusPending,
		ChatID:      conv.ChatID,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		// The uploaded object is not rolled back; leave a trail for manual
		// reconciliation.
		slog.Error("order insert failed after upload, object orphaned", "key", key, "error", err)
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if err := s.notifier.NotifyNewOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("notify admin: %w", err)
	}

	slog.Info("order committed", "reference", order.Reference, "client", order.ClientName,
		"appointment", order.Appointment)
	return order, nil
}

var objectKeyStrip = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeName reduces a client name to a storage-key-safe token: characters
// outside [A-Za-z0-9_-] are stripped, the rest is capped at 50 characters,
// and an empty result falls back to a fixed token.
func SanitizeName(name string) string {
	cleaned := objectKeyStrip.ReplaceAllString(name, "")
	if len(cleaned) > config.ObjectKeyNameMaxLen {
		cleaned = cleaned[:config.ObjectKeyNameMaxLen]
	}
	if cleaned == "" {
		return config.ObjectKeyFallback
	}
	return cleaned
}

// ObjectKey derives the storage key for an order photo. The millisecond
// timestamp keeps keys unique across retries of the same conversation.
func ObjectKey(clientName string, ts time.Time) string {
	return fmt.Sprintf("%d-%s%s", ts.UnixMilli(), SanitizeName(clientName), config.ObjectKeyExtension)
}
