package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/avdeev-m/orderbot/internal/config"
	"github.com/avdeev-m/orderbot/internal/domain"
)

type fakeStorage struct {
	uploadedKeys []string
	uploadErr    error
	baseURL      string
	urlErr       error
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploadedKeys = append(f.uploadedKeys, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return f.baseURL + "/" + key, nil
}

type fakeOrderStore struct {
	inserted []*domain.Order
	err      error
}

func (f *fakeOrderStore) Insert(_ context.Context, order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = int64(len(f.inserted) + 1)
	order.CreatedAt = time.Now()
	f.inserted = append(f.inserted, order)
	return nil
}

type fakeNotifier struct {
	notified []*domain.Order
	err      error
}

func (f *fakeNotifier) NotifyNewOrder(_ context.Context, order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.notified = append(f.notified, order)
	return nil
}

func readyConversation() *domain.Conversation {
	conv := domain.NewConversation(1, 100)
	conv.ClientName = "Ali"
	conv.PhotoBytes = []byte{0xFF, 0xD8}
	conv.Step = domain.StepSelectingMinute
	conv.Appointment = domain.Appointment{Month: "04", Day: "15", Hour: "09", Minute: "30"}
	return conv
}

func TestPlaceSuccess(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.example.com/photos"}
	orders := &fakeOrderStore{}
	notifier := &fakeNotifier{}
	svc := NewOrderService(store, orders, notifier)

	order, err := svc.Place(context.Background(), readyConversation())
	require.NoError(t, err)

	require.Len(t, store.uploadedKeys, 1)
	require.Len(t, orders.inserted, 1)
	require.Len(t, notifier.notified, 1)

	require.Equal(t, "Ali", order.ClientName)
	require.Equal(t, "04-15 09:30", order.Appointment)
	require.Equal(t, config.OrderStatusPending, order.Status)
	require.Equal(t, "300000", order.Amount.String())
	require.Equal(t, int64(100), order.ChatID)
	require.Equal(t, "https://cdn.example.com/photos/"+store.uploadedKeys[0], order.PhotoURL)
	require.NotEqual(t, order.Reference.String(), "00000000-0000-0000-0000-000000000000")
}

func TestPlaceInsertFailureSkipsNotification(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.example.com/photos"}
	orders := &fakeOrderStore{err: errors.New("db down")}
	notifier := &fakeNotifier{}
	svc := NewOrderService(store, orders, notifier)

	_, err := svc.Place(context.Background(), readyConversation())
	require.ErrorContains(t, err, "insert order")

	require.Len(t, store.uploadedKeys, 1, "photo was already uploaded")
	require.Empty(t, notifier.notified, "no notification after failed insert")
}

func TestPlaceUploadFailureAbortsPipeline(t *testing.T) {
	store := &fakeStorage{uploadErr: errors.New("bucket gone")}
	orders := &fakeOrderStore{}
	notifier := &fakeNotifier{}
	svc := NewOrderService(store, orders, notifier)

	_, err := svc.Place(context.Background(), readyConversation())
	require.ErrorContains(t, err, "upload photo")
	require.Empty(t, orders.inserted)
	require.Empty(t, notifier.notified)
}

func TestPlaceMissingURLAbortsPipeline(t *testing.T) {
	store := &fakeStorage{urlErr: domain.ErrNoPublicURL}
	orders := &fakeOrderStore{}
	notifier := &fakeNotifier{}
	svc := NewOrderService(store, orders, notifier)

	_, err := svc.Place(context.Background(), readyConversation())
	require.ErrorIs(t, err, domain.ErrNoPublicURL)
	require.Empty(t, orders.inserted)
	require.Empty(t, notifier.notified)
}

func TestPlaceNotifyFailureSurfaces(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.example.com/photos"}
	orders := &fakeOrderStore{}
	notifier := &fakeNotifier{err: errors.New("chat unreachable")}
	svc := NewOrderService(store, orders, notifier)

	_, err := svc.Place(context.Background(), readyConversation())
	require.ErrorContains(t, err, "notify admin")
	require.Len(t, orders.inserted, 1)
}

func TestPlaceIncompleteAppointmentRejected(t *testing.T) {
	conv := readyConversation()
	conv.Appointment.Minute = ""

	svc := NewOrderService(&fakeStorage{}, &fakeOrderStore{}, &fakeNotifier{})
	_, err := svc.Place(context.Background(), conv)
	require.Error(t, err)
}

func TestPlaceRetryDerivesFreshKey(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.example.com/photos"}
	orders := &fakeOrderStore{err: errors.New("db down")}
	notifier := &fakeNotifier{}
	svc := NewOrderService(store, orders, notifier)

	ts := time.UnixMilli(1700000000000)
	svc.now = func() time.Time { return ts }

	conv := readyConversation()
	_, err := svc.Place(context.Background(), conv)
	require.Error(t, err)

	// The conversation is untouched; a retry with a later timestamp reuses
	// the same bytes under a new key.
	ts = ts.Add(5 * time.Second)
	orders.err = nil
	_, err = svc.Place(context.Background(), conv)
	require.NoError(t, err)

	require.Len(t, store.uploadedKeys, 2)
	require.NotEqual(t, store.uploadedKeys[0], store.uploadedKeys[1])
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Ali", "Ali"},
		{"keeps allowed punctuation", "ali-baba_42", "ali-baba_42"},
		{"strips spaces and symbols", "Ali Baba & Co!", "AliBabaCo"},
		{"cyrillic stripped to fallback", "Алия", config.ObjectKeyFallback},
		{"only symbols to fallback", "@#$%^&*", config.ObjectKeyFallback},
		{"empty to fallback", "", config.ObjectKeyFallback},
		{"truncated to cap", strings.Repeat("a", 100), strings.Repeat("a", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestObjectKey(t *testing.T) {
	ts := time.UnixMilli(1700000000000)
	require.Equal(t, "1700000000000-Ali.jpg", ObjectKey("Ali", ts))
	require.Equal(t, "1700000000000-client.jpg", ObjectKey("Катя!", ts))
}

func TestSanitizeNameProperty(t *testing.T) {
	valid := regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")
		got := SanitizeName(name)
		if !valid.MatchString(got) {
			t.Fatalf("SanitizeName(%q) = %q, not storage-key safe", name, got)
		}
	})
}
