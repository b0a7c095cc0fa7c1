package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avdeev-m/orderbot/internal/domain"
)

func TestStoreSetGetDelete(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(1)
	require.False(t, ok)

	conv := domain.NewConversation(1, 100)
	store.Set(1, conv)

	got, ok := store.Get(1)
	require.True(t, ok)
	require.Same(t, conv, got)
	require.Equal(t, domain.StepAwaitingName, got.Step)
	require.Equal(t, 1, store.Len())

	store.Delete(1)
	_, ok = store.Get(1)
	require.False(t, ok)
	require.Equal(t, 0, store.Len())
}

func TestStoreSetReplacesPrevious(t *testing.T) {
	store := NewStore()

	first := domain.NewConversation(7, 100)
	first.Step = domain.StepSelectingDay
	store.Set(7, first)

	second := domain.NewConversation(7, 100)
	store.Set(7, second)

	got, ok := store.Get(7)
	require.True(t, ok)
	require.Same(t, second, got)
	require.Equal(t, domain.StepAwaitingName, got.Step)
	require.Equal(t, 1, store.Len())
}

func TestStoreDeleteStale(t *testing.T) {
	store := NewStore()

	old := domain.NewConversation(1, 100)
	old.LastActivity = time.Now().Add(-time.Hour)
	store.Set(1, old)

	fresh := domain.NewConversation(2, 200)
	store.Set(2, fresh)

	removed := store.DeleteStale(30 * time.Minute)
	require.Equal(t, 1, removed)

	_, ok := store.Get(1)
	require.False(t, ok)
	_, ok = store.Get(2)
	require.True(t, ok)
}

func TestStoreDeleteStaleDisabled(t *testing.T) {
	store := NewStore()

	old := domain.NewConversation(1, 100)
	old.LastActivity = time.Now().Add(-24 * time.Hour)
	store.Set(1, old)

	require.Equal(t, 0, store.DeleteStale(0))
	_, ok := store.Get(1)
	require.True(t, ok)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Set(userID, domain.NewConversation(userID, userID*10))
			store.Get(userID)
			store.Delete(userID)
		}(int64(i))
	}
	wg.Wait()

	require.Equal(t, 0, store.Len())
}
