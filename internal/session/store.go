// Package session keeps per-user intake conversations in process memory.
// Nothing here survives a restart; the record store only sees finished orders.
package session

import (
	"sync"
	"time"

	"github.com/avdeev-m/orderbot/internal/domain"
)

type Store struct {
	mu            sync.RWMutex
	conversations map[int64]*domain.Conversation
}

func NewStore() *Store {
	return &Store{
		conversations: make(map[int64]*domain.Conversation),
	}
}

// Get returns the conversation for a user if one is in flight.
func (s *Store) Get(userID int64) (*domain.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[userID]
	return conv, ok
}

// Set stores the conversation for a user, replacing any previous one.
func (s *Store) Set(userID int64, conv *domain.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[userID] = conv
}

// Delete removes the conversation for a user.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, userID)
}

// Len reports the number of in-flight conversations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.conversations)
}

// DeleteStale drops conversations idle for longer than ttl and returns how
// many were removed. A ttl of zero or less removes nothing.
func (s *Store) DeleteStale(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for userID, conv := range s.conversations {
		if conv.LastActivity.Before(cutoff) {
			delete(s.conversations, userID)
			removed++
		}
	}
	return removed
}
