package dedup

import (
	"context"
	"errors"
	"sync"

	logger "github.com/sirupsen/logrus"
)

// ErrAlreadySeen is returned by Admit when the key was admitted before.
var ErrAlreadySeen = errors.New("notification already processed")

// Store guards the notification pipeline against reprocessing. Admit
// performs an atomic check-and-insert: the first caller for a key wins,
// every later caller gets ErrAlreadySeen. Admission happens before any
// downstream processing, so a crash after Admit leaves the key marked
// seen with no trade taken; there is no automatic retry.
type Store interface {
	Admit(ctx context.Context, key, channel string) error
}

// MemoryStore keeps admitted keys for the process lifetime only. Growth
// is unbounded, matching the lifetime of the monitor feeds it serves.
type MemoryStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]struct{})}
}

func (s *MemoryStore) Admit(_ context.Context, key, channel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[key]; ok {
		return ErrAlreadySeen
	}
	s.seen[key] = struct{}{}

	logger.WithFields(map[string]interface{}{
		"key":     key,
		"channel": channel,
		"total":   len(s.seen),
	}).Debug("dedup key admitted")

	return nil
}

// Len reports how many keys have been admitted so far.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
