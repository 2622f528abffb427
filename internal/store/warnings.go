package store

import (
	"sync"
	"time"
)

// Warning is immutable once recorded. Time is unix milliseconds, matching
// the on-disk format the bot has always written.
type Warning struct {
	Reason string `json:"reason"`
	By     string `json:"by"`
	Time   int64  `json:"time"`
}

func NewWarning(reason, by string) Warning {
	return Warning{Reason: reason, By: by, Time: time.Now().UnixMilli()}
}

// WarningStore maps user IDs to their warning history in insertion order.
type WarningStore struct {
	mu   sync.RWMutex
	path string
	data map[string][]Warning
}

func NewWarningStore(path string) (*WarningStore, error) {
	s := &WarningStore{path: path, data: make(map[string][]Warning)}
	if err := loadJSON(path, &s.data); err != nil {
		return nil, err
	}
	if s.data == nil {
		s.data = make(map[string][]Warning)
	}
	return s, nil
}

func (s *WarningStore) Add(userID string, warning Warning) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = append(s.data[userID], warning)
	return saveJSON(s.path, s.data)
}

func (s *WarningStore) List(userID string) []Warning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.data[userID]
	if len(stored) == 0 {
		return nil
	}
	out := make([]Warning, len(stored))
	copy(out, stored)
	return out
}

// Clear resets one user's list to empty without touching other users.
func (s *WarningStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = []Warning{}
	return saveJSON(s.path, s.data)
}
