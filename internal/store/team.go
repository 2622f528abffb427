package store

import (
	"fmt"
	"sync"
)

// AddressKinds are the payment rails a team member can register.
var AddressKinds = []string{"upi", "ltc", "usdt"}

func ValidKind(kind string) bool {
	for _, k := range AddressKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// TeamStore maps user IDs to their payment addresses, one address per kind.
type TeamStore struct {
	mu   sync.RWMutex
	path string
	data map[string]map[string]string
}

func NewTeamStore(path string) (*TeamStore, error) {
	s := &TeamStore{path: path, data: make(map[string]map[string]string)}
	if err := loadJSON(path, &s.data); err != nil {
		return nil, err
	}
	if s.data == nil {
		s.data = make(map[string]map[string]string)
	}
	return s, nil
}

// SetAddress overwrites the address for one kind, leaving the user's other
// kinds untouched, and persists the whole store.
func (s *TeamStore) SetAddress(userID, kind, address string) error {
	if !ValidKind(kind) {
		return fmt.Errorf("unknown address kind %q", kind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[userID] == nil {
		s.data[userID] = make(map[string]string)
	}
	s.data[userID][kind] = address
	return saveJSON(s.path, s.data)
}

func (s *TeamStore) Address(userID, kind string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	addr, ok := s.data[userID][kind]
	return addr, ok && addr != ""
}

// Addresses returns a copy of every address stored for userID.
func (s *TeamStore) Addresses(userID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.data[userID]
	if len(stored) == 0 {
		return nil
	}
	out := make(map[string]string, len(stored))
	for kind, addr := range stored {
		out[kind] = addr
	}
	return out
}
