package store

import "sync"

// ModlogStore maps guild IDs to the channel receiving moderation audit embeds.
type ModlogStore struct {
	mu   sync.RWMutex
	path string
	data map[string]string
}

func NewModlogStore(path string) (*ModlogStore, error) {
	s := &ModlogStore{path: path, data: make(map[string]string)}
	if err := loadJSON(path, &s.data); err != nil {
		return nil, err
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return s, nil
}

func (s *ModlogStore) Set(guildID, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[guildID] = channelID
	return saveJSON(s.path, s.data)
}

func (s *ModlogStore) Channel(guildID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channelID, ok := s.data[guildID]
	return channelID, ok && channelID != ""
}
