// Package snipe keeps the last deleted message per channel so it can be
// recalled on demand. One slot per channel, newest deletion wins. Entries are
// never evicted, which is fine for the short process lifetimes this bot sees
// but is a known limitation for very long uptimes.
package snipe

import (
	"sync"
	"time"
)

type Snapshot struct {
	Content   string
	AuthorTag string
	AvatarURL string
	ImageURL  string
	Time      time.Time
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]Snapshot
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Snapshot)}
}

// Put replaces any prior snapshot for the channel.
func (c *Cache) Put(channelID string, snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[channelID] = snap
}

// Get is a pure read: the snapshot stays in place until the next deletion.
func (c *Cache) Get(channelID string) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.entries[channelID]
	return snap, ok
}
