package snipe

import (
	"testing"
	"time"
)

func TestCacheOverwrite(t *testing.T) {
	cache := NewCache()
	now := time.Now()

	cache.Put("c1", Snapshot{Content: "first", AuthorTag: "a#1", Time: now})
	cache.Put("c1", Snapshot{Content: "second", AuthorTag: "b#2", Time: now})
	cache.Put("c2", Snapshot{Content: "elsewhere", AuthorTag: "c#3", Time: now})

	snap, ok := cache.Get("c1")
	if !ok || snap.Content != "second" {
		t.Fatalf("expected second, got %q (%t)", snap.Content, ok)
	}
	snap, ok = cache.Get("c2")
	if !ok || snap.Content != "elsewhere" {
		t.Fatalf("c2 snapshot affected: %q (%t)", snap.Content, ok)
	}
}

func TestCacheGetDoesNotConsume(t *testing.T) {
	cache := NewCache()
	cache.Put("c1", Snapshot{Content: "kept"})

	for i := 0; i < 3; i++ {
		snap, ok := cache.Get("c1")
		if !ok || snap.Content != "kept" {
			t.Fatalf("read %d lost snapshot: %q (%t)", i, snap.Content, ok)
		}
	}
}

func TestCacheMiss(t *testing.T) {
	cache := NewCache()
	if _, ok := cache.Get("nope"); ok {
		t.Fatalf("expected miss")
	}
}
