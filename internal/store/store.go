// Package store holds the three flat JSON files the bot persists between
// restarts: payment addresses, warnings, and mod-log channel bindings.
// Each store keeps the whole map in memory and rewrites its file on every
// mutation. Writes are not atomic; a crash mid-write can corrupt the file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// loadJSON reads path into out. A missing file is created with the current
// (default) contents of out; anything unparseable is an error, which callers
// treat as fatal at startup.
func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return saveJSON(path, out)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
