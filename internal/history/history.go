// Package history keeps a local record of scaffolded projects.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

type Entry struct {
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Path      string    `json:"path"`
	Port      int       `json:"port"`
	Database  string    `json:"database"`
	CreatedAt time.Time `json:"created_at"`
}

func historyPath() string {
	home, _ := os.UserHomeDir()
	dir := filepath.Join(home, ".forgeweb")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history.json")
}

func Load() ([]Entry, error) {
	data, err := os.ReadFile(historyPath())
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt history file is not worth failing a run over.
		return []Entry{}, nil
	}
	return entries, nil
}

func Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(historyPath(), data, 0644)
}

// Add prepends a new entry so the most recent run lists first.
func Add(e Entry) error {
	entries, _ := Load()
	e.CreatedAt = time.Now()
	entries = append([]Entry{e}, entries...)
	return Save(entries)
}

// Prune drops entries older than the given number of days.
func Prune(days int) error {
	entries, _ := Load()
	cutoff := time.Now().AddDate(0, 0, -days)
	var kept []Entry
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	return Save(kept)
}
