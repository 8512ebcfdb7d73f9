package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrNotFound indicates no record exists with the requested ID.
var ErrNotFound = errors.New("history record not found")

// Kind identifies what a record was generated for.
type Kind string

// Record kinds.
const (
	KindExplain Kind = "explain"
	KindCommit  Kind = "commit"
	KindPR      Kind = "pr"
)

// Record is one stored generation.
type Record struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Model     string    `json:"model"`
	Branch    string    `json:"branch,omitempty"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists records as JSON files.
type Store struct {
	baseDir string
}

// DefaultDir returns the default history location under the user home.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "gas", "history"), nil
}

// NewStore creates a store rooted at baseDir, creating it if missing.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, err
	}
	return &Store{baseDir: baseDir}, nil
}

// Append stores a record, assigning an ID and timestamp if unset.
// Returns the stored record.
func (s *Store) Append(rec Record) (Record, error) {
	if rec.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return Record{}, fmt.Errorf("generate record ID: %w", err)
		}
		rec.ID = id
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Record{}, err
	}

	name := rec.CreatedAt.Format("20060102T150405") + "-" + rec.ID + ".json"
	if err := os.WriteFile(filepath.Join(s.baseDir, name), data, 0o600); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns records newest-first. limit <= 0 means all.
func (s *Store) List(limit int) ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue // Skip corrupt records rather than failing the listing
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (Record, error) {
	records, err := s.List(0)
	if err != nil {
		return Record{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
