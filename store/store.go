package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/artfield/studio"
)

// ErrNoRecord indicates a Load with nothing saved yet.
var ErrNoRecord = errors.New("store: no batch record found")

// Record is the persistent summary of one batch: every artwork's
// metadata in order plus every skipped seed. Fields and images are not
// part of the record — they are reproducible from the seeds, and the
// persistence collaborator owns their encoding.
type Record struct {
	SeedStart int64             `json:"seed_start"`
	Requested int               `json:"n_artworks"`
	Method    string            `json:"generation_method"`
	Artworks  []studio.Metadata `json:"artworks"`
	Failures  []studio.Failure  `json:"failures,omitempty"`
}

// NewRecord summarizes a finished batch.
func NewRecord(b *studio.Batch) *Record {
	return &Record{
		SeedStart: b.SeedStart,
		Requested: b.Requested,
		Method:    b.Method,
		Artworks:  b.Metadatas(),
		Failures:  b.Failures,
	}
}

// Store is the injected persistence boundary for batch records.
type Store interface {
	Save(*Record) error
	Load() (*Record, error)
}

// FileStore persists one Record as indented JSON at a fixed path.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Save writes rec, replacing any previous record.
func (fs *FileStore) Save(rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode record: %w", err)
	}
	if err := os.WriteFile(fs.Path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", fs.Path, err)
	}

	return nil
}

// Load reads the saved record, or ErrNoRecord when none exists.
func (fs *FileStore) Load() (*Record, error) {
	data, err := os.ReadFile(fs.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", fs.Path, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", fs.Path, err)
	}

	return &rec, nil
}
