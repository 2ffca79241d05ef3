// Package store persists the application state as a single JSON document,
// always read and written wholesale.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
)

type Store struct {
	mu   sync.Mutex
	path string
	log  *logger.Logger
}

// Open prepares a store backed by the JSON file at path. The file is not
// touched until the first Load or Save.
func Open(path string) *Store {
	return &Store{
		path: path,
		log:  logger.Default().WithPrefix("store"),
	}
}

// Load reads the whole document from disk. A missing, unreadable, or
// corrupt file is never fatal: it logs a warning and returns the seeded
// default state instead.
func (s *Store) Load() *models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() *models.State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("no data file at %s, starting from the default roadmap", s.path)
		} else {
			s.log.Warn("could not read %s: %v, starting fresh", s.path, err)
		}
		return DefaultState(time.Now().UTC())
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn("could not parse %s: %v, starting fresh", s.path, err)
		return DefaultState(time.Now().UTC())
	}
	return &state
}

// Save writes the whole document back to disk, stamping its update time.
// The write goes through a temp file and rename so a crash mid-write cannot
// truncate the previous document.
func (s *Store) Save(state *models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(state)
}

func (s *Store) save(state *models.State) error {
	state.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		s.log.Error("failed to encode state: %v", err)
		return errors.NewInternalError(err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Error("failed to create data directory %s: %v", dir, err)
		return errors.NewInternalError(err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		s.log.Error("failed to create temp file: %v", err)
		return errors.NewInternalError(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.log.Error("failed to write state: %v", err)
		return errors.NewInternalError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		s.log.Error("failed to close temp file: %v", err)
		return errors.NewInternalError(err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		s.log.Error("failed to replace %s: %v", s.path, err)
		return errors.NewInternalError(err)
	}

	s.log.Debug("saved state to %s (%d bytes)", s.path, len(data))
	return nil
}

// Update runs fn over the current document and saves the result, all under
// the store lock, so background jobs and handlers cannot interleave their
// read-modify-write cycles.
func (s *Store) Update(fn func(*models.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()
	if err := fn(state); err != nil {
		return err
	}
	if err := s.save(state); err != nil {
		return fmt.Errorf("saving after update: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}
