package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/opskit/teamdesk/internal/config"
	"github.com/opskit/teamdesk/internal/domain"
	"github.com/opskit/teamdesk/pkg/util"
)

// Store persists the whole Document as a single JSON file. Every mutation
// rewrites the file in full; there are no partial updates and no caching.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// NewStore opens the document file, seeding an empty document when the file
// does not exist yet.
func NewStore(cfg config.StoreConfig, logger *zap.Logger) (*Store, error) {
	store := &Store{path: cfg.Path, logger: logger}

	if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		empty := domain.Document{}
		empty.Normalize()
		if err := store.write(empty); err != nil {
			return nil, err
		}
		logger.Info("seeded empty document", zap.String("path", cfg.Path))
	} else if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}

	return store, nil
}

// Load reads the persisted document in full.
func (s *Store) Load() (domain.Document, error) {
	var doc domain.Document
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return doc, util.NewStoreError(err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, util.NewStoreError(err)
	}
	doc.Normalize()
	return doc, nil
}

// Save overwrites the persisted document in full. The write goes to a
// temporary file first and is renamed into place, so a concurrent Load never
// observes a partial write.
func (s *Store) Save(doc domain.Document) error {
	if err := s.write(doc); err != nil {
		return util.NewStoreError(err)
	}
	return nil
}

// View runs fn with the current document while holding the store lock.
func (s *Store) View(fn func(domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn with the current document while holding the store lock and
// persists the result only when fn succeeds. Holding the lock across the
// whole load-validate-mutate-save cycle is what keeps concurrent requests
// from racing on id assignment.
func (s *Store) Update(fn func(*domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.Save(doc)
}

// Ping verifies the document can be read, for readiness checks.
func (s *Store) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.Load()
	return err
}

func (s *Store) write(doc domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".operations-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
