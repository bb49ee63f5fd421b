// Package manifest persists the zix manifest as a JSON document.
package manifest

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/adapters/fs"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

// Store implements ports.ManifestStore on top of a single JSON file.
type Store struct {
	path     string
	lockPath string
	log      ports.Logger
}

// NewStore creates a Store for the manifest described by cfg.
func NewStore(cfg *domain.Config, log ports.Logger) *Store {
	return &Store{
		path:     cfg.ManifestPath,
		lockPath: cfg.LockPath(),
		log:      log,
	}
}

// Load reads and normalizes the manifest.
func (s *Store) Load() (*domain.Manifest, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.NewManifest(), nil
		}
		s.log.Error(zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", s.path))
		return domain.NewManifest(), nil
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, domain.ErrManifestDecodeFailed.Error()), "path", s.path))
		return domain.NewManifest(), nil
	}
	if doc == nil {
		s.log.Error(zerr.With(zerr.Wrap(errors.New("document is not an object"), domain.ErrManifestDecodeFailed.Error()), "path", s.path))
		return domain.NewManifest(), nil
	}

	m, warnings, err := domain.Normalize(doc)
	if err != nil {
		return nil, err
	}
	s.warn(warnings)

	return m, nil
}

// Save writes a normalized copy of m atomically. m itself is not modified.
func (s *Store) Save(m *domain.Manifest) error {
	doc := m.Clone()
	warnings, err := doc.Normalize()
	if err != nil {
		return err
	}
	s.warn(warnings)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}
	data = append(data, '\n')

	if err := fs.AtomicWriteFile(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Update applies fn to the freshly loaded manifest under the advisory lock
// and saves the result. Nothing is written when fn fails.
func (s *Store) Update(fn func(m *domain.Manifest) error) error {
	unlock, err := fs.Lock(s.lockPath)
	if err != nil {
		return err
	}
	defer unlock()

	m, err := s.Load()
	if err != nil {
		return err
	}

	if err := fn(m); err != nil {
		return err
	}

	return s.Save(m)
}

// Exists reports whether the manifest file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Path returns the manifest file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) warn(warnings []string) {
	for _, w := range warnings {
		s.log.Warn(w)
	}
}
