package ports

import "go.trai.ch/zix/internal/core/domain"

// ManifestStore loads and atomically persists the manifest document.
//
// Every call reads the file afresh; nothing is cached between calls.
//
//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Load reads and normalizes the manifest. A missing file yields the canonical empty
	// manifest without touching storage. An unreadable or undecodable file is reported and
	// replaced by the canonical manifest. Only ErrManifestInvalid is returned as an error.
	Load() (*domain.Manifest, error)

	// Save atomically writes a normalized copy of the manifest. The argument is not modified.
	Save(manifest *domain.Manifest) error

	// Update runs load, normalize, fn, normalize and save while holding the manifest lock.
	// If fn returns an error nothing is written and that error is returned.
	Update(fn func(manifest *domain.Manifest) error) error

	// Exists reports whether the manifest file is present.
	Exists() bool

	// Path returns the manifest file path.
	Path() string
}
