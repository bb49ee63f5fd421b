// Package fs provides the filesystem primitives shared by the manifest store
// and the flake writer.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/core/domain"
)

// syncFile flushes f to stable storage. Replaced in tests.
var syncFile = (*os.File).Sync

// AtomicWriteFile writes data to a temp sibling of path, flushes it, sets
// domain.FilePerm and renames it over path. The temp file is removed on every failure path.
func AtomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmpFile.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}

	if err := syncFile(tmpFile); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to sync temp file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set file permissions")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to replace file")
	}
	renamed = true

	syncDir(dir)
	return nil
}

// syncDir makes the rename durable. Not every platform can fsync a directory,
// so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir) //nolint:gosec // dir is the parent of a path we just wrote
	if err != nil {
		return
	}
	_ = syncFile(d)
	_ = d.Close()
}
