//go:build unix

package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/core/domain"
	"golang.org/x/sys/unix"
)

// Lock takes an exclusive advisory lock on path, creating the file when
// needed, and blocks until it is granted. The returned func releases it.
func Lock(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestLockFailed.Error())
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.FilePerm) //nolint:gosec // lock path is derived from config
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestLockFailed.Error())
	}

	for {
		err = unix.Flock(int(f.Fd()), unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		_ = f.Close()
		return nil, zerr.Wrap(err, domain.ErrManifestLockFailed.Error())
	}

	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
