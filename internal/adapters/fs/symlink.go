package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/core/domain"
)

// LinkState describes what EnsureSymlink found at the link path.
type LinkState int

const (
	// LinkOK means the link already pointed at the target.
	LinkOK LinkState = iota
	// LinkCreated means nothing existed and the link was created.
	LinkCreated
	// LinkReplacedFile means a non-symlink was removed and the link created.
	LinkReplacedFile
	// LinkRetargeted means a symlink to another target was replaced.
	LinkRetargeted
)

// EnsureSymlink makes link a symlink to target.
func EnsureSymlink(target, link string) (LinkState, error) {
	state := LinkCreated

	info, err := os.Lstat(link)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		current, readErr := os.Readlink(link)
		if readErr == nil && current == target {
			return LinkOK, nil
		}
		state = LinkRetargeted
	case err == nil:
		state = LinkReplacedFile
	case !errors.Is(err, iofs.ErrNotExist):
		return 0, zerr.With(zerr.Wrap(err, domain.ErrSymlinkFailed.Error()), "path", link)
	}

	if state != LinkCreated {
		if err := os.RemoveAll(link); err != nil {
			return 0, zerr.With(zerr.Wrap(err, domain.ErrSymlinkFailed.Error()), "path", link)
		}
	}

	if err := os.MkdirAll(filepath.Dir(link), domain.DirPerm); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrSymlinkFailed.Error()), "path", link)
	}

	if err := os.Symlink(target, link); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrSymlinkFailed.Error()), "path", link)
	}

	return state, nil
}
