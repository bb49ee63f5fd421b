// Package nix drives the Nix CLI through the flake zix generates.
package nix

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/adapters/fs"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

// flakeTemplate is static: the flake reads the manifest through packages.json at evaluation time.
//
//go:embed flake_template.nix
var flakeTemplate string

// Flake implements ports.BuildDescriptor.
type Flake struct {
	path         string
	linkPath     string
	manifestPath string
	log          ports.Logger
}

// NewFlake creates a Flake for the layout described by cfg.
func NewFlake(cfg *domain.Config, log ports.Logger) *Flake {
	manifestPath := cfg.ManifestPath
	if abs, err := filepath.Abs(manifestPath); err == nil {
		manifestPath = abs
	}

	return &Flake{
		path:         cfg.FlakePath(),
		linkPath:     cfg.PackagesLinkPath(),
		manifestPath: manifestPath,
		log:          log,
	}
}

// Ensure writes the template when the flake is missing or force is set and
// keeps packages.json pointing at the manifest.
func (f *Flake) Ensure(force bool) (bool, error) {
	wrote := false

	if force || !f.Exists() {
		if err := fs.AtomicWriteFile(f.path, []byte(flakeTemplate)); err != nil {
			return false, zerr.With(zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error()), "path", f.path)
		}
		f.log.Ok("Created/updated flake at " + f.path)
		wrote = true
	} else {
		f.log.Ok("Flake already exists")
	}

	return wrote, f.ensureLink()
}

func (f *Flake) ensureLink() error {
	state, err := fs.EnsureSymlink(f.manifestPath, f.linkPath)
	if err != nil {
		return err
	}

	switch state {
	case fs.LinkOK:
		return nil
	case fs.LinkReplacedFile:
		f.log.Warn(fmt.Sprintf("%s exists but is not a symlink, removing", f.linkPath))
	case fs.LinkRetargeted:
		f.log.Warn(domain.PackagesLinkName + " symlink points elsewhere, updating")
	case fs.LinkCreated:
	}

	f.log.Ok(fmt.Sprintf("Created symlink: %s -> %s", f.linkPath, f.manifestPath))
	return nil
}

// Exists reports whether flake.nix is present.
func (f *Flake) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Template returns the static flake source.
func (f *Flake) Template() string {
	return flakeTemplate
}
