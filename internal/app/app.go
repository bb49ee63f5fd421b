// Package app implements the zix use cases on top of the core ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

// App orchestrates the manifest store, the flake and the nix CLI.
//
// Validation and state problems are reported through the logger and do not
// fail the command. Errors are returned only for an invalid manifest, for I/O
// failures while persisting, and as *domain.ExitError for external commands.
type App struct {
	cfg       *domain.Config
	store     ports.ManifestStore
	flake     ports.BuildDescriptor
	tool      ports.BuildTool
	inspector ports.ProfileInspector
	logger    ports.Logger
	out       io.Writer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	store ports.ManifestStore,
	flake ports.BuildDescriptor,
	tool ports.BuildTool,
	inspector ports.ProfileInspector,
	log ports.Logger,
) *App {
	return &App{
		cfg:       cfg,
		store:     store,
		flake:     flake,
		tool:      tool,
		inspector: inspector,
		logger:    log,
		out:       os.Stdout,
	}
}

// WithOutput redirects plain listing output.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Init creates the manifest when it is missing and lays down the flake.
func (a *App) Init() error {
	if a.store.Exists() {
		a.logger.Warn("Manifest already exists; no changes made.")
	} else {
		if err := a.store.Save(domain.NewManifest()); err != nil {
			return err
		}
		a.logger.Ok(fmt.Sprintf("Created %s with default profile.", domain.ManifestFileName))
		a.logger.Info("Manifest: " + a.store.Path())
	}

	_, err := a.flake.Ensure(false)
	return err
}

// report logs a user-facing failure that does not abort the process.
func (a *App) report(format string, args ...any) {
	a.logger.Error(zerr.New(fmt.Sprintf(format, args...)))
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func (a *App) blank() {
	_, _ = fmt.Fprintln(a.out)
}

// exitResult turns the outcome of an external command into the error main
// maps to the process exit code.
func exitResult(command string, code int, err error) error {
	switch {
	case err == nil && code == 0:
		return nil
	case err == nil, errors.Is(err, domain.ErrCommandNotFound), errors.Is(err, context.Canceled):
		return &domain.ExitError{Command: command, Code: code}
	default:
		return err
	}
}
