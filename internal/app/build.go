package app

import (
	"context"
	"fmt"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Force rewrites flake.nix even when it exists.
	Force bool
	// Show prints the flake template.
	Show bool
}

// Build writes the flake, refreshes its lock file and builds the environment
// of the current profile.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	m, err := a.store.Load()
	if err != nil {
		return err
	}

	if _, err := a.flake.Ensure(opts.Force); err != nil {
		return err
	}

	available := a.tool.Available()
	switch {
	case !available:
		a.logger.Warn("nix CLI not found; skipping lock")
	case a.cfg.LockOnBuild:
		if code, err := a.tool.Lock(ctx); err == nil && code == 0 {
			a.logger.Ok("Updated flake.lock")
		} else {
			a.logger.Warn("Could not update flake.lock; continuing")
		}
	}

	if opts.Show {
		a.printf("----- flake.nix -----\n%s---------------------\n", a.flake.Template())
	}

	if !available {
		return nil
	}

	a.logger.Info(fmt.Sprintf("Building profile '%s'...", m.CurrentProfile))
	code, err := a.tool.Build(ctx)
	return exitResult("build", code, err)
}

// Apply switches the user profile to the environment of the current profile.
func (a *App) Apply(ctx context.Context) error {
	if !a.ready("apply") {
		return nil
	}

	m, err := a.store.Load()
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Applying profile '%s'...", m.CurrentProfile))
	code, err := a.tool.Apply(ctx)
	return exitResult("apply", code, err)
}

// Rollback reverts the user profile to its previous generation.
func (a *App) Rollback(ctx context.Context) error {
	if !a.ready("rollback") {
		return nil
	}

	a.logger.Info("Rolling back...")
	code, err := a.tool.Rollback(ctx)
	return exitResult("rollback", code, err)
}

// ready reports whether the flake exists and nix can be found.
func (a *App) ready(action string) bool {
	if !a.flake.Exists() {
		a.report("Flake does not exist. Run `zix build` first.")
		return false
	}
	if !a.tool.Available() {
		a.report("nix CLI not found; cannot %s.", action)
		return false
	}
	return true
}
