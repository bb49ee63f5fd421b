package nix

import (
	"context"

	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

// Flake app attributes exposed by the template.
const (
	appSwitch   = "#profile.switch"
	appRollback = "#profile.rollback"
	appBuild    = "#profile.build"
)

// Tool implements ports.BuildTool by running the nix CLI against the flake directory.
type Tool struct {
	executor ports.Executor
	nix      string
	dir      string
}

// NewTool creates a Tool for the layout described by cfg.
func NewTool(cfg *domain.Config, executor ports.Executor) *Tool {
	return &Tool{
		executor: executor,
		nix:      cfg.NixBinary,
		dir:      cfg.FlakeDir,
	}
}

// Available reports whether the nix binary is on the search path.
func (t *Tool) Available() bool {
	_, err := t.executor.LookPath(t.nix)
	return err == nil
}

// Lock runs "nix flake lock" in the flake directory.
func (t *Tool) Lock(ctx context.Context) (int, error) {
	return t.run(ctx, "flake", "lock")
}

// Build runs the profile.build app.
func (t *Tool) Build(ctx context.Context) (int, error) {
	return t.run(ctx, "run", "--impure", t.dir+appBuild)
}

// Apply runs the profile.switch app.
func (t *Tool) Apply(ctx context.Context) (int, error) {
	return t.run(ctx, "run", "--impure", t.dir+appSwitch)
}

// Rollback runs the profile.rollback app.
func (t *Tool) Rollback(ctx context.Context) (int, error) {
	return t.run(ctx, "run", t.dir+appRollback)
}

func (t *Tool) run(ctx context.Context, args ...string) (int, error) {
	return t.executor.Run(ctx, domain.Command{
		Name: t.nix,
		Args: args,
		Dir:  t.dir,
	})
}
