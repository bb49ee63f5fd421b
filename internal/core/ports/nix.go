package ports

import (
	"context"

	"go.trai.ch/zix/internal/core/domain"
)

//go:generate mockgen -source=nix.go -destination=mocks/mock_nix.go -package=mocks

// BuildDescriptor maintains the generated flake and its packages.json link to the manifest.
type BuildDescriptor interface {
	// Ensure writes the flake template when it is absent or force is set, and makes
	// packages.json a symlink to the manifest. It reports whether the flake was written.
	Ensure(force bool) (bool, error)

	// Exists reports whether the flake file is present.
	Exists() bool

	// Template returns the static flake source.
	Template() string
}

// BuildTool invokes the external package manager against the flake.
// Output streams to the terminal; exit codes are returned to the caller.
type BuildTool interface {
	// Available reports whether the nix binary is on the search path.
	Available() bool

	// Lock refreshes flake.lock.
	Lock(ctx context.Context) (int, error)

	// Build builds the profile environment.
	Build(ctx context.Context) (int, error)

	// Apply switches the user profile to the built environment.
	Apply(ctx context.Context) (int, error)

	// Rollback reverts the user profile to its previous generation.
	Rollback(ctx context.Context) (int, error)
}

// ProfileInspector reports what the active Nix environment has installed.
type ProfileInspector interface {
	// InstalledPackages never fails: any problem yields domain.Unavailable().
	InstalledPackages(ctx context.Context) domain.InstalledSet
}
