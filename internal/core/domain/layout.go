package domain

import "path/filepath"

const (
	// ZixDirName is the name of the per-user configuration directory under the XDG config home.
	ZixDirName = "zix"

	// ManifestFileName is the name of the manifest file.
	ManifestFileName = "zix.json"

	// LockFileSuffix is appended to the manifest path to form the advisory lock file.
	LockFileSuffix = ".lock"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// FlakeDirName is the name of the directory holding the generated flake.
	FlakeDirName = "flake"

	// FlakeFileName is the name of the generated build descriptor.
	FlakeFileName = "flake.nix"

	// PackagesLinkName is the name of the symlink inside the flake directory that points at the manifest.
	PackagesLinkName = "packages.json"

	// NixProfileLinkName is the name of the user's Nix profile symlink in the home directory.
	NixProfileLinkName = ".nix-profile"

	// ProfileMarker is the environment name the flake gives to the built profile.
	ProfileMarker = "zix-profile"

	// NixBinary is the default name of the nix executable.
	NixBinary = "nix"

	// NixStoreBinary is the default name of the nix-store executable.
	NixStoreBinary = "nix-store"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Config holds every filesystem location and external binary zix works with.
// It is passed to adapters explicitly so tests can point them at a temporary directory.
type Config struct {
	// ConfigDir is the per-user configuration directory.
	ConfigDir string
	// ManifestPath is the absolute path of the manifest file.
	ManifestPath string
	// FlakeDir is the directory holding flake.nix and the packages.json symlink.
	FlakeDir string
	// ProfileLink is the Nix profile symlink inspected by list.
	ProfileLink string
	// ProfileMarker must appear in the resolved profile path for it to count as a zix environment.
	ProfileMarker string
	// NixBinary is the nix executable name or path.
	NixBinary string
	// NixStoreBinary is the nix-store executable name or path.
	NixStoreBinary string
	// LockOnBuild refreshes flake.lock during build.
	LockOnBuild bool
}

// NewConfig returns the default configuration rooted at configDir and homeDir.
func NewConfig(configDir, homeDir string) *Config {
	return &Config{
		ConfigDir:      configDir,
		ManifestPath:   filepath.Join(configDir, ManifestFileName),
		FlakeDir:       filepath.Join(configDir, FlakeDirName),
		ProfileLink:    filepath.Join(homeDir, NixProfileLinkName),
		ProfileMarker:  ProfileMarker,
		NixBinary:      NixBinary,
		NixStoreBinary: NixStoreBinary,
		LockOnBuild:    true,
	}
}

// FlakePath returns the path of the generated flake.
func (c *Config) FlakePath() string {
	return filepath.Join(c.FlakeDir, FlakeFileName)
}

// PackagesLinkPath returns the path of the packages.json symlink.
func (c *Config) PackagesLinkPath() string {
	return filepath.Join(c.FlakeDir, PackagesLinkName)
}

// LockPath returns the path of the manifest's advisory lock file.
func (c *Config) LockPath() string {
	return c.ManifestPath + LockFileSuffix
}
