// Package config resolves the zix filesystem layout and settings.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the defaults.
const (
	EnvConfigDir  = "ZIX_CONFIG_DIR"
	EnvNixProfile = "ZIX_NIX_PROFILE"
	EnvNixBinary  = "ZIX_NIX_BIN"
	envXDGConfig  = "XDG_CONFIG_HOME"
)

// Loader implements ports.ConfigLoader.
// Precedence, lowest first: defaults, config.yaml, environment.
type Loader struct {
	getenv  func(string) string
	homeDir func() (string, error)
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{
		getenv:  os.Getenv,
		homeDir: os.UserHomeDir,
	}
}

// NewLoaderWithEnv creates a Loader with injected lookups.
func NewLoaderWithEnv(getenv func(string) string, homeDir func() (string, error)) *Loader {
	return &Loader{getenv: getenv, homeDir: homeDir}
}

// Load resolves the effective configuration.
func (l *Loader) Load() (*domain.Config, error) {
	home, homeErr := l.homeDir()

	configDir, err := l.configDir(home, homeErr)
	if err != nil {
		return nil, err
	}

	cfg := domain.NewConfig(configDir, home)

	fileCfg, err := readFile(filepath.Join(configDir, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		apply(cfg, fileCfg, home)
	}

	if v := l.getenv(EnvNixProfile); v != "" {
		cfg.ProfileLink = expandHome(v, home)
	}
	if v := l.getenv(EnvNixBinary); v != "" {
		cfg.NixBinary = v
		if fileCfg == nil || fileCfg.NixStoreBinary == "" {
			cfg.NixStoreBinary = siblingBinary(v, domain.NixStoreBinary)
		}
	}

	return cfg, nil
}

func (l *Loader) configDir(home string, homeErr error) (string, error) {
	if dir := l.getenv(EnvConfigDir); dir != "" {
		return filepath.Abs(dir)
	}
	if xdg := l.getenv(envXDGConfig); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, domain.ZixDirName), nil
	}
	if homeErr != nil || home == "" {
		err := homeErr
		if err == nil {
			err = errors.New("home directory is empty")
		}
		return "", zerr.Wrap(err, domain.ErrConfigDirFailed.Error())
	}
	return filepath.Join(home, ".config", domain.ZixDirName), nil
}

// readFile returns nil without error when the file does not exist.
func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the config directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &fc, nil
}

func apply(cfg *domain.Config, fc *FileConfig, home string) {
	if fc.NixBinary != "" {
		cfg.NixBinary = fc.NixBinary
		cfg.NixStoreBinary = siblingBinary(fc.NixBinary, domain.NixStoreBinary)
	}
	if fc.NixStoreBinary != "" {
		cfg.NixStoreBinary = fc.NixStoreBinary
	}
	if fc.ProfileLink != "" {
		cfg.ProfileLink = expandHome(fc.ProfileLink, home)
	}
	if fc.ProfileMarker != "" {
		cfg.ProfileMarker = fc.ProfileMarker
	}
	if fc.FlakeDir != "" {
		dir := expandHome(fc.FlakeDir, home)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cfg.ConfigDir, dir)
		}
		cfg.FlakeDir = dir
	}
	if fc.LockOnBuild != nil {
		cfg.LockOnBuild = *fc.LockOnBuild
	}
}

// siblingBinary places name next to bin when bin is a path, so a custom nix
// install keeps using its own nix-store.
func siblingBinary(bin, name string) string {
	if !strings.ContainsRune(bin, filepath.Separator) {
		return name
	}
	return filepath.Join(filepath.Dir(bin), name)
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
