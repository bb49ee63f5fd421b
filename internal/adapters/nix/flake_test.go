package nix_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zix/internal/adapters/nix"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newFlake(t *testing.T) (*nix.Flake, *mocks.MockLogger, *domain.Config) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	cfg := domain.NewConfig(t.TempDir(), t.TempDir())
	return nix.NewFlake(cfg, log), log, cfg
}

func TestFlake_Template(t *testing.T) {
	f, _, _ := newFlake(t)

	g := goldie.New(t)
	g.Assert(t, "flake_template", []byte(f.Template()))

	assert.Contains(t, f.Template(), `name = "zix-profile";`)
	assert.Contains(t, f.Template(), "./packages.json")
	assert.NotContains(t, f.Template(), "zix-data")
}

func TestFlake_EnsureCreates(t *testing.T) {
	f, log, cfg := newFlake(t)

	log.EXPECT().Ok("Created/updated flake at " + cfg.FlakePath())
	log.EXPECT().Ok("Created symlink: " + cfg.PackagesLinkPath() + " -> " + cfg.ManifestPath)

	wrote, err := f.Ensure(false)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.True(t, f.Exists())

	data, err := os.ReadFile(cfg.FlakePath())
	require.NoError(t, err)
	assert.Equal(t, f.Template(), string(data))

	target, err := os.Readlink(cfg.PackagesLinkPath())
	require.NoError(t, err)
	assert.Equal(t, cfg.ManifestPath, target)

	info, err := os.Stat(cfg.FlakePath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFlake_EnsureIdempotent(t *testing.T) {
	f, log, cfg := newFlake(t)

	log.EXPECT().Ok(gomock.Any()).Times(2)
	_, err := f.Ensure(false)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(cfg.FlakePath(), past, past))

	log.EXPECT().Ok("Flake already exists")
	wrote, err := f.Ensure(false)
	require.NoError(t, err)
	assert.False(t, wrote)

	info, err := os.Stat(cfg.FlakePath())
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "flake must not be rewritten without force")

	log.EXPECT().Ok("Created/updated flake at " + cfg.FlakePath())
	wrote, err = f.Ensure(true)
	require.NoError(t, err)
	assert.True(t, wrote)

	info, err = os.Stat(cfg.FlakePath())
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(past), "force must execute the write path")

	data, err := os.ReadFile(cfg.FlakePath())
	require.NoError(t, err)
	assert.Equal(t, f.Template(), string(data))
}

func TestFlake_EnsureReplacesRegularFile(t *testing.T) {
	f, log, cfg := newFlake(t)

	require.NoError(t, os.MkdirAll(cfg.FlakeDir, 0o750))
	require.NoError(t, os.WriteFile(cfg.PackagesLinkPath(), []byte("{}"), 0o600))

	gomock.InOrder(
		log.EXPECT().Ok("Created/updated flake at "+cfg.FlakePath()),
		log.EXPECT().Warn(cfg.PackagesLinkPath()+" exists but is not a symlink, removing"),
		log.EXPECT().Ok("Created symlink: "+cfg.PackagesLinkPath()+" -> "+cfg.ManifestPath),
	)

	_, err := f.Ensure(false)
	require.NoError(t, err)

	target, err := os.Readlink(cfg.PackagesLinkPath())
	require.NoError(t, err)
	assert.Equal(t, cfg.ManifestPath, target)
}

func TestFlake_EnsureRetargetsSymlink(t *testing.T) {
	f, log, cfg := newFlake(t)

	require.NoError(t, os.MkdirAll(cfg.FlakeDir, 0o750))
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "elsewhere.json"), cfg.PackagesLinkPath()))

	gomock.InOrder(
		log.EXPECT().Ok("Created/updated flake at "+cfg.FlakePath()),
		log.EXPECT().Warn("packages.json symlink points elsewhere, updating"),
		log.EXPECT().Ok("Created symlink: "+cfg.PackagesLinkPath()+" -> "+cfg.ManifestPath),
	)

	_, err := f.Ensure(false)
	require.NoError(t, err)

	target, err := os.Readlink(cfg.PackagesLinkPath())
	require.NoError(t, err)
	assert.Equal(t, cfg.ManifestPath, target)
}
