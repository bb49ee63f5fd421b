package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zix/internal/adapters/manifest"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const canonical = `{
  "current_profile": "default",
  "profiles": {
    "default": {
      "packages": []
    }
  }
}
`

func newStore(t *testing.T) (*manifest.Store, *mocks.MockLogger, *domain.Config) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	cfg := domain.NewConfig(t.TempDir(), t.TempDir())
	return manifest.NewStore(cfg, log), log, cfg
}

func writeManifest(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestStore_LoadMissing(t *testing.T) {
	store, _, cfg := newStore(t)

	m, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewManifest(), m)
	assert.False(t, store.Exists())
	assert.NoFileExists(t, cfg.ManifestPath, "loading must not create the file")
}

func TestStore_SaveCanonical(t *testing.T) {
	store, _, cfg := newStore(t)

	require.NoError(t, store.Save(domain.NewManifest()))

	data, err := os.ReadFile(cfg.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, canonical, string(data))

	info, err := os.Stat(cfg.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	assert.True(t, store.Exists())
	assert.Equal(t, cfg.ManifestPath, store.Path())
}

func TestStore_RoundTrip(t *testing.T) {
	store, _, _ := newStore(t)

	m := &domain.Manifest{
		CurrentProfile: "work",
		Profiles: map[string]*domain.Profile{
			"work":    {Packages: []string{"zsh", " git ", "zsh", ""}},
			"default": {Packages: []string{"hello"}},
		},
	}
	require.NoError(t, store.Save(m))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "work", loaded.CurrentProfile)
	assert.Equal(t, []string{"git", "zsh"}, loaded.Profiles["work"].Packages)
	assert.Equal(t, []string{"hello"}, loaded.Profiles["default"].Packages)
	want := m.Clone()
	_, err = want.Normalize()
	require.NoError(t, err)
	assert.Equal(t, want, loaded, "load(save(m)) equals normalize(m)")
}

func TestStore_SaveLeavesArgumentUntouched(t *testing.T) {
	store, log, _ := newStore(t)

	m := &domain.Manifest{
		CurrentProfile: "ghost",
		Profiles: map[string]*domain.Profile{
			"work": {Packages: []string{"zsh", "git", "zsh"}},
		},
	}
	before := m.Clone()

	log.EXPECT().Warn("Current profile 'ghost' doesn't exist, switching to 'default'")
	require.NoError(t, store.Save(m))

	assert.Equal(t, before, m)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile, loaded.CurrentProfile)
	assert.Equal(t, []string{"git", "zsh"}, loaded.Profiles["work"].Packages)
}

func TestStore_LoadUnknownCurrentProfile(t *testing.T) {
	store, log, cfg := newStore(t)
	writeManifest(t, cfg.ManifestPath, `{"current_profile":"ghost","profiles":{"default":{"packages":["x"]}}}`)

	log.EXPECT().Warn("Current profile 'ghost' doesn't exist, switching to 'default'")

	m, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultProfile, m.CurrentProfile)
	assert.Equal(t, []string{"x"}, m.Profiles["default"].Packages)
}

func TestStore_LoadCorrupted(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{not json"},
		{name: "array", content: `["git"]`},
		{name: "null", content: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, log, cfg := newStore(t)
			writeManifest(t, cfg.ManifestPath, tt.content)

			log.EXPECT().Error(gomock.Any())

			m, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, domain.NewManifest(), m)
		})
	}
}

func TestStore_LoadInvalid(t *testing.T) {
	store, _, cfg := newStore(t)
	writeManifest(t, cfg.ManifestPath, `{"profiles":{"default":{"packages":["bad name"]}}}`)

	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestInvalid)
}

func TestStore_UpdateAddTwice(t *testing.T) {
	store, _, _ := newStore(t)

	add := func(m *domain.Manifest) error {
		return m.AddPackage(m.CurrentProfile, "git")
	}

	require.NoError(t, store.Update(add))
	err := store.Update(add)
	assert.ErrorIs(t, err, domain.ErrPackageExists)

	m, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"git"}, m.Current().Packages)
}

func TestStore_UpdateSorted(t *testing.T) {
	store, _, _ := newStore(t)

	for _, pkg := range []string{"zsh", "git"} {
		require.NoError(t, store.Update(func(m *domain.Manifest) error {
			return m.AddPackage(m.CurrentProfile, pkg)
		}))
	}

	m, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "zsh"}, m.Current().Packages)
}

func TestStore_UpdateRemoveCurrentProfile(t *testing.T) {
	store, _, _ := newStore(t)

	require.NoError(t, store.Update(func(m *domain.Manifest) error {
		if err := m.CreateProfile("work"); err != nil {
			return err
		}
		return m.SwitchProfile("work")
	}))

	var switched bool
	require.NoError(t, store.Update(func(m *domain.Manifest) error {
		var err error
		switched, err = m.RemoveProfile("work")
		return err
	}))

	m, err := store.Load()
	require.NoError(t, err)
	assert.True(t, switched)
	assert.Equal(t, domain.DefaultProfile, m.CurrentProfile)
	assert.False(t, m.HasProfile("work"))
}

func TestStore_UpdateErrorWritesNothing(t *testing.T) {
	store, _, cfg := newStore(t)
	require.NoError(t, store.Save(domain.NewManifest()))

	boom := errors.New("boom")
	err := store.Update(func(m *domain.Manifest) error {
		m.Profiles["default"].Packages = append(m.Profiles["default"].Packages, "git")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(cfg.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, canonical, string(data))
}

func TestStore_UpdateReplacesCorruptedFile(t *testing.T) {
	store, log, cfg := newStore(t)
	writeManifest(t, cfg.ManifestPath, "garbage")

	log.EXPECT().Error(gomock.Any())

	require.NoError(t, store.Update(func(m *domain.Manifest) error {
		return m.AddPackage(m.CurrentProfile, "hello")
	}))

	data, err := os.ReadFile(cfg.ManifestPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hello"`)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	store, _, cfg := newStore(t)

	require.NoError(t, store.Save(domain.NewManifest()))
	require.NoError(t, store.Save(domain.NewManifest()))

	entries, err := os.ReadDir(cfg.ConfigDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{domain.ManifestFileName}, names)
}
