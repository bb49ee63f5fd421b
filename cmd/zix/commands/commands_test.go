package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zix/cmd/zix/commands"
	"go.trai.ch/zix/internal/app"
	"go.trai.ch/zix/internal/build"
)

// mockApp records every call as "method arg...".
type mockApp struct {
	calls     []string
	buildOpts app.BuildOptions
	err       error
}

func (m *mockApp) record(call string, args ...string) error {
	for _, a := range args {
		call += " " + a
	}
	m.calls = append(m.calls, call)
	return m.err
}

func (m *mockApp) Init() error { return m.record("Init") }
func (m *mockApp) AddPackages(pkgs []string) error { return m.record("AddPackages", pkgs...) }
func (m *mockApp) RemovePackages(pkgs []string) error { return m.record("RemovePackages", pkgs...) }
func (m *mockApp) List(_ context.Context) error { return m.record("List") }
func (m *mockApp) ListProfiles() error { return m.record("ListProfiles") }
func (m *mockApp) CreateProfile(name string) error { return m.record("CreateProfile", name) }
func (m *mockApp) SwitchProfile(name string) error { return m.record("SwitchProfile", name) }
func (m *mockApp) RemoveProfile(name string) error { return m.record("RemoveProfile", name) }
func (m *mockApp) Apply(_ context.Context) error { return m.record("Apply") }
func (m *mockApp) Rollback(_ context.Context) error { return m.record("Rollback") }

func (m *mockApp) Build(_ context.Context, opts app.BuildOptions) error {
	m.buildOpts = opts
	return m.record("Build")
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Routing(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"init"}, want: "Init"},
		{args: []string{"add", "git", "vim"}, want: "AddPackages git vim"},
		{args: []string{"remove", "git"}, want: "RemovePackages git"},
		{args: []string{"rm", "git", "vim"}, want: "RemovePackages git vim"},
		{args: []string{"list"}, want: "List"},
		{args: []string{"profile", "list"}, want: "ListProfiles"},
		{args: []string{"profile", "add", "work"}, want: "CreateProfile work"},
		{args: []string{"profile", "create", "work"}, want: "CreateProfile work"},
		{args: []string{"profile", "switch", "work"}, want: "SwitchProfile work"},
		{args: []string{"profile", "remove", "work"}, want: "RemoveProfile work"},
		{args: []string{"profile-list"}, want: "ListProfiles"},
		{args: []string{"profile-create", "work"}, want: "CreateProfile work"},
		{args: []string{"profile-switch", "work"}, want: "SwitchProfile work"},
		{args: []string{"profile-remove", "work"}, want: "RemoveProfile work"},
		{args: []string{"build"}, want: "Build"},
		{args: []string{"apply"}, want: "Apply"},
		{args: []string{"rollback"}, want: "Rollback"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			mock := &mockApp{}

			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, mock.calls)
		})
	}
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{}

		_, err := execute(t, mock, "build", "-f", "--show")
		require.NoError(t, err)
		assert.Equal(t, app.BuildOptions{Force: true, Show: true}, mock.buildOpts)
	})

	t.Run("defaults", func(t *testing.T) {
		mock := &mockApp{}

		_, err := execute(t, mock, "build")
		require.NoError(t, err)
		assert.Equal(t, app.BuildOptions{}, mock.buildOpts)
	})
}

func TestCommands_ShowsUsage(t *testing.T) {
	for _, args := range [][]string{
		{"add"},
		{"remove"},
		{"profile"},
		{"profile", "switch"},
		{"profile-create", "a", "b"},
	} {
		mock := &mockApp{}

		out, err := execute(t, mock, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
		assert.Empty(t, mock.calls)
	}
}

func TestCommands_ReturnsAppError(t *testing.T) {
	mock := &mockApp{err: errors.New("simulated error")}

	_, err := execute(t, mock, "apply")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_UnknownCommand(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "upgrade")
	require.Error(t, err)
	assert.Empty(t, mock.calls)
}

func TestCommands_Version(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		out, err := execute(t, &mockApp{}, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "zix version "+build.Version)
	}
}
