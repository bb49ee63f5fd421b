// Package commands implements the CLI commands for zix.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zix/internal/app"
	"go.trai.ch/zix/internal/build"
)

// CLI represents the command line interface for zix.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Init() error
	AddPackages(pkgs []string) error
	RemovePackages(pkgs []string) error
	List(ctx context.Context) error
	ListProfiles() error
	CreateProfile(name string) error
	SwitchProfile(name string) error
	RemoveProfile(name string) error
	Build(ctx context.Context, opts app.BuildOptions) error
	Apply(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "zix",
		Short:         "Declarative profiles for the Nix user environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newProfileCmd())
	rootCmd.AddCommand(c.newFlatProfileCmds()...)
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newRollbackCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
