package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the manifest and the flake",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.Init()
		},
	}
}

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <package>...",
		Short: "Add packages to the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.app.AddPackages(args)
		},
	}
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <package>...",
		Aliases: []string{"rm"},
		Short:   "Remove packages from the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.app.RemovePackages(args)
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show declared and installed packages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(cmd.Context())
		},
	}
}
