package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zix/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.BuildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the flake and build the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Rewrite flake.nix even if it exists")
	cmd.Flags().BoolVar(&opts.Show, "show", false, "Print the generated flake.nix")

	return cmd
}

func (c *CLI) newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Switch the Nix profile to the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Apply(cmd.Context())
		},
	}
}

func (c *CLI) newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Revert the Nix profile to its previous generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Rollback(cmd.Context())
		},
	}
}
