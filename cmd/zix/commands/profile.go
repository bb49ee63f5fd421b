package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(c.profileListCmd("list"))
	add := c.profileCreateCmd("add")
	add.Aliases = []string{"create"}
	cmd.AddCommand(add)
	cmd.AddCommand(c.profileSwitchCmd("switch"))
	cmd.AddCommand(c.profileRemoveCmd("remove"))

	return cmd
}

// newFlatProfileCmds returns the hyphenated spellings of the profile commands.
func (c *CLI) newFlatProfileCmds() []*cobra.Command {
	return []*cobra.Command{
		c.profileListCmd("profile-list"),
		c.profileCreateCmd("profile-create"),
		c.profileSwitchCmd("profile-switch"),
		c.profileRemoveCmd("profile-remove"),
	}
}

func (c *CLI) profileListCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "List profiles and their packages",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.ListProfiles()
		},
	}
}

func (c *CLI) profileCreateCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: "Create an empty profile",
		RunE: withName(func(name string) error {
			return c.app.CreateProfile(name)
		}),
	}
}

func (c *CLI) profileSwitchCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: "Make a profile current",
		RunE: withName(func(name string) error {
			return c.app.SwitchProfile(name)
		}),
	}
}

func (c *CLI) profileRemoveCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: "Delete a profile",
		RunE: withName(func(name string) error {
			return c.app.RemoveProfile(name)
		}),
	}
}

// withName shows usage unless exactly one profile name was given.
func withName(fn func(name string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		return fn(args[0])
	}
}
