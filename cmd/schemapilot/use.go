package main

import (
	"github.com/spf13/cobra"
)

func newUseCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "use",
		Short: "Use an existing database connection profile",
		Long: `Use selects a profile for the rest of this run. The selection is not saved:
combine it with other commands through "shell", or pass --profile instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.pilot.Use(cmd.Context(), a.session, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name to use")
	requireFlags(cmd, "name")

	return cmd
}
