package main

import (
	"github.com/spf13/cobra"

	"github.com/jfoltran/schemapilot/internal/output"
)

func newShowCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one profile and its connection string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := a.pilot.Store().Get(name)
			if !ok {
				a.printer().Warn("Profile '%s' not found.", name)
				return nil
			}
			return a.printer().Profile(output.Entry{
				Name:    name,
				Profile: p,
				DSN:     p.RedactedDSN(),
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	requireFlags(cmd, "name")

	return cmd
}
