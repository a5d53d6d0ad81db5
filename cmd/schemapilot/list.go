package main

import (
	"github.com/spf13/cobra"

	"github.com/jfoltran/schemapilot/internal/output"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.pilot.Store()
			var entries []output.Entry
			for _, name := range store.Names() {
				p, _ := store.Get(name)
				entries = append(entries, output.Entry{Name: name, Profile: p})
			}
			return a.printer().Profiles(entries)
		},
	}
}
