package main

import (
	"github.com/spf13/cobra"

	"github.com/jfoltran/schemapilot/internal/options"
	"github.com/jfoltran/schemapilot/internal/pilot"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		table  string
		limit  int
		filter string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect table data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := options.Parse("filter", filter)
			if err != nil {
				return err
			}
			return a.pilot.InspectData(cmd.Context(), a.session, pilot.InspectRequest{
				Table:   table,
				Limit:   limit,
				Filters: filters,
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&table, "table", "", "Table name to inspect")
	f.IntVar(&limit, "limit", pilot.DefaultInspectLimit, "Number of rows to fetch")
	f.StringVar(&filter, "filter", "", `JSON object of filters (e.g., {"column": "value"})`)
	requireFlags(cmd, "table")

	return cmd
}
