package main

import (
	"github.com/spf13/cobra"

	"github.com/jfoltran/schemapilot/internal/options"
	"github.com/jfoltran/schemapilot/internal/pilot"
)

func newMigrateCmd(a *app) *cobra.Command {
	var (
		operation string
		table     string
		details   string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Suggest migration script",
		Long: `Migrate prints a suggested statement for the selected profile's database type.
Only add_column produces SQL; identifiers are quoted when the dialect needs it
and the column type must be a plain type literal.`,
		Example: `  schemapilot -p prod migrate --operation add_column --table users \
    --column_details '{"name": "nickname", "type": "VARCHAR(64)"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := options.Parse("column_details", details)
			if err != nil {
				return err
			}
			return a.pilot.SuggestMigration(cmd.Context(), a.session, pilot.MigrationRequest{
				Operation: operation,
				Table:     table,
				Details:   bag,
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&operation, "operation", "", "Migration operation (e.g., add_column)")
	f.StringVar(&table, "table", "", "Table name")
	f.StringVar(&details, "column_details", "", `JSON object of column details for add_column (e.g., {"name": "new_col", "type": "TEXT"})`)
	requireFlags(cmd, "operation", "table")

	return cmd
}
