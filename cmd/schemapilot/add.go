package main

import (
	"github.com/spf13/cobra"

	"github.com/jfoltran/schemapilot/internal/profile"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		name string
		p    profile.Profile
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new database connection profile",
		Long: `Add stores a connection profile under --name and rewrites the profile store.
An existing profile with the same name is replaced without confirmation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.pilot.AddProfile(cmd.Context(), name, p)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "Profile name")
	f.StringVar(&p.Type, "type", "", "Database type (e.g., sqlite, postgresql, mysql)")
	f.StringVar(&p.Host, "host", "", "Database host")
	f.IntVar(&p.Port, "port", 0, "Database port")
	f.StringVar(&p.User, "user", "", "Database user")
	f.StringVar(&p.Password, "password", "", "Database password")
	f.StringVar(&p.DBName, "db_name", "", "Database name")
	requireFlags(cmd, "name", "type", "host", "port", "user", "password", "db_name")

	return cmd
}
