package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/jfoltran/schemapilot/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively, keeping the selected profile between them",
		Long: `Shell reads one command per line from standard input, for example:

  use --name prod
  schema
  migrate --operation add_column --table users --column_details '{"name": "c", "type": "TEXT"}'

Quote JSON with single quotes. "exit", "quit" or end of input leave the shell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.inShell {
				return errors.New("already inside a shell")
			}
			a.inShell = true
			defer func() { a.inShell = false }()

			dispatch := func(ctx context.Context, line []string) error {
				root := newRootCmd(a)
				root.SetArgs(line)
				return root.ExecuteContext(ctx)
			}
			return shell.New(a.stdin, a.stdout, "schemapilot> ", dispatch, a.logger).Run(cmd.Context())
		},
	}
}
