package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jfoltran/schemapilot/internal/appconfig"
	"github.com/jfoltran/schemapilot/internal/output"
	"github.com/jfoltran/schemapilot/internal/pilot"
	"github.com/jfoltran/schemapilot/internal/profile"
)

// app holds what every command of one run shares: settings, the logger,
// the loaded profile store and the session carrying the active selection.
type app struct {
	settingsPath string
	storePath    string
	profileName  string
	outputFormat string
	logLevel     string
	logFormat    string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg     appconfig.Config
	logger  zerolog.Logger
	pilot   *pilot.Pilot
	session *pilot.Session
	inShell bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  zerolog.Nop(),
		session: pilot.NewSession(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "schemapilot",
		Short: "Database connection profiles, schema overview and migration suggestions",
		Long: `schemapilot stores named database connection profiles in a JSON file.
Select one with "use" (or --profile) to run schema, inspect and migrate in the
same run, or start "shell" to keep a selection across several commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.pilot == nil {
				if err := a.init(cmd); err != nil {
					return err
				}
			}
			if a.profileName != "" {
				a.pilot.Use(cmd.Context(), a.session, a.profileName)
			}
			return nil
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	f := root.PersistentFlags()
	f.StringVar(&a.storePath, "config", profile.DefaultPath, "Profile store file")
	f.StringVar(&a.settingsPath, "settings", "", "Settings file (default ~/.schemapilot/config.toml)")
	f.StringVarP(&a.profileName, "profile", "p", "", "Select this profile before running the command")
	f.StringVarP(&a.outputFormat, "output", "o", "text", "Output format for list and show (text, json, yaml)")
	f.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	f.StringVar(&a.logFormat, "log-format", "console", "Log format (console, json)")

	root.AddCommand(
		newAddCmd(a),
		newUseCmd(a),
		newSchemaCmd(a),
		newInspectCmd(a),
		newMigrateCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newShellCmd(a),
	)
	return root
}

// init resolves settings with flag > environment > settings file > default
// precedence, builds the logger and loads the profile store.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := appconfig.Load(a.settingsPath)
	if err != nil {
		return configError(err)
	}
	flags := cmd.Flags()
	if flags.Changed("config") {
		cfg.Profiles.Path = a.storePath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.outputFormat
	}
	a.cfg = cfg

	var logOutput io.Writer
	switch cfg.Logging.Format {
	case "json":
		logOutput = a.stderr
	default:
		logOutput = zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.RFC3339, NoColor: a.stderr != os.Stderr}
	}
	logger := zerolog.New(logOutput).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	a.logger = logger.Level(level)

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return configError(err)
	}

	store, err := profile.Load(cfg.Profiles.Path)
	if err != nil {
		a.logger.Error().Err(err).Str("path", cfg.Profiles.Path).Msg("load profile store")
		return configError(err)
	}
	a.logger.Debug().
		Str("path", store.Path()).
		Int("profiles", store.Len()).
		Str("settings", cfg.Source).
		Msg("profile store loaded")

	a.pilot = pilot.New(store, output.New(a.stdout, format), a.logger)
	return nil
}

// printer returns the printer of the loaded pilot.
func (a *app) printer() *output.Printer {
	return a.pilot.Printer()
}

func requireFlags(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		if err := cmd.MarkFlagRequired(n); err != nil {
			panic(fmt.Sprintf("mark %s required: %v", n, err))
		}
	}
}
