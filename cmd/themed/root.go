package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themed/internal/catalog"
	"github.com/alexisbeaulieu97/themed/internal/logger"
	"github.com/alexisbeaulieu97/themed/internal/themed"
)

type rootFlags struct {
	settingsPath string
	logLevel     string
	format       string
}

// appContext bundles the services created once settings are known.
type appContext struct {
	settings  settings
	log       *logger.Logger
	decorator *themed.Decorator
	loader    *catalog.Loader
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "themed",
		Short:         "themed resolves, composes and explores layered themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.settingsPath, "settings", "", "Path to a settings file (default $XDG_CONFIG_HOME/themed/settings.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&flags.format, "format", "f", "", "Output format: tree, yaml, json or toml (default tree on a terminal, yaml otherwise)")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newComposeCmd(app))
	cmd.AddCommand(newExpandCmd(app))
	cmd.AddCommand(newExploreCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appContext) init(cmd *cobra.Command, flags *rootFlags) error {
	s, err := loadSettings(flags.settingsPath, cmd.Flags())
	if err != nil {
		return newCommandError("load settings", flags.settingsPath, err, "Check the settings file syntax or pass --settings explicitly.")
	}

	log, err := logger.New(logger.Options{
		Level:         s.LogLevel,
		HumanReadable: isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("configure logging", s.LogLevel, err, "Use one of debug, info, warn or error.")
	}

	opts, err := s.options()
	if err != nil {
		return newCommandError("load settings", "compose", err, "Use compose: merge or compose: replace.")
	}

	decorator, err := installDefaults(opts, log)
	if err != nil {
		return newCommandError("configure defaults", "wrapper options", err, "Check prop_name, compose and pure in your settings.")
	}

	a.settings = s
	a.log = log
	a.decorator = decorator
	a.loader = catalog.NewLoader(log).WithDefaults(decorator)
	return nil
}

// installDefaults makes the settings the process-wide wrapper defaults. When
// defaults were installed earlier in the same process, the settings apply to
// this command only.
func installDefaults(opts themed.Options, log *logger.Logger) (*themed.Decorator, error) {
	err := themed.Configure(opts, log)
	switch {
	case err == nil:
		return themed.Default(), nil
	case errors.Is(err, themed.ErrAlreadyConfigured):
		return themed.NewDecorator(opts, log)
	default:
		return nil, err
	}
}
