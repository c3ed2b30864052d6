package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themed/internal/theme"
)

func newComposeCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "compose <theme-file>...",
		Short: "Merge theme files left to right",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := make([]theme.Theme, 0, len(args))
			for _, path := range args {
				t, err := app.loader.LoadTheme(cmd.Context(), path)
				if err != nil {
					return newCommandError("compose", fmt.Sprintf("loading %s", path), err, "Each argument must be a YAML, JSON or TOML theme file.")
				}
				themes = append(themes, t)
			}

			composed := theme.Compose(themes...)
			app.log.Debug("themes composed", "files", len(args), "keys", len(composed))
			return app.write(cmd.OutOrStdout(), composed)
		},
	}
}
