package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themed/internal/theme"
)

func newExpandCmd(app *appContext) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "expand <theme-file>",
		Short: "Turn a flattened theme (Foo-bar keys) into nested themes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flat, err := app.loader.LoadTheme(cmd.Context(), args[0])
			if err != nil {
				return newCommandError("expand", fmt.Sprintf("loading %s", args[0]), err, "The file must hold a single mapping of flattened keys.")
			}
			return app.write(cmd.OutOrStdout(), theme.Expand(flat, separator))
		},
	}

	cmd.Flags().StringVar(&separator, "separator", theme.DefaultSeparator, "Separator between namespace and class name")

	return cmd
}
