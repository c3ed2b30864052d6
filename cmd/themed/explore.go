package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themed/internal/tui"
)

var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newExploreCmd(app *appContext) *cobra.Command {
	var override string

	cmd := &cobra.Command{
		Use:   "explore <document>",
		Short: "Browse the wrappers of a theme document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loader.Load(cmd.Context(), args[0])
			if err != nil {
				return newCommandError("explore", fmt.Sprintf("loading %s", args[0]), err, "Run 'themed resolve' first to see validation details.")
			}

			var local any
			if override != "" {
				local = override
			}
			if err := runProgram(tui.NewModel(c, local)); err != nil {
				return newCommandError("explore", "running the explorer", err, "Make sure the command runs in an interactive terminal.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&override, "override", "", "Namespace entry previewed as a local override (toggle merge/replace with c)")

	return cmd
}
