package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type resolveOptions struct {
	override     string
	overrideFile string
}

func newResolveCmd(app *appContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <document> <wrapper>",
		Short: "Print the theme a wrapper hands to its component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.override, "override", "", "Namespace entry to pass as the local theme override")
	cmd.Flags().StringVar(&opts.overrideFile, "override-file", "", "Theme file to pass as the local theme override")

	return cmd
}

func runResolve(cmd *cobra.Command, app *appContext, documentPath, wrapper string, opts *resolveOptions) error {
	if opts.override != "" && opts.overrideFile != "" {
		return newCommandError("resolve", "reading overrides", errors.New("--override and --override-file are mutually exclusive"), "Pass only one override.")
	}

	ctx := cmd.Context()
	c, err := app.loader.Load(ctx, documentPath)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("loading %s", documentPath), err, "Run 'themed resolve' on a valid theme document.")
	}

	var override any
	switch {
	case opts.overrideFile != "":
		t, err := app.loader.LoadTheme(ctx, opts.overrideFile)
		if err != nil {
			return newCommandError("resolve", fmt.Sprintf("loading override %s", opts.overrideFile), err, "Check the override file syntax.")
		}
		override = t
	case opts.override != "":
		override = opts.override
	}

	resolved, err := c.Resolve(wrapper, override)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("wrapper %q", wrapper), err, fmt.Sprintf("Declared wrappers: %v", c.Names()))
	}

	return app.write(cmd.OutOrStdout(), resolved)
}
