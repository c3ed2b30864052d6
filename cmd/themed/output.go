package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themed/internal/render"
	"github.com/alexisbeaulieu97/themed/internal/theme"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// outputFormat picks the explicit format when one is set, a tree on a
// terminal, and YAML otherwise.
func outputFormat(explicit string, out io.Writer) (render.Format, error) {
	if explicit != "" {
		return render.ParseFormat(explicit)
	}
	if isTerminal(out) {
		return render.FormatTree, nil
	}
	return render.FormatYAML, nil
}

func (a *appContext) write(out io.Writer, t theme.Theme) error {
	format, err := outputFormat(a.settings.Format, out)
	if err != nil {
		return newCommandError("render theme", "choosing the output format", err, "Use --format tree, yaml, json or toml.")
	}
	if err := render.Encode(out, t, format); err != nil {
		return newCommandError("render theme", string(format), err, "Try another --format; TOML cannot hold every theme shape.")
	}
	return nil
}
