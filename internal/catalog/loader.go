package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/themed/internal/config"
	"github.com/alexisbeaulieu97/themed/internal/logger"
	"github.com/alexisbeaulieu97/themed/internal/theme"
	"github.com/alexisbeaulieu97/themed/internal/themed"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// Loader reads theme documents and theme files from disk.
type Loader struct {
	logger *logger.Logger
	base   *themed.Decorator
}

func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log}
}

// WithDefaults returns a loader whose catalogs extend base instead of the
// process-wide decorator.
func (l *Loader) WithDefaults(base *themed.Decorator) *Loader {
	return &Loader{logger: l.logger, base: base}
}

// Load parses and validates the document at path and builds its catalog.
func (l *Loader) Load(ctx context.Context, path string) (*Catalog, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	l.logger.Debug("loading theme document", "path", path)

	doc, err := config.ParseDocument(path)
	if err != nil {
		l.logFailure(err, path)
		return nil, err
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	c, err := BuildWith(doc, l.base, l.logger)
	if err != nil {
		l.logger.Error(err, "theme document could not be built", "path", path)
		return nil, err
	}

	l.logger.Info("theme document loaded", "path", path, "wrappers", len(c.order), "flat", doc.Flat)
	return c, nil
}

// LoadTheme reads a bare theme file.
func (l *Loader) LoadTheme(ctx context.Context, path string) (theme.Theme, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	raw, err := config.ParseTheme(path)
	if err != nil {
		l.logFailure(err, path)
		return nil, err
	}

	l.logger.Debug("theme file loaded", "path", path, "keys", len(raw))
	return theme.Theme(raw), nil
}

func (l *Loader) logFailure(err error, path string) {
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		l.logger.Error(err, "failed to parse theme document", "path", parseErr.Path, "line", parseErr.Line)
		return
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		l.logger.Error(err, "theme document failed validation", "path", path, "field", valErr.Field)
		return
	}
	l.logger.Error(err, "theme document load failed", "path", path)
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load cancelled: %w", err)
	}
	return nil
}
