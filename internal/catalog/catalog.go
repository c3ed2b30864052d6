// Package catalog turns a theme document into ready-to-use themed wrappers.
package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/themed/internal/config"
	"github.com/alexisbeaulieu97/themed/internal/logger"
	"github.com/alexisbeaulieu97/themed/internal/selector"
	"github.com/alexisbeaulieu97/themed/internal/theme"
	"github.com/alexisbeaulieu97/themed/internal/themed"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// Catalog holds the namespace of a document and the wrappers declared over it.
type Catalog struct {
	decorator *themed.Decorator
	namespace theme.Theme
	wrappers  map[string]*themed.Wrapper
	order     []string
	log       *logger.Logger
}

// Build is BuildWith over the process-wide decorator.
func Build(doc *config.Document, log *logger.Logger) (*Catalog, error) {
	return BuildWith(doc, themed.Default(), log)
}

// BuildWith extends base with the document defaults and constructs every
// wrapper in declaration order. Selector and option errors surface here.
func BuildWith(doc *config.Document, base *themed.Decorator, log *logger.Logger) (*Catalog, error) {
	if doc == nil {
		return nil, apperrors.NewConfigurationError("document", "document is nil", nil)
	}
	if base == nil {
		base = themed.Default()
	}

	defaults, err := OptionsFrom(doc.Defaults)
	if err != nil {
		return nil, err
	}
	decorator, err := base.Extend(defaults)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		decorator: decorator,
		namespace: namespaceOf(doc),
		wrappers:  make(map[string]*themed.Wrapper, len(doc.Wrappers)),
		order:     make([]string, 0, len(doc.Wrappers)),
		log:       log,
	}

	for _, spec := range doc.Wrappers {
		w, err := c.build(spec)
		if err != nil {
			return nil, fmt.Errorf("wrapper %q: %w", spec.Name, err)
		}
		c.wrappers[spec.Name] = w
		c.order = append(c.order, spec.Name)
	}

	return c, nil
}

func (c *Catalog) build(spec config.WrapperSpec) (*themed.Wrapper, error) {
	var component themed.Component = themed.NamedComponent(spec.Component)
	if spec.Wraps != "" {
		inner, ok := c.wrappers[spec.Wraps]
		if !ok {
			return nil, apperrors.NewConfigurationError("wraps", fmt.Sprintf("unknown wrapper %q", spec.Wraps), nil)
		}
		component = inner
	}

	sel, err := SelectorFrom(spec.Selector)
	if err != nil {
		return nil, err
	}
	opts, err := OptionsFrom(spec.Options)
	if err != nil {
		return nil, err
	}

	w, err := c.decorator.Wrap(sel, opts, component)
	if err != nil {
		return nil, err
	}
	c.log.Debug("wrapper built", "wrapper", spec.Name, "sources", len(w.ThemeConfig().Sources()))
	return w, nil
}

func namespaceOf(doc *config.Document) theme.Theme {
	if doc.Namespace == nil {
		return theme.New()
	}
	if doc.Flat {
		return theme.Expand(doc.Namespace, doc.Separator)
	}
	return theme.Theme(doc.Namespace)
}

// OptionsFrom converts document options into wrapper options. Unset fields
// stay zero so that they inherit from the layer below.
func OptionsFrom(d config.Defaults) (themed.Options, error) {
	compose, err := themed.ParseCompose(d.Compose)
	if err != nil {
		return themed.Options{}, err
	}
	opts := themed.Options{PropName: d.PropName, Compose: compose}
	if d.Pure != nil {
		opts.Purity = themed.PurityOf(*d.Pure)
	}
	return opts, nil
}

// SelectorFrom converts the document form of a selector into a Selector.
func SelectorFrom(spec *config.SelectorSpec) (selector.Selector, error) {
	switch {
	case spec == nil || spec.IsZero():
		return selector.Identity{}, nil
	case len(spec.Forms()) > 1:
		return nil, apperrors.NewConfigurationError("selector", "more than one selector form is set", nil)
	case spec.Name != "":
		return selector.Name(spec.Name), nil
	case spec.Names != nil:
		return selector.Classify(spec.Names)
	case spec.Pattern != "":
		return selector.NewPattern(spec.Pattern)
	default:
		return selector.Literal(theme.Theme(spec.Theme)), nil
	}
}

// Names returns the wrapper names in declaration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Wrapper returns the wrapper declared under name.
func (c *Catalog) Wrapper(name string) (*themed.Wrapper, bool) {
	w, ok := c.wrappers[name]
	return w, ok
}

// Namespace returns the root namespace wrappers resolve against.
func (c *Catalog) Namespace() theme.Theme {
	return c.namespace
}

// Decorator returns the decorator built from the document defaults.
func (c *Catalog) Decorator() *themed.Decorator {
	return c.decorator
}

// Resolve evaluates a fresh instance of the named wrapper against the
// namespace, with override as the local theme.
func (c *Catalog) Resolve(name string, override any) (theme.Theme, error) {
	w, ok := c.wrappers[name]
	if !ok {
		return nil, apperrors.NewConfigurationError("wrapper", fmt.Sprintf("unknown wrapper %q", name), nil)
	}
	return c.ResolveProps(w, themed.Props{w.Options().PropName: override})
}

// ResolveProps evaluates a fresh instance of w with the given props and
// returns the theme it hands to its component. A nil theme is a valid result;
// props without the prop name, or holding something other than a theme under
// it, mean the wrapper's MergeProps dropped the theme.
func (c *Catalog) ResolveProps(w *themed.Wrapper, props themed.Props) (theme.Theme, error) {
	if w == nil {
		return nil, apperrors.NewConfigurationError("wrapper", "wrapper is nil", nil)
	}
	propName := w.Options().PropName
	out := w.NewInstance().Evaluate(c.namespace, props)

	value, ok := out[propName]
	if !ok {
		return nil, apperrors.NewConfigurationError(propName, fmt.Sprintf("%s handed no theme to its component", w.DisplayName()), nil)
	}
	if value == nil {
		return nil, nil
	}
	resolved, ok := theme.AsTheme(value)
	if !ok {
		return nil, apperrors.NewUnsupportedTypeError(propName, value)
	}
	return resolved, nil
}
