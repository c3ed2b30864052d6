package themed

import (
	"fmt"

	"github.com/alexisbeaulieu97/themed/internal/logger"
)

// Component is anything a wrapper can feed derived props into.
type Component interface {
	DisplayName() string
}

// NamedComponent is a Component identified only by its name.
type NamedComponent string

// DisplayName implements Component.
func (n NamedComponent) DisplayName() string {
	return string(n)
}

// configured is implemented by components that carry a theme configuration.
type configured interface {
	ThemeConfig() *Config
}

// ConfigOf returns the configuration attached to c, or nil when c is a plain
// component.
func ConfigOf(c Component) *Config {
	if w, ok := c.(configured); ok {
		return w.ThemeConfig()
	}
	return nil
}

// Wrapper is a themed component: a leaf component plus the configuration used
// to derive its theme.
type Wrapper struct {
	config *Config
	log    *logger.Logger
}

// DisplayName implements Component.
func (w *Wrapper) DisplayName() string {
	return fmt.Sprintf("Themed(%s)", displayName(w.config.component))
}

// ThemeConfig exposes the configuration so that another wrapper can extend it.
func (w *Wrapper) ThemeConfig() *Config {
	return w.config
}

// Unwrap returns the innermost component, however many layers deep.
func (w *Wrapper) Unwrap() Component {
	return w.config.component
}

// Options returns the resolved options of the wrapper.
func (w *Wrapper) Options() Options {
	return w.config.options
}

// NewInstance creates a wrapper instance with its own theme cache.
func (w *Wrapper) NewInstance() *Instance {
	return newInstance(w.config, w.log, displayName(w.config.component))
}

func displayName(c Component) string {
	if c == nil {
		return "Component"
	}
	if name := c.DisplayName(); name != "" {
		return name
	}
	return "Component"
}
