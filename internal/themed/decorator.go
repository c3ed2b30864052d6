package themed

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/themed/internal/logger"
	"github.com/alexisbeaulieu97/themed/internal/selector"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// Decorator creates wrappers from an immutable snapshot of default options.
type Decorator struct {
	defaults Options
	log      *logger.Logger
}

// Decoration applies a classified selector and options to a component.
type Decoration func(Component) (*Wrapper, error)

// NewDecorator layers opts over the built-in defaults.
func NewDecorator(opts Options, log *logger.Logger) (*Decorator, error) {
	defaults, err := layer(BuiltinDefaults(), opts)
	if err != nil {
		return nil, err
	}
	return &Decorator{defaults: defaults, log: log}, nil
}

// Extend returns a decorator whose defaults are d's overridden by opts.
func (d *Decorator) Extend(opts Options) (*Decorator, error) {
	defaults, err := layer(d.defaults, opts)
	if err != nil {
		return nil, err
	}
	return &Decorator{defaults: defaults, log: d.log}, nil
}

// Defaults returns the decorator's default options.
func (d *Decorator) Defaults() Options {
	return d.defaults
}

// Decorate classifies sel and validates opts immediately, so that invalid
// configuration fails before any component is wrapped.
func (d *Decorator) Decorate(sel any, opts Options) (Decoration, error) {
	classified, err := selector.Classify(sel)
	if err != nil {
		return nil, err
	}
	if _, err := layer(d.defaults, opts); err != nil {
		return nil, err
	}

	return func(c Component) (*Wrapper, error) {
		if c == nil {
			return nil, apperrors.NewConfigurationError("component", "cannot wrap a nil component", nil)
		}
		cfg, err := Extend(ConfigOf(c), classified, opts, d.defaults, c)
		if err != nil {
			return nil, err
		}
		return &Wrapper{config: cfg, log: d.log}, nil
	}, nil
}

// Wrap is Decorate followed by the decoration of c.
func (d *Decorator) Wrap(sel any, opts Options, c Component) (*Wrapper, error) {
	decorate, err := d.Decorate(sel, opts)
	if err != nil {
		return nil, err
	}
	return decorate(c)
}

// ErrAlreadyConfigured is wrapped by the error Configure returns on a second call.
var ErrAlreadyConfigured = errors.New("defaults already configured")

var (
	configuredDefault atomic.Pointer[Decorator]
	builtinDecorator  = sync.OnceValue(func() *Decorator {
		return &Decorator{defaults: BuiltinDefaults()}
	})
)

// Configure installs the process-wide default decorator. It may be called
// once, at startup; wrappers built earlier keep the defaults they were built
// with.
func Configure(opts Options, log *logger.Logger) error {
	d, err := NewDecorator(opts, log)
	if err != nil {
		return err
	}
	if !configuredDefault.CompareAndSwap(nil, d) {
		return apperrors.NewConfigurationError("defaults", "Configure may only be called once", ErrAlreadyConfigured)
	}
	return nil
}

// Default returns the process-wide decorator.
func Default() *Decorator {
	if d := configuredDefault.Load(); d != nil {
		return d
	}
	return builtinDecorator()
}

// Wrap wraps c with the process-wide decorator.
func Wrap(sel any, opts Options, c Component) (*Wrapper, error) {
	return Default().Wrap(sel, opts, c)
}
