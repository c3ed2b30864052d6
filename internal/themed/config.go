package themed

import (
	"github.com/alexisbeaulieu97/themed/internal/selector"
)

// Config is the static record behind a wrapper. It never changes after
// construction; wrapping a wrapper extends a clone.
type Config struct {
	sources   []selector.Selector
	options   Options
	component Component
}

// Sources returns the configured theme sources, oldest first.
func (c *Config) Sources() []selector.Selector {
	if c == nil {
		return nil
	}
	return append([]selector.Selector(nil), c.sources...)
}

// Options returns the resolved options.
func (c *Config) Options() Options {
	if c == nil {
		return Options{}
	}
	return c.options
}

// Component returns the innermost, unwrapped component.
func (c *Config) Component() Component {
	if c == nil {
		return nil
	}
	return c.component
}

// Extend builds the configuration of a new wrapper.
//
// When existing is nil the chain starts from defaults and component becomes
// the leaf. Otherwise the chain starts from a clone of existing, keeps its
// leaf and ignores component. sel is appended unless it selects the whole
// namespace implicitly (nil or Identity); opts override the starting options.
func Extend(existing *Config, sel selector.Selector, opts Options, defaults Options, component Component) (*Config, error) {
	base := defaults
	var sources []selector.Selector
	leaf := component

	if existing != nil {
		base = existing.options
		sources = make([]selector.Selector, 0, len(existing.sources)+1)
		sources = append(sources, existing.sources...)
		leaf = existing.component
	}

	if !selector.IsIdentity(sel) {
		sources = append(sources, sel)
	}

	options, err := layer(base, opts)
	if err != nil {
		return nil, err
	}

	return &Config{
		sources:   sources,
		options:   options,
		component: leaf,
	}, nil
}
