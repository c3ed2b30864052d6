package themed

import (
	"github.com/alexisbeaulieu97/themed/internal/logger"
	"github.com/alexisbeaulieu97/themed/internal/selector"
	"github.com/alexisbeaulieu97/themed/internal/theme"
	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

// ProviderOptions configures a Provider.
type ProviderOptions struct {
	// Compose defaults to ComposeMerge.
	Compose Compose
	// Merge defaults to theme.Merge.
	Merge  MergeFunc
	Logger *logger.Logger
}

// Provider publishes a namespace to the nodes below it: its own value
// composed onto (or replacing) the namespace it inherits.
type Provider struct {
	value any
	sel   selector.Selector
	opts  ProviderOptions
	log   *logger.Logger

	ctl       controller
	primed    bool
	parent    theme.Theme
	namespace theme.Theme
}

// NewProvider classifies value and returns a provider for it.
func NewProvider(value any, opts ProviderOptions) (*Provider, error) {
	if opts.Compose == ComposeDefault {
		opts.Compose = ComposeMerge
	}
	if opts.Compose != ComposeMerge && opts.Compose != ComposeReplace {
		return nil, apperrors.NewConfigurationError("provider", "unknown compose policy", nil)
	}
	if opts.Merge == nil {
		opts.Merge = theme.Merge
	}

	p := &Provider{opts: opts, log: opts.Logger, ctl: newController()}
	if err := p.setValue(value); err != nil {
		return nil, err
	}
	return p, nil
}

// SetValue replaces the provided value. A value with a new identity makes the
// next Namespace call recompute.
func (p *Provider) SetValue(value any) error {
	if sameRef(p.value, value) {
		return nil
	}
	if err := p.setValue(value); err != nil {
		return err
	}
	p.ctl.invalidate(ReasonOverride)
	return nil
}

func (p *Provider) setValue(value any) error {
	if value == nil {
		return apperrors.NewConfigurationError("provider", "a provider needs a theme", nil)
	}
	sel, err := selector.Classify(value)
	if err != nil {
		return err
	}
	p.value, p.sel = value, sel
	return nil
}

// Namespace returns the namespace published below the provider for parent.
func (p *Provider) Namespace(parent theme.Theme) theme.Theme {
	if !p.primed {
		p.primed = true
		p.parent = parent
	} else if !sameRef(p.parent, parent) {
		p.parent = parent
		p.ctl.invalidate(ReasonInherited)
	}

	if p.ctl.state == StateStale {
		reason := p.ctl.reason
		p.namespace = p.build()
		p.ctl.built()
		p.log.Debug("namespace rebuilt", "reason", string(reason), "builds", p.ctl.builds)
	}
	return p.namespace
}

// Builds returns how many times the namespace has been computed.
func (p *Provider) Builds() int {
	return p.ctl.builds
}

func (p *Provider) build() theme.Theme {
	parent := p.parent
	if parent == nil {
		parent = theme.New()
	}

	own := p.sel.Select(parent, parent)
	if p.sel.Kind() == selector.KindFunc || p.opts.Compose == ComposeReplace {
		return own
	}

	acc := accumulator{merge: p.opts.Merge}
	acc.fold(parent)
	acc.fold(own)
	if acc.theme == nil {
		return theme.New()
	}
	return acc.theme
}
