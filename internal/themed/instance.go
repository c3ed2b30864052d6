package themed

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/themed/internal/logger"
	"github.com/alexisbeaulieu97/themed/internal/selector"
	"github.com/alexisbeaulieu97/themed/internal/theme"
)

// State is the cache state of a wrapper instance or provider.
type State int

const (
	// StateStale means the theme must be recomputed before the next read.
	StateStale State = iota
	// StateFresh means the cached theme matches the current inputs.
	StateFresh
)

func (s State) String() string {
	if s == StateFresh {
		return "fresh"
	}
	return "stale"
}

// Reason records why a cache went stale.
type Reason string

const (
	ReasonInit       Reason = "init"
	ReasonInherited  Reason = "inherited"
	ReasonOverride   Reason = "override"
	ReasonOptions    Reason = "options"
	ReasonInvalidate Reason = "invalidate"
)

// controller is the Fresh/Stale state machine shared by instances and providers.
type controller struct {
	state  State
	reason Reason
	builds int
}

func newController() controller {
	return controller{state: StateStale, reason: ReasonInit}
}

// invalidate marks the cache stale, keeping the first reason.
func (c *controller) invalidate(r Reason) {
	if c.state == StateFresh {
		c.state = StateStale
		c.reason = r
	}
}

func (c *controller) built() {
	c.state = StateFresh
	c.reason = ""
	c.builds++
}

// memo holds the inputs the cached theme was computed from.
type memo struct {
	primed    bool
	inherited theme.Theme
	override  any
	local     any
	overrideS selector.Selector
	theme     theme.Theme
}

// Instance derives the effective theme of one wrapper instance and caches it
// until the inherited namespace or the local override changes identity.
type Instance struct {
	id     string
	config *Config
	log    *logger.Logger
	ctl    controller
	memo   memo

	lastOwn Props
	lastOut Props
}

func newInstance(cfg *Config, log *logger.Logger, name string) *Instance {
	id := uuid.NewString()
	return &Instance{
		id:     id,
		config: cfg,
		log:    log.WithFields(map[string]any{"instance": id, "component": name}),
		ctl:    newController(),
	}
}

// ID returns the instance identifier used in log entries.
func (i *Instance) ID() string {
	return i.id
}

// State reports whether the cached theme can be reused.
func (i *Instance) State() State {
	return i.ctl.state
}

// Builds returns how many times the theme has been computed.
func (i *Instance) Builds() int {
	return i.ctl.builds
}

// Evaluate runs one evaluation pass. inherited is the nearest ancestor's
// namespace; props are the caller's props, including the local override under
// the configured prop name. The returned props carry the effective theme under
// the prop name, merged with the caller's other props.
func (i *Instance) Evaluate(inherited theme.Theme, props Props) Props {
	opts := i.config.options
	propName, configKey := opts.PropName, opts.ConfigKey()

	i.Observe(inherited, props[propName], props[configKey])
	rebuilt := i.ctl.state == StateStale
	effective := i.Theme()

	own := props.without(propName, configKey)
	if opts.IsPure() && !rebuilt && i.lastOut != nil && shallowEqual(own, i.lastOwn) {
		return i.lastOut
	}

	out := opts.MergeProps(own, Props{propName: effective})
	i.lastOwn, i.lastOut = own, out
	return out
}

// Observe records the inputs of an evaluation. The cache goes stale when the
// inherited namespace, the local override or the per-instance options differ
// in identity from the previous evaluation.
func (i *Instance) Observe(inherited theme.Theme, override, local any) {
	m := &i.memo
	if !m.primed {
		m.primed = true
		m.inherited, m.local = inherited, local
		i.setOverride(override)
		return
	}

	if !sameRef(m.inherited, inherited) {
		m.inherited = inherited
		i.ctl.invalidate(ReasonInherited)
	}
	if !sameRef(m.override, override) {
		i.setOverride(override)
		i.ctl.invalidate(ReasonOverride)
	}
	if !sameInstanceOptions(m.local, local) {
		m.local = local
		i.ctl.invalidate(ReasonOptions)
	}
}

func (i *Instance) setOverride(override any) {
	i.memo.override = override
	i.memo.overrideS = nil
	if override == nil {
		return
	}
	sel, err := selector.Classify(override)
	if err != nil {
		i.log.Warn("ignoring local theme override", "error", err.Error())
		return
	}
	i.memo.overrideS = sel
}

// Invalidate forces the next read to recompute the theme.
func (i *Instance) Invalidate() {
	i.ctl.invalidate(ReasonInvalidate)
}

// Theme returns the effective theme, recomputing it when stale.
func (i *Instance) Theme() theme.Theme {
	if i.ctl.state == StateStale {
		reason := i.ctl.reason
		i.memo.theme = i.rebuild()
		i.ctl.built()
		i.log.Debug("theme rebuilt",
			"reason", string(reason),
			"sources", len(i.config.sources),
			"builds", i.ctl.builds,
		)
	}
	return i.memo.theme
}

func (i *Instance) rebuild() theme.Theme {
	opts := i.config.options
	namespace := i.memo.inherited
	if namespace == nil {
		namespace = theme.New()
	}

	acc := accumulator{merge: opts.Merge}
	for _, src := range i.config.sources {
		acc.apply(src, namespace)
	}

	override := i.memo.overrideS
	if override == nil {
		return acc.theme
	}
	if override.Kind() == selector.KindFunc {
		acc.replace(override.Select(acc.theme, namespace))
		return acc.theme
	}

	fragment := override.Select(acc.theme, namespace)
	compose, composeWith := opts.Compose, opts.ComposeWith
	if local, ok := instanceOptionsOf(i.memo.local); ok {
		switch {
		case local.ComposeWith != nil:
			compose, composeWith = ComposeMerge, local.ComposeWith
		case local.Compose != ComposeDefault:
			compose, composeWith = local.Compose, nil
		}
	}

	switch {
	case compose == ComposeReplace:
		acc.replace(fragment)
	case composeWith != nil:
		acc.foldWith(composeWith, fragment)
	default:
		acc.fold(fragment)
	}
	return acc.theme
}

// accumulator tracks the theme being resolved and whether this package
// allocated it. A theme handed back by a selector function or a replacing
// override belongs to someone else and is cloned before the next merge.
type accumulator struct {
	merge MergeFunc
	theme theme.Theme
	owned bool
}

func (a *accumulator) apply(src selector.Selector, namespace theme.Theme) {
	fragment := src.Select(a.theme, namespace)
	if src.Kind() == selector.KindFunc {
		a.replace(fragment)
		return
	}
	a.fold(fragment)
}

func (a *accumulator) fold(fragment theme.Theme) {
	a.foldWith(a.merge, fragment)
}

func (a *accumulator) foldWith(merge MergeFunc, fragment theme.Theme) {
	if fragment == nil {
		return
	}
	target := a.theme
	if !a.owned {
		target = theme.Clone(a.theme)
		if target == nil {
			target = theme.New()
		}
	}
	result := merge(target, fragment)
	a.theme = result
	a.owned = sameRef(result, target)
}

func (a *accumulator) replace(t theme.Theme) {
	a.theme = t
	a.owned = false
}
