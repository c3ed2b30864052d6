// Package tui is an interactive explorer over the wrappers of a theme document.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themed/internal/catalog"
	"github.com/alexisbeaulieu97/themed/internal/render"
	"github.com/alexisbeaulieu97/themed/internal/theme"
	"github.com/alexisbeaulieu97/themed/internal/themed"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	listWidth     = 28
)

// Model contains the Bubbletea state of the explorer.
type Model struct {
	catalog  *catalog.Catalog
	names    []string
	override any

	cursor   int
	replace  bool
	resolved theme.Theme
	err      error

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width    int
	height   int
	quitting bool
}

// NewModel builds an explorer for c. override is handed to every wrapper as
// its local theme, which is what the compose preview toggles between merging
// and replacing.
func NewModel(c *catalog.Catalog, override any) Model {
	m := Model{
		catalog:  c,
		override: override,
		help:     help.New(),
		keys:     defaultKeys(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if c != nil {
		m.names = c.Names()
	}
	m.viewport = viewport.New(m.viewportSize())
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the name of the highlighted wrapper.
func (m Model) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.names) {
		return ""
	}
	return m.names[m.cursor]
}

// Resolved returns the theme shown for the highlighted wrapper.
func (m Model) Resolved() theme.Theme {
	return m.resolved
}

// Replacing reports whether the compose preview is on.
func (m Model) Replacing() bool {
	return m.replace
}

func (m Model) viewportSize() (int, int) {
	w := m.width - listWidth - 4
	if w < 10 {
		w = 10
	}
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return w, h
}

// refresh resolves the highlighted wrapper with a fresh instance.
func (m *Model) refresh() {
	m.resolved, m.err = nil, nil

	name := m.Selected()
	if name == "" {
		m.viewport.SetContent(mutedStyle.Render("no wrappers declared"))
		return
	}

	w, _ := m.catalog.Wrapper(name)
	opts := w.Options()
	props := themed.Props{opts.PropName: m.override}
	if m.replace {
		props[opts.ConfigKey()] = &themed.InstanceOptions{Compose: themed.ComposeReplace}
	}

	m.resolved, m.err = m.catalog.ResolveProps(w, props)
	if m.err != nil {
		m.viewport.SetContent(errorStyle.Render(m.err.Error()))
		return
	}
	m.viewport.SetContent(render.Tree(m.resolved))
	m.viewport.GotoTop()
}
