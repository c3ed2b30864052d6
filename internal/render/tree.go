package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themed/internal/theme"
)

var (
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	tokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lazyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	opaqueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// LazyMarker prefixes lazy leaves in a tree.
const LazyMarker = "ƒ"

// Tree renders t as an indented tree. Lazy leaves are not invoked.
func Tree(t theme.Theme) string {
	if len(t) == 0 {
		return opaqueStyle.Render("(empty theme)")
	}
	var lines []string
	writeTree(&lines, t, "")
	return strings.Join(lines, "\n")
}

func writeTree(lines *[]string, t theme.Theme, indent string) {
	keys := sortedKeys(t)
	for i, key := range keys {
		last := i == len(keys)-1
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}
		prefix := indent + branchStyle.Render(branch)

		value := t[key]
		if sub, ok := theme.AsTheme(value); ok {
			*lines = append(*lines, prefix+keyStyle.Render(key))
			writeTree(lines, sub, indent+branchStyle.Render(next))
			continue
		}
		*lines = append(*lines, fmt.Sprintf("%s%s: %s", prefix, keyStyle.Render(key), leaf(value)))
	}
}

func leaf(v any) string {
	switch theme.KindOf(v) {
	case theme.KindString:
		return tokenStyle.Render(v.(string))
	case theme.KindLazy:
		return lazyStyle.Render(LazyMarker)
	case theme.KindNull:
		return opaqueStyle.Render("null")
	case theme.KindAbsent:
		return opaqueStyle.Render("undefined")
	default:
		return opaqueStyle.Render(fmt.Sprintf("%v", v))
	}
}

func sortedKeys(t theme.Theme) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
