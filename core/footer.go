package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// footerBindings collapses bindings that share an action and description so
// the hint bar lists each shortcut once.
func footerBindings(bindings []KeyBinding) []key.Binding {
	seen := make(map[string]bool, len(bindings))
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		id := b.Action + "\x00" + b.Description
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	return out
}

func RenderFooter(m Model) string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := footerBindings(m.keys.BindingsForScope(m.ActiveScope()))
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

// RenderStatusBar shows the latest status message, with the open screen or
// the active pane named on the right.
func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	width := max(1, m.width)
	if where := m.location(); where != "" {
		gap := width - ansi.StringWidth(msg) - ansi.StringWidth(where)
		if gap >= 2 {
			msg += strings.Repeat(" ", gap) + where
		}
	}
	return renderBar(style, width, msg, colorSurface0)
}

func (m Model) location() string {
	if top := m.screens.Top(); top != nil {
		return top.Title()
	}
	if h, ok := m.ActiveTab().(PaneKeyHandler); ok {
		return h.ActivePaneTitle()
	}
	return ""
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func TrimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
