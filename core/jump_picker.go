package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

// jumpPickerScreen lists the focusable panes of the active tab. Pressing a
// pane's key jumps straight to it; arrows and enter pick a row instead.
type jumpPickerScreen struct {
	keys    *KeyRegistry
	targets []JumpTarget
	cursor  int
}

func newJumpPickerScreen(keys *KeyRegistry, targets []JumpTarget) *jumpPickerScreen {
	s := &jumpPickerScreen{keys: registryOrDefault(keys), targets: make([]JumpTarget, 0, len(targets))}
	for _, t := range targets {
		if len(t.Key) != 1 || jumpKeyOf(t.Key[0]) == 0 {
			continue
		}
		t.Key = string(jumpKeyOf(t.Key[0]))
		s.targets = append(s.targets, t)
	}
	return s
}

func (s *jumpPickerScreen) Title() string { return "Jump" }
func (s *jumpPickerScreen) Scope() string { return "screen:jump-picker" }

func (s *jumpPickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	scope := s.Scope()
	switch {
	case s.keys.IsAction(keyMsg, ActionClose, scope):
		return s, nil, true
	case s.keys.IsAction(keyMsg, ActionSelect, scope):
		if len(s.targets) == 0 {
			return s, nil, true
		}
		return s, jumpCmd(s.targets[s.cursor].Key), true
	}
	switch key := strings.ToLower(keyMsg.String()); key {
	case "up":
		s.cursor = max(s.cursor-1, 0)
	case "down":
		s.cursor = min(s.cursor+1, max(len(s.targets)-1, 0))
	default:
		for _, t := range s.targets {
			if t.Key == key {
				return s, jumpCmd(key), true
			}
		}
	}
	return s, nil, false
}

func jumpCmd(key string) tea.Cmd {
	return func() tea.Msg { return JumpTargetSelectedMsg{Key: key} }
}

func (s *jumpPickerScreen) View(width, height int) string {
	lines := []string{headerAppStyle.Render("Jump to pane"), ""}
	if len(s.targets) == 0 {
		lines = append(lines, "  No jump targets")
	}
	for i, t := range s.targets {
		row := "[" + t.Key + "] " + t.Label
		if i == s.cursor {
			lines = append(lines, activeTabStyle.Render("> "+row))
			continue
		}
		lines = append(lines, "  "+row)
	}
	lines = append(lines, "", helpDescStyle.Render("press a pane key · enter picks row · esc cancels"))
	return ClipHeight(TrimToWidth(strings.Join(lines, "\n"), max(20, width)), max(6, height))
}
