package core

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glacionet/core/widgets"
)

const noPane = -1

// PaneHost owns the panes of one tab. Exactly one pane is selected; at most
// one is focused, and a focused pane is always the selected one.
type PaneHost struct {
	panes    []Pane
	selected int
	focused  int
}

// NewPaneHost panics when two panes share a jump key or a pane has none.
func NewPaneHost(panes ...Pane) PaneHost {
	owners := make(map[byte]string, len(panes))
	for _, p := range panes {
		key := jumpKeyOf(p.JumpKey())
		if key == 0 {
			panic(fmt.Sprintf("pane %q needs a letter or digit jump key", p.ID()))
		}
		if owner, taken := owners[key]; taken {
			panic(fmt.Sprintf("jump key %q used by both %q and %q", string(key), owner, p.ID()))
		}
		owners[key] = p.ID()
	}
	return PaneHost{panes: panes, focused: noPane}
}

func (h *PaneHost) at(i int) Pane {
	if i < 0 || i >= len(h.panes) {
		return nil
	}
	return h.panes[i]
}

func (h *PaneHost) active() Pane {
	if p := h.at(h.focused); p != nil {
		return p
	}
	return h.at(h.selected)
}

// transition moves selection and focus, firing hooks only for panes whose
// state changed.
func (h *PaneHost) transition(selected, focused int) tea.Cmd {
	var cmds []tea.Cmd
	if selected != h.selected {
		if p := h.at(h.selected); p != nil {
			cmds = append(cmds, p.OnDeselect())
		}
		if p := h.at(selected); p != nil {
			cmds = append(cmds, p.OnSelect())
		}
	}
	if focused != h.focused {
		if p := h.at(h.focused); p != nil {
			cmds = append(cmds, p.OnBlur())
		}
		if p := h.at(focused); p != nil {
			cmds = append(cmds, p.OnFocus())
		}
	}
	h.selected, h.focused = selected, focused
	return tea.Batch(cmds...)
}

func (h *PaneHost) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(h.panes))
	for _, p := range h.panes {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) Len() int { return len(h.panes) }

func (h *PaneHost) Scope() string {
	if p := h.active(); p != nil {
		return p.Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if p := h.active(); p != nil {
		return p.Title()
	}
	return ""
}

func (h *PaneHost) SelectedID() string {
	if p := h.at(h.selected); p != nil {
		return p.ID()
	}
	return ""
}

func (h *PaneHost) FocusedID() string {
	if p := h.at(h.focused); p != nil {
		return p.ID()
	}
	return ""
}

// UpdateActive forwards msg to the focused pane, or the selected one when
// nothing is focused.
func (h *PaneHost) UpdateActive(msg tea.Msg) tea.Cmd {
	if p := h.active(); p != nil {
		return p.Update(msg)
	}
	return nil
}

// HandlePaneKey moves between panes while none is focused. A focused pane
// keeps every key except the close action.
func (h *PaneHost) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	scope := h.Scope()
	if h.at(h.focused) != nil {
		if !m.keys.IsAction(msg, ActionClose, scope) {
			return false, nil
		}
		m.SetStatus("Pane unfocused: " + h.panes[h.focused].Title())
		return true, h.transition(h.selected, noPane)
	}
	switch {
	case m.keys.IsAction(msg, ActionPanePrev, scope):
		return true, h.step(m, -1)
	case m.keys.IsAction(msg, ActionPaneNext, scope):
		return true, h.step(m, 1)
	case m.keys.IsAction(msg, ActionPaneFocus, scope):
		p := h.panes[h.selected]
		if !p.Focusable() {
			m.SetStatus(p.Title() + " has nothing to focus")
			return true, nil
		}
		m.SetStatus("Focused pane: " + p.Title())
		return true, h.transition(h.selected, h.selected)
	}
	return false, nil
}

func (h *PaneHost) step(m *Model, delta int) tea.Cmd {
	n := len(h.panes)
	if n < 2 {
		return nil
	}
	next := ((h.selected+delta)%n + n) % n
	m.SetStatus("Selected pane: " + h.panes[next].Title())
	return h.transition(next, noPane)
}

func (h *PaneHost) JumpTargets() []JumpTarget {
	out := make([]JumpTarget, 0, len(h.panes))
	for _, p := range h.panes {
		if p.Focusable() {
			out = append(out, JumpTarget{Key: string(jumpKeyOf(p.JumpKey())), Label: p.Title()})
		}
	}
	return out
}

// JumpToTarget selects and focuses the focusable pane bound to key.
func (h *PaneHost) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	key = strings.ToLower(strings.TrimSpace(key))
	if len(key) != 1 {
		return false, nil
	}
	want := jumpKeyOf(key[0])
	for i, p := range h.panes {
		if want != 0 && p.Focusable() && jumpKeyOf(p.JumpKey()) == want {
			m.SetStatus("Focused pane: " + p.Title())
			return true, h.transition(i, i)
		}
	}
	return false, nil
}

// BuildPane returns the widget that draws pane id in the layout. It is tagged
// with the id so the tab can scroll it into view.
func (h *PaneHost) BuildPane(id string) widgets.Widget {
	for i, p := range h.panes {
		if p.ID() == id {
			return paneSlot{host: h, index: i}
		}
	}
	return widgets.Pane{Title: "Missing pane", Content: id}
}

type paneSlot struct {
	host  *PaneHost
	index int
}

func (s paneSlot) Tag() string { return s.host.panes[s.index].ID() }

func (s paneSlot) Render(width, height int) string {
	return s.host.panes[s.index].View(width, height, s.index == s.host.selected, s.index == s.host.focused)
}

// jumpKeyOf lowercases letters and digits; anything else is not a jump key.
func jumpKeyOf(b byte) byte {
	r := rune(b)
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	return byte(unicode.ToLower(r))
}
