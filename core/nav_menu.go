package core

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// navMenuScreen is the collapsed navigation shown on narrow terminals.
// Picking an entry switches the page and closes the menu.
type navMenuScreen struct {
	keys   *KeyRegistry
	tabs   []Tab
	picker *Picker
}

func newNavMenuScreen(keys *KeyRegistry, tabs []Tab, active int) *navMenuScreen {
	items := make([]PickerItem, 0, len(tabs))
	for i, t := range tabs {
		items = append(items, PickerItem{
			ID:     t.ID(),
			Label:  fmt.Sprintf("%d  %s", i+1, t.Title()),
			Search: t.Title() + " " + t.ID(),
		})
	}
	p := NewPicker(items)
	for i := 0; i < active; i++ {
		p.CursorDown()
	}
	return &navMenuScreen{keys: registryOrDefault(keys), tabs: tabs, picker: p}
}

func (s *navMenuScreen) Title() string { return "Menu" }
func (s *navMenuScreen) Scope() string { return "screen:nav-menu" }

// Update closes on the close or menu action, opens the highlighted page on
// select, and follows the numbered page shortcuts. Other keys move the cursor
// or filter the list.
func (s *navMenuScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	scope := s.Scope()
	switch {
	case s.keys.IsAction(keyMsg, ActionClose, scope), s.keys.IsAction(keyMsg, ActionNavMenu, scope):
		return s, nil, true
	case s.keys.IsAction(keyMsg, ActionSelect, scope):
		if item, ok := s.picker.CurrentItem(); ok {
			return s, SelectPageCmd(item.ID), true
		}
		return s, nil, false
	}
	for i, t := range s.tabs {
		if s.keys.IsAction(keyMsg, SwitchTabAction(i+1), scope) {
			return s, SelectPageCmd(t.ID()), true
		}
	}
	keyName := strings.TrimSpace(keyMsg.String())
	switch {
	case keyName == "enter", keyName == "esc":
		return s, nil, false
	case len(keyName) == 1 && keyName[0] >= '0' && keyName[0] <= '9':
		return s, nil, false
	}
	s.picker.HandleKey(keyName)
	return s, nil, false
}

func (s *navMenuScreen) View(width, height int) string {
	lines := make([]string, 0, len(s.tabs)+4)
	lines = append(lines, headerAppStyle.Render("Menu"), "")
	cursor := s.picker.Cursor()
	for i, item := range s.picker.Items() {
		if i == cursor {
			lines = append(lines, activeTabStyle.Render("> "+item.Label))
			continue
		}
		lines = append(lines, "  "+item.Label)
	}
	lines = append(lines, "", helpDescStyle.Render("↑/↓ move · enter open · esc close"))
	return ClipHeight(TrimToWidth(strings.Join(lines, "\n"), max(20, width)), max(6, height))
}
