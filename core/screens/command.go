package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glacionet/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the ctrl+k palette. The search func is re-run on every
// keystroke; picking an entry emits the message built by onSelect.
type CommandScreen struct {
	keys     *core.KeyRegistry
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 56, 12)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{
		keys:     core.NewKeyRegistry(core.DefaultKeyBindings()),
		scope:    scope,
		search:   search,
		onSelect: onSelect,
		input:    inp,
		list:     lst,
	}
	s.refresh()
	return s
}

// WithKeys makes the screen close and select with the bindings in keys.
func (s *CommandScreen) WithKeys(keys *core.KeyRegistry) *CommandScreen {
	if keys != nil {
		s.keys = keys
	}
	return s
}

// NewCommandPalette wires a CommandScreen to the model's command registry.
func NewCommandPalette(m *core.Model, scope string) *CommandScreen {
	reg := m.CommandRegistry()
	search := func(query string) []CommandOption {
		results := reg.Search(query, scope, m)
		out := make([]CommandOption, 0, len(results))
		for _, r := range results {
			out = append(out, CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
		}
		return out
	}
	return NewCommandScreen(scope, search, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	}).WithKeys(m.Keys())
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return "screen:command" }

// Query is the current search text.
func (s *CommandScreen) Query() string { return s.input.Value() }

// Options lists the entries currently shown.
func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(msg, core.ActionClose, s.Scope()):
			return s, nil, true
		case s.keys.IsAction(msg, core.ActionSelect, s.Scope()):
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, core.StatusCmd("No matching command"), true
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect != nil {
				return s, func() tea.Msg { return s.onSelect(it.ID) }, true
			}
			return s, nil, true
		}
		switch msg.String() {
		case "up", "down", "ctrl+p", "ctrl+n":
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(navKey(msg))
			return s, cmd, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refresh()
	return s, cmd, false
}

func navKey(msg tea.KeyMsg) tea.KeyMsg {
	switch msg.String() {
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return msg
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	items := s.search(query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(max(20, width))
	s.list.SetHeight(max(4, height-3))
	body := s.list.View()
	if len(s.list.Items()) == 0 {
		body = "No matching commands"
	}
	return core.TrimToWidth("Command Palette\n"+s.input.View()+"\n"+body, max(20, width))
}
