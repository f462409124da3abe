package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/glacionet/core/widgets"
)

type routerTab struct{ hits int }

func (t *routerTab) ID() string                    { return "r" }
func (t *routerTab) Title() string                 { return "Router" }
func (t *routerTab) Scope() string                 { return "tab:r" }
func (t *routerTab) JumpKey() byte                 { return 'r' }
func (t *routerTab) Build(m *Model) widgets.Widget { return widgets.Text{Body: "x"} }
func (t *routerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.hits++
	}
	return nil
}

type fakeScreen struct{ hits int }

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func TestScreenGetsKeyBeforeTab(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), Options{})
	screen := &fakeScreen{}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if tab.hits != 0 {
		t.Fatalf("tab should not receive key when screen open")
	}
	if updated.screens.Len() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), Options{})
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

func TestSwitchAndCycleTabs(t *testing.T) {
	m := NewModel(threePages(), nil, nil, Options{})
	m.SwitchTab(5)
	if m.ActiveTabIndex() != 0 {
		t.Fatalf("out-of-range switch should be ignored")
	}
	m.CycleTab(-1)
	if m.ActiveTabID() != "predictions" {
		t.Fatalf("cycling back from the first page should wrap, got %q", m.ActiveTabID())
	}
	m.CycleTab(1)
	if m.ActiveTabID() != "home" {
		t.Fatalf("cycling forward from the last page should wrap, got %q", m.ActiveTabID())
	}
	if !m.SwitchTabByID("map") || m.ActiveTabIndex() != 1 {
		t.Fatalf("expected map selected by id")
	}
	if m.SwitchTabByID("settings") {
		t.Fatalf("unknown id should not match")
	}
}

func TestUnknownPageSelectSetsStatus(t *testing.T) {
	m := NewModel(threePages(), nil, nil, Options{})
	next, _ := m.Update(PageSelectMsg{ID: "settings"})
	m = next.(Model)
	if status, _ := m.Status(); status != "Unknown page: settings" {
		t.Fatalf("unexpected status %q", status)
	}
	if m.ActiveTabID() != "home" {
		t.Fatalf("page should not change")
	}
}

func TestCommandActionBinding(t *testing.T) {
	reg := NewCommandRegistry([]Command{{
		ID: "go-map",
		Execute: func(m *Model) tea.Cmd {
			return SelectPageCmd("map")
		},
	}})
	keys := NewKeyRegistry([]KeyBinding{{Keys: []string{"m"}, Action: "command:go-map", Scopes: []string{"tab:*"}}})
	m := NewModel(threePages(), keys, reg, Options{})
	next, cmd := m.Update(runeKey('m'))
	if cmd == nil {
		t.Fatalf("expected bound command to run")
	}
	next, _ = next.(Model).Update(cmd())
	if got := next.(Model).ActiveTabID(); got != "map" {
		t.Fatalf("expected map, got %q", got)
	}
}

func TestHeaderCollapsesWhenNarrow(t *testing.T) {
	m := NewModel(threePages(), nil, nil, Options{NarrowWidth: 80})
	m.SetSize(120, 20)
	if m.Narrow() {
		t.Fatalf("120 columns should not be narrow")
	}
	wide := ansi.Strip(renderHeader(m))
	if !strings.Contains(wide, "1:Overview") || !strings.Contains(wide, "3:AI Predictions") {
		t.Fatalf("wide header should list pages: %q", wide)
	}

	m.SetSize(60, 20)
	narrow := ansi.Strip(renderHeader(m))
	if !m.Narrow() || !strings.Contains(narrow, "☰ Menu (n)") || strings.Contains(narrow, "2:Map") {
		t.Fatalf("narrow header should collapse into the menu: %q", narrow)
	}
}

func TestStatusBarNamesOpenScreen(t *testing.T) {
	m := NewModel(threePages(), nil, nil, Options{})
	m.SetSize(60, 10)
	if out := ansi.Strip(RenderStatusBar(m)); strings.TrimSpace(out) != "Ready" {
		t.Fatalf("plain tabs have no location, got %q", out)
	}
	m.PushScreen(&fakeScreen{})
	out := ansi.Strip(RenderStatusBar(m))
	if !strings.HasPrefix(out, "Ready") || !strings.HasSuffix(strings.TrimRight(out, " "), "Screen") {
		t.Fatalf("expected screen title on the right, got %q", out)
	}
}
