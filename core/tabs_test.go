package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/glacionet/core/widgets"
)

func contentPane(id, title string, jump byte, focusable bool) Pane {
	return NewContentPane(PaneSpec{
		ID:        id,
		Title:     title,
		Scope:     "pane:x:" + id,
		JumpKey:   jump,
		Focusable: focusable,
		Content:   widgets.Text{Body: title + " body"},
	})
}

func paneModel() *Model {
	return &Model{keys: NewKeyRegistry(DefaultKeyBindings())}
}

func twoPanes() PaneHost {
	return NewPaneHost(contentPane("p1", "Pane One", 'o', true), contentPane("p2", "Pane Two", 't', true))
}

// hookPane records lifecycle calls.
type hookPane struct {
	PaneBase
	log *[]string
}

func (p hookPane) View(int, int, bool, bool) string { return p.ID() }
func (p hookPane) OnSelect() tea.Cmd                { return p.record("select") }
func (p hookPane) OnDeselect() tea.Cmd              { return p.record("deselect") }
func (p hookPane) OnFocus() tea.Cmd                 { return p.record("focus") }
func (p hookPane) OnBlur() tea.Cmd                  { return p.record("blur") }

func (p hookPane) record(hook string) tea.Cmd {
	*p.log = append(*p.log, hook+" "+p.ID())
	return nil
}

func TestPaneHostScopeTracksSelectionAndFocus(t *testing.T) {
	host := twoPanes()
	if got := host.Scope(); got != "pane:x:p1" {
		t.Fatalf("scope mismatch: %s", got)
	}
	_, _ = host.HandlePaneKey(paneModel(), tea.KeyMsg{Type: tea.KeyRight})
	if got := host.Scope(); got != "pane:x:p2" {
		t.Fatalf("scope should follow selection: %s", got)
	}
	_, _ = host.HandlePaneKey(paneModel(), tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.FocusedID(); got != "p2" {
		t.Fatalf("expected p2 focused, got %q", got)
	}
}

func TestPaneHostSelectionWraps(t *testing.T) {
	host := twoPanes()
	_, _ = host.HandlePaneKey(paneModel(), tea.KeyMsg{Type: tea.KeyUp})
	if got := host.SelectedID(); got != "p2" {
		t.Fatalf("moving back from the first pane should wrap, got %q", got)
	}
}

func TestPaneHostEscDefocuses(t *testing.T) {
	host := twoPanes()
	m := paneModel()
	_, _ = host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.ActivePaneTitle(); got != "Pane One" {
		t.Fatalf("expected pane one focused")
	}
	handled, _ := host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatalf("expected esc to be handled by pane host")
	}
	if host.FocusedID() != "" || host.Scope() != "pane:x:p1" {
		t.Fatalf("expected selected scope after unfocus, got %s", host.Scope())
	}
	if status, _ := m.Status(); status != "Pane unfocused: Pane One" {
		t.Fatalf("unexpected status %q", status)
	}
}

func TestPaneHostFocusedDoesNotCaptureArrowKeys(t *testing.T) {
	host := twoPanes()
	_, _ = host.HandlePaneKey(paneModel(), tea.KeyMsg{Type: tea.KeyEnter})
	handled, _ := host.HandlePaneKey(paneModel(), tea.KeyMsg{Type: tea.KeyDown})
	if handled {
		t.Fatalf("expected down key to pass through when pane is focused")
	}
	if got := host.Scope(); got != "pane:x:p1" {
		t.Fatalf("expected focus retained on pane one; got %s", got)
	}
}

func TestPaneHostUnfocusablePane(t *testing.T) {
	host := NewPaneHost(contentPane("hero", "Hero", 'g', false), contentPane("p2", "Pane Two", 't', true))
	m := paneModel()
	handled, _ := host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !handled || host.FocusedID() != "" {
		t.Fatalf("enter on a static pane should be consumed without focusing")
	}
	if status, _ := m.Status(); status != "Hero has nothing to focus" {
		t.Fatalf("unexpected status %q", status)
	}
}

func TestPaneHostHooksFireOnChangeOnly(t *testing.T) {
	var log []string
	mk := func(id string, jump byte) Pane {
		return hookPane{PaneBase: NewPaneBase(PaneSpec{ID: id, Title: id, JumpKey: jump, Focusable: true}), log: &log}
	}
	host := NewPaneHost(mk("a", 'a'), mk("b", 'b'))
	_, _ = host.JumpToTarget(paneModel(), "B")
	want := []string{"deselect a", "select b", "focus b"}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Fatalf("hooks = %v, want %v", log, want)
	}
	log = nil
	_, _ = host.JumpToTarget(paneModel(), "b")
	if len(log) != 0 {
		t.Fatalf("jumping to the focused pane should not fire hooks, got %v", log)
	}
}

func TestPaneHostBuildPaneShowsFocus(t *testing.T) {
	host := twoPanes()
	_, _ = host.HandlePaneKey(paneModel(), tea.KeyMsg{Type: tea.KeyEnter})
	out := ansi.Strip(host.BuildPane("p1").Render(30, 4))
	if !strings.Contains(out, "● Pane One") || !strings.Contains(out, "Pane One body") {
		t.Fatalf("expected focused title and body:\n%s", out)
	}
	missing := ansi.Strip(host.BuildPane("nope").Render(30, 4))
	if !strings.Contains(missing, "Missing pane") {
		t.Fatalf("expected missing pane placeholder:\n%s", missing)
	}
}

func TestPaneHostJumpTargetsAndFocus(t *testing.T) {
	host := NewPaneHost(
		contentPane("p1", "Pane One", 'o', true),
		contentPane("p2", "Pane Two", 't', false),
		contentPane("p3", "Pane Three", 'h', true),
	)
	targets := host.JumpTargets()
	if len(targets) != 2 {
		t.Fatalf("jump target count = %d, want 2", len(targets))
	}
	if handled, _ := host.JumpToTarget(paneModel(), "t"); handled {
		t.Fatalf("static panes are not jump targets")
	}
	handled, _ := host.JumpToTarget(paneModel(), "h")
	if !handled {
		t.Fatalf("expected jump target to be handled")
	}
	if got := host.ActivePaneTitle(); got != "Pane Three" {
		t.Fatalf("active pane mismatch: %s", got)
	}
}

func TestNewPaneHostRejectsDuplicateJumpKeys(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate jump key")
		}
	}()
	NewPaneHost(contentPane("a", "A", 'x', true), contentPane("b", "B", 'X', true))
}

func TestPaneHostFollowsReboundKeys(t *testing.T) {
	m := &Model{keys: NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		ActionPaneNext:  {"l"},
		ActionPaneFocus: {"f"},
		ActionClose:     {"u"},
	}))}
	host := twoPanes()
	if handled, _ := host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyRight}); handled {
		t.Fatalf("right should pass through once pane-next is rebound")
	}
	if handled, _ := host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}); !handled || host.SelectedID() != "p2" {
		t.Fatalf("l should select the next pane, got %q", host.SelectedID())
	}
	_, _ = host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if host.FocusedID() != "p2" {
		t.Fatalf("f should focus the selected pane")
	}
	if handled, _ := host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEsc}); handled {
		t.Fatalf("esc should reach the focused pane once close is rebound")
	}
	_, _ = host.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	if host.FocusedID() != "" {
		t.Fatalf("u should unfocus")
	}
}
