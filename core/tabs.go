package core

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glacionet/core/widgets"
)

// PaneSpec declares a pane. Panes with a Factory are built by it; the rest
// render Content.
type PaneSpec struct {
	ID        string
	Title     string
	Scope     string
	JumpKey   byte
	Focusable bool
	Content   widgets.Widget
	Factory   func(spec PaneSpec) Pane
}

// LayoutBuilder arranges a tab's panes for the current model size.
type LayoutBuilder func(host *PaneHost, m *Model) widgets.Widget

// GeneratedTab is a Tab assembled from pane specs and a layout. A layout
// taller than the body scrolls; moving the selection scrolls the selected
// pane into view.
type GeneratedTab struct {
	id     string
	title  string
	host   PaneHost
	layout LayoutBuilder
	view   viewport.Model
}

func NewGeneratedTab(id, title string, specs []PaneSpec, layout LayoutBuilder) *GeneratedTab {
	panes := make([]Pane, len(specs))
	for i, spec := range specs {
		if spec.Factory != nil {
			panes[i] = spec.Factory(spec)
		} else {
			panes[i] = NewContentPane(spec)
		}
	}
	return &GeneratedTab{id: id, title: title, host: NewPaneHost(panes...), layout: layout, view: viewport.New(0, 0)}
}

func (t *GeneratedTab) ID() string                { return t.id }
func (t *GeneratedTab) Title() string             { return t.title }
func (t *GeneratedTab) Scope() string             { return t.host.Scope() }
func (t *GeneratedTab) Host() *PaneHost           { return &t.host }
func (t *GeneratedTab) ActivePaneTitle() string   { return t.host.ActivePaneTitle() }
func (t *GeneratedTab) JumpTargets() []JumpTarget { return t.host.JumpTargets() }
func (t *GeneratedTab) InitTab(*Model) tea.Cmd    { return t.host.Init() }

func (t *GeneratedTab) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	handled, cmd := t.host.JumpToTarget(m, key)
	if handled {
		t.reveal(m)
	}
	return handled, cmd
}

func (t *GeneratedTab) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	scope := t.host.Scope()
	switch {
	case m.keys.IsAction(msg, ActionScrollDown, scope):
		t.scroll(m, 1)
		return true, nil
	case m.keys.IsAction(msg, ActionScrollUp, scope):
		t.scroll(m, -1)
		return true, nil
	}
	handled, cmd := t.host.HandlePaneKey(m, msg)
	if handled {
		t.reveal(m)
	}
	return handled, cmd
}

// Update hands msg to the active pane. A key bound to an action in the
// pane's own scope arrives as a PaneActionMsg.
func (t *GeneratedTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && m != nil {
		if action, found := m.keys.LocalAction(key, t.host.Scope()); found {
			msg = PaneActionMsg{Action: action, Key: key}
		}
	}
	return t.host.UpdateActive(msg)
}

func (t *GeneratedTab) Build(m *Model) widgets.Widget {
	if t.layout == nil {
		return widgets.Pane{Title: t.title}
	}
	return t.layout(&t.host, m)
}

// RenderBody draws the visible window of the layout.
func (t *GeneratedTab) RenderBody(m *Model, width, height int) string {
	t.place(m, width, height)
	return t.view.View()
}

// ScrollOffset is the first layout row shown in the body.
func (t *GeneratedTab) ScrollOffset() int { return t.view.YOffset }

// place renders the whole layout into the viewport, at least as tall as
// the layout needs, and returns it with the row count used.
func (t *GeneratedTab) place(m *Model, width, height int) (widgets.Widget, int) {
	body := t.Build(m)
	rows := height
	if sized, ok := body.(interface{ MinHeight() int }); ok {
		rows = max(height, sized.MinHeight())
	}
	t.view.Width, t.view.Height = width, height
	t.view.SetContent(body.Render(width, rows))
	t.view.SetYOffset(t.view.YOffset)
	return body, rows
}

func (t *GeneratedTab) scroll(m *Model, dir int) {
	width, height := m.BodySize()
	if height <= 0 {
		return
	}
	t.place(m, width, height)
	step := max(1, height/2)
	if dir > 0 {
		t.view.ScrollDown(step)
	} else {
		t.view.ScrollUp(step)
	}
}

func (t *GeneratedTab) reveal(m *Model) {
	width, height := m.BodySize()
	if height <= 0 {
		return
	}
	body, rows := t.place(m, width, height)
	loc, ok := body.(widgets.Locator)
	if !ok {
		return
	}
	top, n, ok := loc.Locate(t.host.SelectedID(), width, rows)
	if !ok {
		return
	}
	switch {
	case top < t.view.YOffset:
		t.view.SetYOffset(top)
	case top+n > t.view.YOffset+height:
		t.view.SetYOffset(min(top, top+n-height))
	}
}
