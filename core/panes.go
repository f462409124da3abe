package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glacionet/core/widgets"
)

// Pane is one selectable region of a tab. The host drives selection and focus
// through the lifecycle hooks.
type Pane interface {
	ID() string
	Title() string
	Scope() string
	JumpKey() byte
	Focusable() bool
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
	OnSelect() tea.Cmd
	OnDeselect() tea.Cmd
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// PaneBase implements the identity half of Pane from a spec, with no-op
// hooks. Embed it and override what the pane reacts to.
type PaneBase struct {
	spec PaneSpec
}

func NewPaneBase(spec PaneSpec) PaneBase { return PaneBase{spec: spec} }

func (b PaneBase) ID() string             { return b.spec.ID }
func (b PaneBase) Title() string          { return b.spec.Title }
func (b PaneBase) Scope() string          { return b.spec.Scope }
func (b PaneBase) JumpKey() byte          { return b.spec.JumpKey }
func (b PaneBase) Focusable() bool        { return b.spec.Focusable }
func (b PaneBase) Init() tea.Cmd          { return nil }
func (b PaneBase) Update(tea.Msg) tea.Cmd { return nil }
func (b PaneBase) OnSelect() tea.Cmd      { return nil }
func (b PaneBase) OnDeselect() tea.Cmd    { return nil }
func (b PaneBase) OnFocus() tea.Cmd       { return nil }
func (b PaneBase) OnBlur() tea.Cmd        { return nil }

// Frame wraps body in the titled pane border.
func (b PaneBase) Frame(body string, width, height int, selected, focused bool) string {
	return widgets.Pane{Title: b.spec.Title, Content: body, Selected: selected, Focused: focused}.Render(width, height)
}

// ContentPane renders a fixed widget inside the pane border.
type ContentPane struct {
	PaneBase
	content widgets.Widget
}

func NewContentPane(spec PaneSpec) *ContentPane {
	return &ContentPane{PaneBase: NewPaneBase(spec), content: spec.Content}
}

func (p *ContentPane) View(width, height int, selected, focused bool) string {
	body := ""
	if p.content != nil {
		body = p.content.Render(max(1, width-4), max(1, height-2))
	}
	return p.Frame(body, width, height, selected, focused)
}
