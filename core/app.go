package core

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glacionet/core/widgets"
	"github.com/jask/glacionet/internal/logging"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

// BodyRenderer tabs draw their own body window, e.g. to scroll.
type BodyRenderer interface {
	RenderBody(m *Model, width, height int) string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// Options tune presentation. Zero values fall back to defaults.
type Options struct {
	Brand       string
	NarrowWidth int
	Logger      *slog.Logger
}

const defaultNarrowWidth = 80

type Model struct {
	width               int
	height              int
	tabs                []Tab
	activeTab           int
	screens             ScreenStack
	keys                *KeyRegistry
	commands            *CommandRegistry
	status              string
	statusErr           bool
	quitting            bool
	brand               string
	narrowWidth         int
	logger              *slog.Logger
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, opts Options) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	if opts.Brand == "" {
		opts.Brand = "GlacioNet"
	}
	if opts.NarrowWidth <= 0 {
		opts.NarrowWidth = defaultNarrowWidth
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return Model{
		tabs:        tabs,
		keys:        keys,
		commands:    commands,
		status:      "Ready",
		activeTab:   0,
		width:       100,
		height:      32,
		brand:       opts.Brand,
		narrowWidth: opts.NarrowWidth,
		logger:      opts.Logger,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m Model) ActiveTabIndex() int { return m.activeTab }

func (m Model) ActiveTabID() string {
	if t := m.ActiveTab(); t != nil {
		return t.ID()
	}
	return ""
}

func (m Model) Tabs() []Tab { return append([]Tab(nil), m.tabs...) }

// SwitchTab selects the tab at index. Out-of-range indices are ignored.
func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	if index != m.activeTab {
		logging.LogOperation(m.logger, "page_switch",
			slog.String("from", m.tabs[m.activeTab].ID()),
			slog.String("to", m.tabs[index].ID()))
	}
	m.activeTab = index
}

// SwitchTabByID selects the tab with the given id and reports whether one matched.
func (m *Model) SwitchTabByID(id string) bool {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.SwitchTab(i)
			return true
		}
	}
	return false
}

// CycleTab moves the selection by delta, wrapping at both ends.
func (m *Model) CycleTab(delta int) {
	n := len(m.tabs)
	if n == 0 {
		return
	}
	m.SwitchTab(((m.activeTab+delta)%n + n) % n)
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) ScreenDepth() int { return m.screens.Len() }

// Keys is the model's key registry.
func (m Model) Keys() *KeyRegistry { return m.keys }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Width() int  { return m.width }
func (m Model) Height() int { return m.height }

// Narrow reports whether the terminal is below the collapsed-navigation breakpoint.
func (m Model) Narrow() bool { return m.width < m.narrowWidth }

func (m Model) Logger() *slog.Logger { return m.logger }

// SetSize is used for non-interactive rendering where no WindowSizeMsg arrives.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}
