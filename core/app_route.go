package core

import (
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glacionet/internal/logging"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		if msg.IsErr {
			logging.LogError(m.logger, "status error", errors.New(msg.Text), slog.String("tab", m.ActiveTabID()))
		}
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		logging.LogOperation(m.logger, "command_execute", slog.String("command", msg.CommandID))
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case PageSelectMsg:
		if !m.SwitchTabByID(msg.ID) {
			m.SetStatus("Unknown page: " + msg.ID)
		}
		return m, nil
	case JumpTargetSelectedMsg:
		if len(m.tabs) == 0 {
			return m, nil
		}
		provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
		if !ok {
			return m, nil
		}
		handled, cmd := provider.JumpToTarget(&m, msg.Key)
		if handled {
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			m.screens.ReplaceTop(next)
			return m, cmd
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, ActionQuit, scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, ActionJump, scope) {
			return m, m.activateJumpPicker()
		}
		if len(m.tabs) > 0 {
			if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok {
				handled, cmd := handler.HandlePaneKey(&m, msg)
				if handled {
					return m, cmd
				}
			}
		}
		if m.keys.IsAction(msg, ActionPalette, scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, ActionNavMenu, scope) {
			m.screens.Push(newNavMenuScreen(m.keys, m.tabs, m.activeTab))
			return m, nil
		}
		if m.keys.IsAction(msg, ActionNextTab, scope) {
			m.CycleTab(1)
			return m, nil
		}
		if m.keys.IsAction(msg, ActionPrevTab, scope) {
			m.CycleTab(-1)
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, SwitchTabAction(i+1), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
		if action, ok := m.keys.ActionFor(msg, scope); ok {
			if id, isCmd := strings.CutPrefix(action, "command:"); isCmd {
				return m, m.commands.Execute(id, &m)
			}
		}
		if len(m.tabs) > 0 {
			return m, m.tabs[m.activeTab].Update(&m, msg)
		}
		return m, nil
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

func (m *Model) activateJumpPicker() tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		m.SetStatus("No jump targets on this page")
		return nil
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		m.SetStatus("No jump targets on this page")
		return nil
	}
	if m.OpenJumpPickerModal != nil {
		m.screens.Push(m.OpenJumpPickerModal(m, targets))
	} else {
		m.screens.Push(newJumpPickerScreen(m.keys, targets))
	}
	m.SetStatus("Jump mode: press a pane key")
	return nil
}
