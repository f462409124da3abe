package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

// PageSelectMsg selects a tab by its id.
type PageSelectMsg struct {
	ID string
}

// PaneActionMsg is a key press bound to Action in the active pane's scope.
type PaneActionMsg struct {
	Action string
	Key    tea.KeyMsg
}

type JumpTargetSelectedMsg struct {
	Key string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func SelectPageCmd(id string) tea.Cmd {
	return func() tea.Msg { return PageSelectMsg{ID: id} }
}
