package core

import (
	"fmt"
	"strings"
)

const (
	ActionQuit        = "quit"
	ActionJump        = "jump"
	ActionPanePrev    = "pane-prev"
	ActionPaneNext    = "pane-next"
	ActionPaneFocus   = "pane-focus"
	ActionPalette     = "open-command-palette"
	ActionNavMenu     = "open-nav-menu"
	ActionNextTab     = "next-tab"
	ActionPrevTab     = "prev-tab"
	ActionClose       = "close"
	ActionSelect      = "select"
	ActionScrollDown  = "scroll-down"
	ActionScrollUp    = "scroll-up"
	switchTabPrefix   = "switch-tab-"
	maxNumberedTabKey = 9
)

// SwitchTabAction is the action name bound to the numbered tab shortcut.
func SwitchTabAction(n int) string {
	return fmt.Sprintf("%s%d", switchTabPrefix, n)
}

// DefaultKeyBindings builds the app-wide bindings. tabTitles labels the
// numbered shortcuts in the footer.
func DefaultKeyBindings(tabTitles ...string) []KeyBinding {
	out := []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
	}
	for i, title := range tabTitles {
		if i >= maxNumberedTabKey {
			break
		}
		out = append(out, KeyBinding{
			Keys:        []string{fmt.Sprintf("%d", i+1)},
			Action:      SwitchTabAction(i + 1),
			Description: strings.ToLower(title),
			Scopes:      []string{"*"},
		})
	}
	out = append(out,
		KeyBinding{Keys: []string{"tab"}, Action: ActionNextTab, Description: "next page", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"shift+tab"}, Action: ActionPrevTab, Description: "prev page", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"n"}, Action: ActionNavMenu, Description: "menu", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"v"}, Action: ActionJump, Description: "jump mode", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"left", "up"}, Action: ActionPanePrev, Description: "pane prev", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"right", "down"}, Action: ActionPaneNext, Description: "pane next", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"enter"}, Action: ActionPaneFocus, Description: "focus pane", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"pgdown", "ctrl+d"}, Action: ActionScrollDown, Description: "scroll down", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"pgup", "ctrl+u"}, Action: ActionScrollUp, Description: "scroll up", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"ctrl+k"}, Action: ActionPalette, Description: "commands", Scopes: []string{"*"}},
		KeyBinding{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: []string{"screen:*", "pane:*"}},
		KeyBinding{Keys: []string{"enter"}, Action: ActionSelect, Description: "select", Scopes: []string{"screen:*"}},
	)
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Bindings for unknown actions are left untouched.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	applied := make(map[string]bool, len(actionKeys))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			if applied[b.Action] {
				// An action bound more than once collapses onto its first binding.
				continue
			}
			applied[b.Action] = true
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
