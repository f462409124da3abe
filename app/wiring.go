package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glacionet/core"
	"github.com/jask/glacionet/core/screens"
	"github.com/jask/glacionet/internal/glacier"
)

// Source describes where the dataset came from, for the show-dataset command.
type Source struct {
	Dataset glacier.Dataset
	Path    string
}

func (s Source) describe() string {
	g := s.Dataset.Glacier
	origin := "built-in sample"
	if s.Path != "" {
		origin = s.Path
	}
	return fmt.Sprintf("%s, %s · %s · %s · %s (%s)",
		g.Name, g.Region,
		glacier.FormatCoordinates(g.Lat(), g.Lon()),
		glacier.FormatElevation(g.Elevation),
		glacier.FormatArea(g.AreaKm2),
		origin)
}

// ConfigureModel installs the command palette and the dashboard commands on m.
func ConfigureModel(m *core.Model, src Source) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandPalette(model, scope)
	}
	RegisterCommands(m.CommandRegistry(), src)
}

// RegisterCommands adds a go-to command per page and show-dataset.
func RegisterCommands(reg *core.CommandRegistry, src Source) {
	for _, p := range Pages() {
		page := p
		reg.Register(core.Command{
			ID:          "go-" + page.String(),
			Name:        "Go to " + page.Title(),
			Description: "Show the " + page.Title() + " page",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				if !m.SwitchTabByID(page.String()) {
					return core.ErrorCmd(fmt.Errorf("%w: %s", ErrUnknownPage, page))
				}
				return core.StatusCmd(page.Title())
			},
		})
	}
	reg.Register(core.Command{
		ID:          "show-dataset",
		Name:        "Show dataset",
		Description: "Describe the glacier being monitored",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return core.StatusCmd(src.describe())
		},
	})
}

// KeyBindings are the default bindings plus the page-specific shortcuts,
// with overrides applied by action name.
func KeyBindings(overrides map[string][]string) []core.KeyBinding {
	bindings := core.DefaultKeyBindings(PageTitles()...)
	bindings = append(bindings,
		core.KeyBinding{Keys: []string{ctaMapKey}, Action: "command:go-map", Description: "view map", Scopes: []string{"pane:home:*"}},
		core.KeyBinding{Keys: []string{ctaPredictionsKey}, Action: "command:go-predictions", Description: "see predictions", Scopes: []string{"pane:home:*"}},
		core.KeyBinding{Keys: []string{"j", "down"}, Action: ActionRiskNext, Description: "next risk", Scopes: []string{risksPaneScope}},
		core.KeyBinding{Keys: []string{"k", "up"}, Action: ActionRiskPrev, Description: "prev risk", Scopes: []string{risksPaneScope}},
		core.KeyBinding{Keys: []string{"g", "home"}, Action: ActionRiskFirst, Description: "first risk", Scopes: []string{risksPaneScope}},
		core.KeyBinding{Keys: []string{"G", "end"}, Action: ActionRiskLast, Description: "last risk", Scopes: []string{risksPaneScope}},
	)
	return core.ApplyActionKeybindings(bindings, overrides)
}
