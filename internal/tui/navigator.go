package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigator is the root model. It owns the catalog screen for the lifetime
// of the program and stacks at most one detail screen on top of it.
type Navigator struct {
	svc     Services
	catalog CatalogModel
	detail  *DetailModel

	width, height int
}

// NewNavigator creates the root model starting on the catalog route.
func NewNavigator(svc Services) Navigator {
	return Navigator{
		svc:     svc,
		catalog: NewCatalogModel(svc),
	}
}

// Current returns the route on screen.
func (n Navigator) Current() RouteName {
	if n.detail != nil {
		return RouteDetail
	}
	return RouteCatalog
}

// Catalog returns the catalog screen.
func (n Navigator) Catalog() CatalogModel { return n.catalog }

// Detail returns the detail screen, if one is shown.
func (n Navigator) Detail() (DetailModel, bool) {
	if n.detail == nil {
		return DetailModel{}, false
	}
	return *n.detail, true
}

func (n Navigator) Init() tea.Cmd {
	return n.catalog.Init()
}

func (n Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NavigateMsg:
		next, cmd := n.navigate(msg.Route)
		return next, cmd

	case BackMsg:
		n.detail = nil
		return n, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return n, tea.Quit
		}
		// Keys go to the screen on top only.
		if n.detail != nil {
			d, cmd := n.detail.Update(msg)
			n.detail = &d
			return n, cmd
		}
		var cmd tea.Cmd
		n.catalog, cmd = n.catalog.Update(msg)
		return n, cmd

	case tea.WindowSizeMsg:
		n.width = msg.Width
		n.height = msg.Height
	}

	// Everything else reaches both screens: a catalog fetch may settle while
	// the detail screen is open.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	n.catalog, cmd = n.catalog.Update(msg)
	cmds = append(cmds, cmd)
	if n.detail != nil {
		d, cmd := n.detail.Update(msg)
		n.detail = &d
		cmds = append(cmds, cmd)
	}
	return n, tea.Batch(cmds...)
}

// navigate moves forward to route. A nil or unknown route is a programming
// error.
func (n Navigator) navigate(route Route) (Navigator, tea.Cmd) {
	switch r := route.(type) {
	case DetailRoute:
		d := NewDetailModel(r, n.svc)
		if n.width > 0 {
			d, _ = d.Update(tea.WindowSizeMsg{Width: n.width, Height: n.height})
		}
		n.detail = &d
		n.svc.Logger.Debug().Int("id", r.Record.ID).Str("title", r.Record.Title).Msg("open detail")
		return n, d.Init()

	case CatalogRoute:
		n.detail = nil
		return n, nil

	default:
		panic(fmt.Sprintf("tui: navigation to unknown route %T", route))
	}
}

func (n Navigator) View() string {
	if n.detail != nil {
		return n.detail.View()
	}
	return n.catalog.View()
}

// RunNavigator runs the interactive browser until the user quits.
func RunNavigator(svc Services) error {
	p := tea.NewProgram(NewNavigator(svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
