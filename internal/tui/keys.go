package tui

import "github.com/charmbracelet/bubbles/key"

// CatalogKeys are the bindings of the catalog screen. Everything not bound
// here is typed into the search box.
type CatalogKeys struct {
	Quit   key.Binding
	Select key.Binding
	Up     key.Binding
	Down   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
}

// NewCatalogKeys creates the catalog key bindings.
func NewCatalogKeys() CatalogKeys {
	return CatalogKeys{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PgUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PgDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
	}
}

// Navigation returns the bindings that move the list cursor.
func (k CatalogKeys) Navigation() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PgUp, k.PgDown}
}

// DetailKeys are the bindings of the detail screen.
type DetailKeys struct {
	Quit key.Binding
	Back key.Binding
	Up   key.Binding
	Down key.Binding
}

// NewDetailKeys creates the detail key bindings.
func NewDetailKeys() DetailKeys {
	return DetailKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "h", "left"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}
