package tui

import "github.com/blackwell-systems/reelctl/internal/tmdb"

// RouteName identifies a screen.
type RouteName string

const (
	RouteCatalog RouteName = "catalog"
	RouteDetail  RouteName = "detail"
)

// Route is a navigation target together with its parameters.
// The set of routes is closed: CatalogRoute and DetailRoute.
type Route interface {
	Name() RouteName
	isRoute()
}

// CatalogRoute returns to the list screen. It carries no parameters.
type CatalogRoute struct{}

func (CatalogRoute) Name() RouteName { return RouteCatalog }
func (CatalogRoute) isRoute()        {}

// DetailRoute opens the detail screen for an already-fetched record.
type DetailRoute struct {
	Record tmdb.Record
}

func (DetailRoute) Name() RouteName { return RouteDetail }
func (DetailRoute) isRoute()        {}

// NavigateMsg is emitted when a screen wants to move forward to another route.
type NavigateMsg struct {
	Route Route
}

// BackMsg pops the current screen.
type BackMsg struct{}
