package tui

import (
	"testing"

	"github.com/blackwell-systems/reelctl/internal/tmdb"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// send delivers msg to the navigator and returns the messages its command
// produced.
func send(t *testing.T, n Navigator, msg tea.Msg) (Navigator, []tea.Msg) {
	t.Helper()
	next, cmd := n.Update(msg)
	nav, ok := next.(Navigator)
	require.True(t, ok)
	return nav, drain(cmd)
}

func startedNavigator(t *testing.T, cat *fakeCatalog) Navigator {
	t.Helper()
	n := NewNavigator(testServices(cat))
	n, _ = send(t, n, tea.WindowSizeMsg{Width: 100, Height: 40})

	msg, ok := findMsg[recordsMsg](drain(n.Init()))
	require.True(t, ok)
	n, _ = send(t, n, msg)
	return n
}

func TestNavigator_StartsOnCatalog(t *testing.T) {
	n := startedNavigator(t, newFakeCatalog())

	assert.Equal(t, RouteCatalog, n.Current())
	_, ok := n.Detail()
	assert.False(t, ok)
	assert.Contains(t, n.View(), "Now Playing")
}

func TestNavigator_SearchSelectAndBack(t *testing.T) {
	cat := newFakeCatalog()
	n := startedNavigator(t, cat)

	n, msgs := send(t, n, keyRunes("batman"))
	rm, ok := findMsg[recordsMsg](msgs)
	require.True(t, ok)
	n, _ = send(t, n, rm)
	require.Equal(t, []tmdb.Record{batmanRecord}, n.Catalog().Records())

	n, msgs = send(t, n, keyType(tea.KeyEnter))
	nav, ok := findMsg[NavigateMsg](msgs)
	require.True(t, ok)

	n, _ = send(t, n, nav)
	assert.Equal(t, RouteDetail, n.Current())

	d, ok := n.Detail()
	require.True(t, ok)
	assert.Equal(t, batmanRecord, d.Record())
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/x.jpg", d.PosterURL())

	view := n.View()
	assert.Contains(t, view, "Batman")
	assert.Contains(t, view, "2022-03-01")
	assert.Contains(t, view, "https://image.tmdb.org/t/p/w500/x.jpg")

	// Opening the detail screen made no catalog request.
	assert.Len(t, cat.Calls(), 2)

	n, msgs = send(t, n, keyType(tea.KeyEsc))
	back, ok := findMsg[BackMsg](msgs)
	require.True(t, ok)
	n, _ = send(t, n, back)

	assert.Equal(t, RouteCatalog, n.Current())
	assert.Equal(t, "batman", n.Catalog().Query())
	assert.Equal(t, []tmdb.Record{batmanRecord}, n.Catalog().Records())
	assert.Len(t, cat.Calls(), 2, "returning to the list must not refetch")
}

func TestNavigator_KeysOnlyReachTopScreen(t *testing.T) {
	cat := newFakeCatalog()
	n := startedNavigator(t, cat)

	n, _ = send(t, n, NavigateMsg{Route: DetailRoute{Record: duneRecord}})
	n, _ = send(t, n, keyRunes("j"))

	assert.Equal(t, "", n.Catalog().Query())
	assert.Len(t, cat.Calls(), 1)
}

func TestNavigator_ResultsSettleBehindDetail(t *testing.T) {
	cat := newFakeCatalog()
	n := startedNavigator(t, cat)

	n, msgs := send(t, n, keyRunes("batman"))
	rm, ok := findMsg[recordsMsg](msgs)
	require.True(t, ok)

	n, _ = send(t, n, NavigateMsg{Route: DetailRoute{Record: duneRecord}})
	n, _ = send(t, n, rm)

	assert.Equal(t, RouteDetail, n.Current())
	assert.Equal(t, []tmdb.Record{batmanRecord}, n.Catalog().Records())
	assert.False(t, n.Catalog().Fetching())
}

func TestNavigator_CatalogRoutePops(t *testing.T) {
	n := startedNavigator(t, newFakeCatalog())

	n, _ = send(t, n, NavigateMsg{Route: DetailRoute{Record: wonkaRecord}})
	require.Equal(t, RouteDetail, n.Current())

	n, _ = send(t, n, NavigateMsg{Route: CatalogRoute{}})
	assert.Equal(t, RouteCatalog, n.Current())
}

func TestNavigator_DetailSizedFromWindow(t *testing.T) {
	n := startedNavigator(t, newFakeCatalog())

	n, _ = send(t, n, NavigateMsg{Route: DetailRoute{Record: duneRecord}})
	d, ok := n.Detail()
	require.True(t, ok)
	assert.Equal(t, 100, d.width)
	assert.Equal(t, 40, d.height)
}

func TestNavigator_UnknownRoutePanics(t *testing.T) {
	n := startedNavigator(t, newFakeCatalog())

	assert.Panics(t, func() { n.Update(NavigateMsg{}) })
}

func TestNavigator_CtrlCQuitsFromDetail(t *testing.T) {
	n := startedNavigator(t, newFakeCatalog())
	n, _ = send(t, n, NavigateMsg{Route: DetailRoute{Record: duneRecord}})

	_, msgs := send(t, n, keyType(tea.KeyCtrlC))
	_, ok := findMsg[tea.QuitMsg](msgs)
	assert.True(t, ok)
}
