package tui

import (
	"time"

	"github.com/blackwell-systems/reelctl/internal/tmdb"
	"github.com/blackwell-systems/reelctl/internal/tui/delegate"
	"github.com/blackwell-systems/reelctl/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// recordsMsg carries the outcome of one catalog fetch.
type recordsMsg struct {
	seq     int
	query   string
	records []tmdb.Record
	err     error
}

// debounceMsg fires once the search box has been quiet for the debounce window.
type debounceMsg struct {
	seq int
}

// CatalogModel is the list screen: a search box over the now-playing or
// search results.
//
// Every change of the search text issues one request tagged with an
// increasing sequence number. Only the response to the latest request is
// applied; older ones are dropped when they arrive.
type CatalogModel struct {
	svc     Services
	keys    CatalogKeys
	input   textinput.Model
	list    list.Model
	spinner spinner.Model

	query    string
	records  []tmdb.Record
	seq      int // last request issued
	fetching bool

	width, height int
}

// NewCatalogModel creates the catalog screen with an empty search.
// The first request (now playing) is issued by Init.
func NewCatalogModel(svc Services) CatalogModel {
	ti := textinput.New()
	ti.Placeholder = "Search movies"
	ti.Prompt = "⌕ "
	ti.CharLimit = 0 // unlimited
	ti.Focus()

	d := delegate.NewMultiline(renderRecordItem, 2, 1)
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("movie", "movies")
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.NoItems = StyleHelp

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleHighlight

	return CatalogModel{
		svc:      svc,
		keys:     NewCatalogKeys(),
		input:    ti,
		list:     l,
		spinner:  sp,
		seq:      1,
		fetching: true,
	}
}

// Init starts the cursor blink and the initial now-playing fetch.
func (m CatalogModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetchCmd(m.seq, m.query))
}

// Query returns the current search text.
func (m CatalogModel) Query() string { return m.query }

// Records returns the displayed results in response order.
func (m CatalogModel) Records() []tmdb.Record { return m.records }

// Fetching reports whether the latest request is still outstanding.
func (m CatalogModel) Fetching() bool { return m.fetching }

// Update handles messages
func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case recordsMsg:
		return m.settle(msg)

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.fetchCmd(msg.seq, m.query)

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			item, ok := m.list.SelectedItem().(RecordItem)
			if !ok {
				return m, nil
			}
			route := DetailRoute{Record: item.Record}
			return m, func() tea.Msg { return NavigateMsg{Route: route} }

		case key.Matches(msg, m.keys.Navigation()...):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		if q := m.input.Value(); q != m.query {
			fetch := m.queryChanged(q)
			return m, tea.Batch(inputCmd, fetch)
		}
		return m, inputCmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// queryChanged records the new search text and schedules its request.
func (m *CatalogModel) queryChanged(q string) tea.Cmd {
	m.query = q
	m.seq++

	var cmds []tea.Cmd
	if !m.fetching {
		cmds = append(cmds, m.spinner.Tick)
	}
	m.fetching = true

	if m.svc.Debounce > 0 {
		seq := m.seq
		cmds = append(cmds, tea.Tick(m.svc.Debounce, func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		}))
		return tea.Batch(cmds...)
	}

	cmds = append(cmds, m.fetchCmd(m.seq, q))
	return tea.Batch(cmds...)
}

// settle applies the response to the latest request. Failures are logged and
// leave the displayed results as they were.
func (m CatalogModel) settle(msg recordsMsg) (CatalogModel, tea.Cmd) {
	log := m.svc.Logger.With().Int("seq", msg.seq).Str("query", msg.query).Logger()

	if msg.seq != m.seq {
		log.Debug().Int("latest", m.seq).Msg("discarding stale catalog response")
		return m, nil
	}
	m.fetching = false

	if msg.err != nil {
		log.Error().Err(msg.err).Msg("catalog fetch failed")
		return m, nil
	}

	m.records = msg.records
	items := make([]list.Item, len(m.records))
	for i, r := range m.records {
		items[i] = RecordItem{Record: r, PosterURL: m.svc.posterURL(r.PosterPath)}
	}
	cmd := m.list.SetItems(items)
	m.list.ResetSelected()

	log.Debug().Int("count", len(m.records)).Msg("catalog results applied")
	return m, cmd
}

// fetchCmd runs one request off the event loop.
func (m CatalogModel) fetchCmd(seq int, query string) tea.Cmd {
	svc := m.svc

	return func() tea.Msg {
		ctx, cancel := svc.requestContext()
		defer cancel()

		var (
			records []tmdb.Record
			err     error
		)
		if query == "" {
			records, err = svc.Catalog.NowPlaying(ctx)
		} else {
			records, err = svc.Catalog.Search(ctx, query)
		}
		return recordsMsg{seq: seq, query: query, records: records, err: err}
	}
}

// resize fits the list between the search box, heading and footer.
func (m *CatalogModel) resize() {
	const chrome = 2 + 4 // outer padding + search, blank, heading, footer
	w := m.width - 4
	h := m.height - chrome
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
}

func (m CatalogModel) heading() string {
	if m.query == "" {
		return "Now Playing"
	}
	return "Search: " + m.query
}

func (m CatalogModel) View() string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}

	heading := StyleHeader.Render(util.Truncate(m.heading(), width-4))
	if m.fetching {
		heading += " " + m.spinner.View()
	}

	footer := RenderFooterBar([]ShortcutEntry{
		{Label: "type to search"},
		{Label: "↑/↓ navigate"},
		{Key: "enter", Label: "enter details"},
		{Label: "esc quit"},
	}, "")

	content := lipgloss.JoinVertical(lipgloss.Left,
		StyleSearch.Width(width).Render(m.input.View()),
		"",
		heading,
		m.list.View(),
		footer,
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
