package tui

import (
	"strings"

	"github.com/blackwell-systems/reelctl/internal/tmdb"
	"github.com/blackwell-systems/reelctl/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// posterMsg carries downloaded poster bytes.
type posterMsg struct {
	path string
	data []byte
	err  error
}

// DetailModel renders one record handed over by the catalog screen.
// It never calls the catalog API.
type DetailModel struct {
	svc    Services
	keys   DetailKeys
	record tmdb.Record

	posterURL string
	poster    string // inline image escape sequence, if any
	overview  viewport.Model

	width, height int
}

// NewDetailModel creates the detail screen for route.
func NewDetailModel(route DetailRoute, svc Services) DetailModel {
	m := DetailModel{
		svc:       svc,
		keys:      NewDetailKeys(),
		record:    route.Record,
		posterURL: svc.posterURL(route.Record.PosterPath),
		overview:  viewport.New(0, 0),
	}
	m.resize()
	return m
}

// Record returns the record being shown.
func (m DetailModel) Record() tmdb.Record { return m.record }

// PosterURL returns the poster link shown on the screen.
func (m DetailModel) PosterURL() string { return m.posterURL }

// Init fetches the poster image when the terminal can draw it.
func (m DetailModel) Init() tea.Cmd {
	if m.svc.Posters == nil || m.svc.Protocol == ProtocolNone || m.record.PosterPath == "" {
		return nil
	}

	svc := m.svc
	path := m.record.PosterPath
	return func() tea.Msg {
		ctx, cancel := svc.requestContext()
		defer cancel()
		data, err := svc.Posters.FetchPoster(ctx, path)
		return posterMsg{path: path, data: data, err: err}
	}
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case posterMsg:
		if msg.path != m.record.PosterPath {
			return m, nil
		}
		if msg.err != nil {
			m.svc.Logger.Warn().Err(msg.err).Str("poster", msg.path).Msg("poster download failed")
			return m, nil
		}
		m.poster = RenderInlineImageBytes(msg.data, m.svc.Protocol)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	m.overview, cmd = m.overview.Update(msg)
	return m, cmd
}

func (m *DetailModel) contentWidth() int {
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	return w
}

// resize reflows the overview into the space left under the header.
func (m *DetailModel) resize() {
	w := m.contentWidth()

	// title, poster link, release date, blank, divider, footer, outer padding
	reserved := 6 + 2
	if m.poster != "" {
		reserved += posterRows + 1
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}

	m.overview.Width = w
	m.overview.Height = h
	m.overview.SetContent(lipgloss.NewStyle().Width(w).Render(m.record.Overview))
}

// posterRows is the height reserved for an inline poster.
const posterRows = 15

func (m DetailModel) View() string {
	w := m.contentWidth()

	var s strings.Builder

	s.WriteString(StyleHeader.Render(util.Truncate(m.record.Title, w)))
	s.WriteString("\n")
	s.WriteString(StyleLink.Render(util.Truncate(m.posterURL, w)))
	s.WriteString("\n")
	if m.record.ReleaseDate != "" {
		s.WriteString(StyleHelp.Render("Released: "))
		s.WriteString(StyleDate.Render(m.record.ReleaseDate))
	}
	s.WriteString("\n\n")

	s.WriteString(m.overview.View())
	s.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(ColorGray).Render(strings.Repeat("─", w))
	s.WriteString(divider)
	s.WriteString("\n")
	s.WriteString(RenderFooterBar([]ShortcutEntry{
		{Label: "↑/↓ scroll"},
		{Key: "esc", Label: "esc back"},
		{Label: "q quit"},
	}, ""))

	body := lipgloss.NewStyle().Padding(1, 2).Render(s.String())
	if m.poster == "" {
		return body
	}
	// Image escapes are written raw; lipgloss cannot measure them.
	return "\n  " + m.poster + "\n" + body
}
