package tui

import (
	"context"
	"sync"
	"time"

	"github.com/blackwell-systems/reelctl/internal/tmdb"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type catalogCall struct {
	kind  string // "now_playing" or "search"
	query string
}

// fakeCatalog records every request and answers from canned data.
type fakeCatalog struct {
	mu         sync.Mutex
	calls      []catalogCall
	nowPlaying []tmdb.Record
	results    map[string][]tmdb.Record
	failSearch error
	failNow    error
}

func (f *fakeCatalog) NowPlaying(ctx context.Context) ([]tmdb.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, catalogCall{kind: "now_playing"})
	if f.failNow != nil {
		return nil, f.failNow
	}
	return f.nowPlaying, nil
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]tmdb.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, catalogCall{kind: "search", query: query})
	if f.failSearch != nil {
		return nil, f.failSearch
	}
	return f.results[query], nil
}

func (f *fakeCatalog) Calls() []catalogCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]catalogCall(nil), f.calls...)
}

type fakePosters struct {
	data []byte
	err  error
	hits int
}

func (f *fakePosters) FetchPoster(ctx context.Context, posterPath string) ([]byte, error) {
	f.hits++
	return f.data, f.err
}

var (
	duneRecord   = tmdb.Record{ID: 693134, Title: "Dune: Part Two", PosterPath: "/dune.jpg", ReleaseDate: "2024-02-27", Overview: "Paul Atreides unites with Chani."}
	wonkaRecord  = tmdb.Record{ID: 787699, Title: "Wonka", PosterPath: "/wonka.jpg", ReleaseDate: "2023-12-06", Overview: "Willy Wonka's early days."}
	batmanRecord = tmdb.Record{ID: 1, Title: "Batman", PosterPath: "/x.jpg", ReleaseDate: "2022-03-01", Overview: "..."}
)

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		nowPlaying: []tmdb.Record{duneRecord, wonkaRecord},
		results: map[string][]tmdb.Record{
			"batman": {batmanRecord},
		},
	}
}

func testServices(cat CatalogSource) Services {
	return Services{
		Catalog:   cat,
		ImageBase: "https://image.tmdb.org",
		Protocol:  ProtocolNone,
		Logger:    zerolog.Nop(),
	}
}

// drain executes cmd and returns the messages it produces, expanding
// batches. Commands that block (cursor blink timers) are abandoned.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, drain(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// findMsg returns the first message of type T.
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
