package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/blackwell-systems/reelctl/internal/tmdb"
	"github.com/blackwell-systems/reelctl/internal/util"
	"github.com/fatih/color"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// resultSet is one block of output: the records answering one query.
// An empty Query means now playing.
type resultSet struct {
	Query   string        `json:"query,omitempty"`
	Records []recordEntry `json:"results"`
}

type recordEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterURL   string `json:"poster_url"`
}

func newResultSet(query string, records []tmdb.Record, imageBase string) resultSet {
	rs := resultSet{Query: query, Records: make([]recordEntry, 0, len(records))}
	for _, r := range records {
		rs.Records = append(rs.Records, recordEntry{
			ID:          r.ID,
			Title:       r.Title,
			ReleaseDate: r.ReleaseDate,
			Overview:    r.Overview,
			PosterURL:   tmdb.PosterURL(imageBase, r.PosterPath),
		})
	}
	return rs
}

func validateFormat(format string) error {
	switch format {
	case "", formatTable, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatJSON)
}

// printResults writes sets in order using format.
func printResults(w io.Writer, sets []resultSet, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(sets) == 1 {
			return enc.Encode(sets[0])
		}
		return enc.Encode(sets)
	}

	for i, rs := range sets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printTable(w, rs)
	}
	return nil
}

func printTable(w io.Writer, rs resultSet) {
	title := "Now Playing"
	if rs.Query != "" {
		title = fmt.Sprintf("Search: %s", rs.Query)
	}
	header(w, "── %s  (%d results)", title, len(rs.Records))

	if len(rs.Records) == 0 {
		fmt.Fprintln(w, color.HiBlackString("  no results"))
		return
	}

	for _, r := range rs.Records {
		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			color.WhiteString("%-8d", r.ID),
			util.PadOrTruncate(r.Title, 40),
			color.GreenString("%-10s", util.OrDash(r.ReleaseDate)),
			color.CyanString(r.PosterURL),
		)
	}
}
