package tmdb

import "strings"

// Record is one movie as returned by the catalog API. Fields the API omits
// are left empty; nothing beyond these five is read.
type Record struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// resultsPage is the envelope shared by the list endpoints.
type resultsPage struct {
	Results []Record `json:"results"`
}

// PosterURL joins an image host with a record's poster path.
// An empty posterPath is not guarded: the URL simply ends at the size segment.
func PosterURL(imageBase, posterPath string) string {
	return strings.TrimRight(imageBase, "/") + "/t/p/" + posterSize + posterPath
}
