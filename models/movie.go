package models

// Movie represents one watchlist entry.
//
// Year is stored as text rather than a number so the value round-trips
// exactly as entered; the handlers enforce the four-character form.
type Movie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Year  string `json:"year"`
}
