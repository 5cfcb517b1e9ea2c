package manager

// MediaKind distinguishes the two canonical media namespaces
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindTV    MediaKind = "tv"
)

// CanonicalRef uniquely identifies one upstream metadata record
type CanonicalRef struct {
	TmdbID int64     `json:"tmdbID"`
	Kind   MediaKind `json:"kind"`
}

// EntryStatus classifies the outcome of one batch entry
type EntryStatus string

const (
	EntryStatusImported EntryStatus = "imported"
	EntryStatusExists   EntryStatus = "exists"
	EntryStatusSkipped  EntryStatus = "skipped"
	EntryStatusFailed   EntryStatus = "failed"
)

// EntryResult records what happened to a single import entry
type EntryResult struct {
	Ref    string      `json:"ref"`
	Status EntryStatus `json:"status"`
	Kind   MediaKind   `json:"kind,omitempty"`
	Reason string      `json:"reason,omitempty"`
}

// ImportSummary is the aggregate outcome of a batch import run
type ImportSummary struct {
	RunID    string        `json:"runID"`
	Total    int           `json:"total"`
	Imported int           `json:"imported"`
	TvShows  int           `json:"tvShows"`
	Movies   int           `json:"movies"`
	Skipped  int           `json:"skipped"`
	Errors   int           `json:"errors"`
	Results  []EntryResult `json:"results"`
}

// CSVImportSummary is the aggregate outcome of a title+year based import.
// NotFound lists titles that produced no acceptable search match; they are
// counted under Skipped but reported separately for the user.
type CSVImportSummary struct {
	RunID    string   `json:"runID"`
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   int      `json:"errors"`
	NotFound []string `json:"notFound"`
}

// RefreshResult is the outcome of refreshing one show
type RefreshResult struct {
	ShowID          int64  `json:"showID"`
	Title           string `json:"title"`
	Success         bool   `json:"success"`
	NewEpisodes     int    `json:"newEpisodes"`
	UpdatedEpisodes int    `json:"updatedEpisodes"`
	Error           string `json:"error,omitempty"`
}

// RefreshAllResult aggregates per-show refresh outcomes
type RefreshAllResult struct {
	Total      int             `json:"total"`
	Successful int             `json:"successful"`
	Failed     int             `json:"failed"`
	Results    []RefreshResult `json:"results"`
}

// WatchLaterResult is the outcome of a watch-later playlist import
type WatchLaterResult struct {
	PlaylistID string `json:"playlistID"`
	Strategy   string `json:"strategy"`
	Imported   int    `json:"imported"`
	Updated    int    `json:"updated"`
}

// ReconcileResult counts what an episode reconciliation changed
type ReconcileResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}
