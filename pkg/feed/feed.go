// Package feed parses the export formats users bring their saved media in
// from other services.
package feed

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// SavedEntry is one record of a saved-media export. ExternalRef carries the
// source identifier in whatever form the exporting service used.
type SavedEntry struct {
	ExternalRef   string `json:"externalRef"`
	SavedAtMillis int64  `json:"savedAtMillis"`
}

// SavedAt converts the export's millisecond timestamp to a time
func (e SavedEntry) SavedAt() time.Time {
	return time.UnixMilli(e.SavedAtMillis).UTC()
}

// ParseSaved decodes a saved-media export
func ParseSaved(r io.Reader) ([]SavedEntry, error) {
	var entries []SavedEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse saved export: %w", err)
	}
	return entries, nil
}

// LetterboxdEntry is one row of a Letterboxd watchlist export
type LetterboxdEntry struct {
	Date time.Time
	Name string
	Year int
	URI  string
}

// ParseLetterboxd decodes a Letterboxd watchlist CSV export. The expected
// header is Date,Name,Year,Letterboxd URI. Rows with a malformed year are
// kept with a zero year so title matching can still try them.
func ParseLetterboxd(r io.Reader) ([]LetterboxdEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse letterboxd export: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("letterboxd export is empty")
	}

	header := records[0]
	if len(header) < 4 || !strings.EqualFold(strings.TrimSpace(header[1]), "name") {
		return nil, fmt.Errorf("unexpected letterboxd header: %v", header)
	}

	entries := make([]LetterboxdEntry, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}

		entry := LetterboxdEntry{
			Name: strings.TrimSpace(record[1]),
			URI:  strings.TrimSpace(record[3]),
		}
		if entry.Name == "" {
			continue
		}

		if date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0])); err == nil {
			entry.Date = date
		}
		if year, err := strconv.Atoi(strings.TrimSpace(record[2])); err == nil {
			entry.Year = year
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
