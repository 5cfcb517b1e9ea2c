package manager

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/tmdb"
)

// ErrSkippedRef marks a reference that cannot be mapped to a canonical
// record: an unsupported format or an id unknown upstream. It is an expected
// outcome, counted separately from true failures.
var ErrSkippedRef = errors.New("reference skipped")

// RefKind lets a caller assert which id space a raw reference belongs to,
// bypassing format sniffing
type RefKind string

const (
	RefKindUnknown    RefKind = ""
	RefKindCanonical  RefKind = "canonical"
	RefKindThirdParty RefKind = "thirdparty"
)

const canonicalPrefix = "tmdb:"

var thirdPartyIDPattern = regexp.MustCompile(`^tt\d+$`)

// ResolveRef maps a raw external reference to a canonical (id, kind) pair.
// Unsupported formats and ids unknown upstream resolve to ErrSkippedRef; any
// other upstream failure propagates as-is.
func (m MediaManager) ResolveRef(ctx context.Context, raw string, expected RefKind) (CanonicalRef, error) {
	log := logger.FromCtx(ctx)
	ref := strings.TrimSpace(raw)

	switch expected {
	case RefKindCanonical:
		return m.resolveCanonical(ctx, strings.TrimPrefix(ref, canonicalPrefix))
	case RefKindThirdParty:
		return m.resolveThirdParty(ctx, ref)
	}

	switch {
	case strings.HasPrefix(ref, canonicalPrefix):
		return m.resolveCanonical(ctx, strings.TrimPrefix(ref, canonicalPrefix))
	case thirdPartyIDPattern.MatchString(ref):
		return m.resolveThirdParty(ctx, ref)
	case isAllDigits(ref):
		return m.resolveCanonical(ctx, ref)
	default:
		log.Debugw("unsupported reference format", "ref", raw)
		return CanonicalRef{}, fmt.Errorf("unsupported format %q: %w", raw, ErrSkippedRef)
	}
}

// resolveCanonical determines the media kind of an id already in the
// canonical space by probing the tv namespace first, then the movie one
func (m MediaManager) resolveCanonical(ctx context.Context, id string) (CanonicalRef, error) {
	tmdbID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return CanonicalRef{}, fmt.Errorf("malformed canonical id %q: %w", id, ErrSkippedRef)
	}

	_, err = m.tmdb.GetSeriesDetails(ctx, tmdbID)
	if err == nil {
		return CanonicalRef{TmdbID: tmdbID, Kind: MediaKindTV}, nil
	}
	if !tmdb.IsNotFound(err) {
		return CanonicalRef{}, fmt.Errorf("failed to probe tv id %d: %w", tmdbID, err)
	}

	_, err = m.tmdb.GetMovieDetails(ctx, tmdbID)
	if err == nil {
		return CanonicalRef{TmdbID: tmdbID, Kind: MediaKindMovie}, nil
	}
	if !tmdb.IsNotFound(err) {
		return CanonicalRef{}, fmt.Errorf("failed to probe movie id %d: %w", tmdbID, err)
	}

	return CanonicalRef{}, fmt.Errorf("id %d unknown upstream: %w", tmdbID, ErrSkippedRef)
}

// resolveThirdParty cross-references a third-party id through the metadata
// API. Results are memoized for the process lifetime since the mapping is
// stable.
func (m MediaManager) resolveThirdParty(ctx context.Context, id string) (CanonicalRef, error) {
	log := logger.FromCtx(ctx)

	if ref, ok := m.findRefs.Get(id); ok {
		return ref, nil
	}

	results, err := m.tmdb.FindByExternalID(ctx, id)
	if err != nil {
		return CanonicalRef{}, fmt.Errorf("failed to cross-reference %q: %w", id, err)
	}

	// titles existing in both namespaces resolve as movie
	var ref CanonicalRef
	switch {
	case len(results.MovieResults) > 0:
		if len(results.TvResults) > 0 {
			log.Warnw("cross-reference matches both movie and tv, preferring movie", "ref", id, "movie", results.MovieResults[0].ID, "tv", results.TvResults[0].ID)
		}
		ref = CanonicalRef{TmdbID: results.MovieResults[0].ID, Kind: MediaKindMovie}
	case len(results.TvResults) > 0:
		ref = CanonicalRef{TmdbID: results.TvResults[0].ID, Kind: MediaKindTV}
	default:
		log.Debugw("no cross-reference match", "ref", id)
		return CanonicalRef{}, fmt.Errorf("no match for %q: %w", id, ErrSkippedRef)
	}

	m.findRefs.Set(id, ref)
	return ref, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
