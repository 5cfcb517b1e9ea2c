package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
	"github.com/jermspeaks/slowtube/pkg/youtube"
)

// ErrWatchLaterNotFound is returned when none of the playlist resolution
// strategies yield a usable watch-later playlist.
var ErrWatchLaterNotFound = errors.New("watch-later playlist not found")

// ImportWatchLater pulls the authenticated channel's watch-later playlist and
// mirrors it into local storage. New videos enter the feed state; videos seen
// before only get their descriptive fields refreshed.
func (m MediaManager) ImportWatchLater(ctx context.Context) (WatchLaterResult, error) {
	log := logger.FromCtx(ctx)
	result := WatchLaterResult{}

	// fail fast on missing credentials before touching the API
	if _, err := m.creds.Token(ctx); err != nil {
		return result, err
	}

	playlistID, strategy, err := m.resolveWatchLater(ctx)
	if err != nil {
		return result, err
	}
	result.PlaylistID = playlistID
	result.Strategy = strategy
	log.Infow("resolved watch-later playlist", "playlist", playlistID, "strategy", strategy)

	pageToken := ""
	for {
		page, err := m.youtube.PlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return result, fmt.Errorf("failed to list playlist items: %w", err)
		}

		videos, err := m.youtube.Videos(ctx, page.VideoIDs)
		if err != nil {
			return result, fmt.Errorf("failed to fetch video metadata: %w", err)
		}

		for _, video := range videos {
			imported, err := m.upsertVideo(ctx, video)
			if err != nil {
				log.Errorw("failed to store video", "video", video.ID, "error", err)
				continue
			}
			if imported {
				result.Imported++
			} else {
				result.Updated++
			}
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	log.Infow("watch-later import finished", "imported", result.Imported, "updated", result.Updated)
	return result, nil
}

// resolveWatchLater tries the known ways of locating the watch-later playlist
// in order: the channel's relatedPlaylists pointer, the reserved "WL" id, and
// finally a bounded scan of the channel's own playlists by title.
func (m MediaManager) resolveWatchLater(ctx context.Context) (string, string, error) {
	log := logger.FromCtx(ctx)

	strategies := []struct {
		name    string
		resolve func(context.Context) (string, error)
	}{
		{name: "relatedPlaylists", resolve: m.watchLaterFromChannel},
		{name: "reservedID", resolve: m.watchLaterFromReservedID},
		{name: "scanPlaylists", resolve: m.watchLaterFromScan},
	}

	for _, strategy := range strategies {
		id, err := strategy.resolve(ctx)
		if err != nil {
			if errors.Is(err, youtube.ErrAuthRequired) {
				return "", "", err
			}
			log.Debugw("watch-later strategy failed", "strategy", strategy.name, "error", err)
			continue
		}
		if id != "" {
			return id, strategy.name, nil
		}
	}

	return "", "", ErrWatchLaterNotFound
}

func (m MediaManager) watchLaterFromChannel(ctx context.Context) (string, error) {
	related, err := m.youtube.ChannelRelatedPlaylists(ctx)
	if err != nil {
		return "", err
	}
	return related.WatchLater, nil
}

// watchLaterFromReservedID probes the reserved playlist id. Newer API versions
// reject it for third-party clients, so any error just falls through to the
// next strategy.
func (m MediaManager) watchLaterFromReservedID(ctx context.Context) (string, error) {
	if _, err := m.youtube.PlaylistItems(ctx, youtube.WatchLaterPlaylistID, ""); err != nil {
		return "", err
	}
	return youtube.WatchLaterPlaylistID, nil
}

func (m MediaManager) watchLaterFromScan(ctx context.Context) (string, error) {
	pageToken := ""
	for page := 0; page < m.pacing.PlaylistScanMax; page++ {
		playlists, err := m.youtube.MyPlaylists(ctx, pageToken)
		if err != nil {
			return "", err
		}

		for _, playlist := range playlists.Playlists {
			if strings.EqualFold(strings.TrimSpace(playlist.Title), "watch later") {
				return playlist.ID, nil
			}
		}

		if playlists.NextPageToken == "" {
			break
		}
		pageToken = playlists.NextPageToken
	}

	return "", nil
}

// upsertVideo stores an unseen video in the feed state or refreshes the
// descriptive fields of an already tracked one. Returns true when the video
// was newly created.
func (m MediaManager) upsertVideo(ctx context.Context, video youtube.Video) (bool, error) {
	existing, err := m.storage.GetVideo(ctx, table.Video.YoutubeID.EQ(sqlite.String(video.ID)))
	if err == nil {
		return false, m.storage.UpdateVideoMetadata(ctx, int64(existing.ID), videoModel(video))
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	record := videoModel(video)
	now := time.Now().UTC()
	record.AddedAt = &now

	if _, err := m.storage.CreateVideo(ctx, record, storage.VideoStateFeed); err != nil {
		// a concurrent import beat us to it; refresh instead
		if errors.Is(err, storage.ErrUniqueConstraint) {
			existing, getErr := m.storage.GetVideo(ctx, table.Video.YoutubeID.EQ(sqlite.String(video.ID)))
			if getErr != nil {
				return false, getErr
			}
			return false, m.storage.UpdateVideoMetadata(ctx, int64(existing.ID), videoModel(video))
		}
		return false, err
	}

	return true, nil
}

// videoModel maps platform video metadata onto the stored shape
func videoModel(video youtube.Video) model.Video {
	record := model.Video{
		YoutubeID: video.ID,
		Title:     video.Title,
	}

	if video.Description != "" {
		record.Description = &video.Description
	}
	if video.Channel != "" {
		record.Channel = &video.Channel
	}
	if url := video.Thumbnails.BestURL(); url != "" {
		record.ThumbnailURL = &url
	}
	if !video.PublishedAt.IsZero() {
		publishedAt := video.PublishedAt.UTC()
		record.PublishedAt = &publishedAt
	}
	if duration, err := youtube.ParseDuration(video.Duration); err == nil && duration > 0 {
		seconds := int32(duration / time.Second)
		record.DurationSeconds = &seconds
	}

	return record
}
