package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/storage"

	"github.com/spf13/cobra"
)

var videoState string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list tracked media",
	Long:  `list tracked media`,
}

// listShowsCmd lists tracked shows
var listShowsCmd = &cobra.Command{
	Use:   "shows",
	Short: "list tracked shows",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _ := newManager()
		shows, err := m.ListShows(ctx)
		if err != nil {
			log.Fatalf("failed to list shows: %v", err)
		}

		for _, show := range shows {
			line := fmt.Sprintf("%d\t%s", show.ID, show.Title)
			if show.SavedAt != nil {
				line += fmt.Sprintf("\tsaved %s", humanize.Time(*show.SavedAt))
			}
			if show.Archived {
				line += "\t(archived)"
			}
			fmt.Println(line)
		}
	},
}

// listMoviesCmd lists tracked movies
var listMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "list tracked movies",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _ := newManager()
		movies, err := m.ListMovies(ctx)
		if err != nil {
			log.Fatalf("failed to list movies: %v", err)
		}

		for _, movie := range movies {
			line := fmt.Sprintf("%d\t%s", movie.ID, movie.Title)
			if movie.SavedAt != nil {
				line += fmt.Sprintf("\tsaved %s", humanize.Time(*movie.SavedAt))
			}
			if movie.Watched {
				line += "\t(watched)"
			}
			fmt.Println(line)
		}
	},
}

// listVideosCmd lists videos in the feed
var listVideosCmd = &cobra.Command{
	Use:   "videos",
	Short: "list tracked videos",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _ := newManager()
		videos, err := m.ListVideos(ctx, storage.VideoState(videoState))
		if err != nil {
			log.Fatalf("failed to list videos: %v", err)
		}

		for _, video := range videos {
			line := fmt.Sprintf("%d\t%s\t[%s]", video.ID, video.Title, video.State)
			if video.DurationSeconds != nil {
				line += fmt.Sprintf("\t%s", (time.Duration(*video.DurationSeconds) * time.Second).String())
			}
			if video.PublishedAt != nil {
				line += fmt.Sprintf("\tpublished %s", humanize.Time(*video.PublishedAt))
			}
			fmt.Println(line)
		}
	},
}

func init() {
	listVideosCmd.Flags().StringVar(&videoState, "state", "", "filter by triage state: feed, inbox, or archive")

	listCmd.AddCommand(listShowsCmd)
	listCmd.AddCommand(listMoviesCmd)
	listCmd.AddCommand(listVideosCmd)
	rootCmd.AddCommand(listCmd)
}
