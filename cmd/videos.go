package cmd

import (
	"context"
	"errors"

	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/youtube"

	"github.com/spf13/cobra"
)

// videosCmd represents the videos command
var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "manage the video feed",
	Long:  `manage the video feed`,
}

// videosImportCmd mirrors the watch-later playlist into the feed
var videosImportCmd = &cobra.Command{
	Use:   "import",
	Short: "import the watch-later playlist",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _ := newManager()
		result, err := m.ImportWatchLater(ctx)
		if err != nil {
			if errors.Is(err, youtube.ErrAuthRequired) {
				log.Fatal("authorization required: run the oauth flow and store a token first")
			}
			log.Fatalf("import failed: %v", err)
		}

		log.Infow("import complete",
			"playlist", result.PlaylistID,
			"strategy", result.Strategy,
			"imported", result.Imported,
			"updated", result.Updated,
		)
	},
}

func init() {
	videosCmd.AddCommand(videosImportCmd)
	rootCmd.AddCommand(videosCmd)
}
