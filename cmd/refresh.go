package cmd

import (
	"context"
	"strconv"

	"github.com/jermspeaks/slowtube/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	refreshAll      bool
	includeArchived bool
)

// refreshCmd re-syncs stored shows against upstream metadata
var refreshCmd = &cobra.Command{
	Use:   "refresh [show id]",
	Short: "refresh stored shows from upstream metadata",
	Long:  `refresh stored shows from upstream metadata`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _ := newManager()

		if refreshAll {
			summary, err := m.RefreshAllShows(ctx, includeArchived)
			if err != nil {
				log.Fatalf("refresh failed: %v", err)
			}
			log.Infow("refresh complete", "total", summary.Total, "successful", summary.Successful, "failed", summary.Failed)
			return
		}

		if len(args) != 1 {
			log.Fatal("provide a show id or --all")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalf("invalid show id %q", args[0])
		}

		result, err := m.RefreshShow(ctx, id)
		if err != nil {
			log.Fatalf("refresh failed: %v", err)
		}
		if !result.Success {
			log.Fatalw("refresh failed", "show", result.ShowID, "error", result.Error)
		}

		log.Infow("refresh complete", "show", result.Title, "newEpisodes", result.NewEpisodes, "updatedEpisodes", result.UpdatedEpisodes)
	},
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshAll, "all", false, "refresh every stored show")
	refreshCmd.Flags().BoolVar(&includeArchived, "include-archived", false, "include archived shows when refreshing all")

	rootCmd.AddCommand(refreshCmd)
}
