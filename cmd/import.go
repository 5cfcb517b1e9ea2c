package cmd

import (
	"context"
	"os"

	"github.com/jermspeaks/slowtube/pkg/feed"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/manager"

	"github.com/spf13/cobra"
)

var expectedKind string

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "import media from an export file",
	Long:  `import media from an export file`,
}

// importSavedCmd imports a saved-media JSON export
var importSavedCmd = &cobra.Command{
	Use:        "saved",
	Short:      "import a saved-media export",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to export file"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("failed to open export file: %v", err)
		}
		defer f.Close()

		entries, err := feed.ParseSaved(f)
		if err != nil {
			log.Fatalf("failed to parse export file: %v", err)
		}

		m, _ := newManager()
		summary, err := m.ImportBatch(ctx, entries, manager.RefKind(expectedKind))
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}

		log.Infow("import complete",
			"total", summary.Total,
			"imported", summary.Imported,
			"shows", summary.TvShows,
			"movies", summary.Movies,
			"skipped", summary.Skipped,
			"errors", summary.Errors,
		)
	},
}

// importLetterboxdCmd imports a Letterboxd watchlist csv
var importLetterboxdCmd = &cobra.Command{
	Use:        "letterboxd",
	Short:      "import a Letterboxd watchlist export",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to csv file"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("failed to open csv file: %v", err)
		}
		defer f.Close()

		entries, err := feed.ParseLetterboxd(f)
		if err != nil {
			log.Fatalf("failed to parse csv file: %v", err)
		}

		m, _ := newManager()
		summary, err := m.ImportFromCSV(ctx, entries)
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}

		for _, title := range summary.NotFound {
			log.Warnw("no match found", "title", title)
		}

		log.Infow("import complete",
			"total", summary.Total,
			"imported", summary.Imported,
			"skipped", summary.Skipped,
			"errors", summary.Errors,
		)
	},
}

func init() {
	importSavedCmd.Flags().StringVar(&expectedKind, "kind", "", "id kind of every entry: canonical or thirdparty")

	importCmd.AddCommand(importSavedCmd)
	importCmd.AddCommand(importLetterboxdCmd)
	rootCmd.AddCommand(importCmd)
}
