package cmd

import (
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/server"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the sync server",
	Long:  `start the sync server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		m, cfg := newManager()

		srv := server.New(log, m)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
