package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slowtube",
	Short: "slowtube cli",
	Long:  `slowtube cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("SLOWTUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")

	viper.SetDefault("youtube.scheme", "https")
	viper.SetDefault("youtube.host", "www.googleapis.com")
	viper.SetDefault("youtube.clientID", "")
	viper.SetDefault("youtube.clientSecret", "")
	viper.SetDefault("youtube.tokenFile", "slowtube-token.json")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "slowtube.sqlite")

	viper.SetDefault("sync.seasonDelay", 250*time.Millisecond)
	viper.SetDefault("sync.showDelay", 500*time.Millisecond)
	viper.SetDefault("sync.entryDelay", 500*time.Millisecond)
	viper.SetDefault("sync.progressEvery", 10)
	viper.SetDefault("sync.playlistScanMax", 10)
}
