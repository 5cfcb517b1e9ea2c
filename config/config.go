package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	YouTube YouTube `json:"youtube" yaml:"youtube" mapstructure:"youtube"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Sync    Sync    `json:"sync" yaml:"sync" mapstructure:"sync"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type YouTube struct {
	Scheme       string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host         string `json:"host" yaml:"host" mapstructure:"host"`
	ClientID     string `json:"clientID" yaml:"clientID" mapstructure:"clientID"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret" mapstructure:"clientSecret"`
	TokenFile    string `json:"tokenFile" yaml:"tokenFile" mapstructure:"tokenFile"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Sync houses pacing for the sequential upstream calls
type Sync struct {
	SeasonDelay     time.Duration `json:"seasonDelay" yaml:"seasonDelay" mapstructure:"seasonDelay"`
	ShowDelay       time.Duration `json:"showDelay" yaml:"showDelay" mapstructure:"showDelay"`
	EntryDelay      time.Duration `json:"entryDelay" yaml:"entryDelay" mapstructure:"entryDelay"`
	ProgressEvery   int           `json:"progressEvery" yaml:"progressEvery" mapstructure:"progressEvery"`
	PlaylistScanMax int           `json:"playlistScanMax" yaml:"playlistScanMax" mapstructure:"playlistScanMax"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
