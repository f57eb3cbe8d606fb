package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	MigrationURL  string `mapstructure:"MIGRATION_URL"`
	GinMode       string `mapstructure:"GIN_MODE"`
}

// LoadConfig loads configuration from app.env in path, with process
// environment variables taking effect when the file is absent
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("POSTGRES_CONN", "")
	viper.SetDefault("MIGRATION_URL", "file://migrations")
	viper.SetDefault("GIN_MODE", "")
	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil // no config file is fine, env and defaults apply
	}

	err = viper.Unmarshal(&cfg)
	return
}
