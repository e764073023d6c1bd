package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const Version = "v1.0.0"

// Config holds user defaults loaded from ~/.forgeweb.yaml. Every field has a
// built-in fallback, so a missing file is not an error.
type Config struct {
	DefaultPort       int    `mapstructure:"default_port"`
	DefaultDBPassword string `mapstructure:"default_db_password"`
	Workspace         string `mapstructure:"workspace"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	viper.AddConfigPath(home)
	viper.SetConfigName(".forgeweb")
	viper.SetConfigType("yaml")

	viper.SetDefault("default_port", 8000)
	viper.SetDefault("default_db_password", "password")
	viper.SetDefault("workspace", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func Write() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".forgeweb.yaml")
	return viper.WriteConfigAs(configPath)
}

func Set(key string, value interface{}) {
	viper.Set(key, value)
}
