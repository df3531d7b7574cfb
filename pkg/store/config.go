package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the journal lives.
type Config interface {
	BasePath() string
}

// DefaultPath is used when neither config file, env, nor flag names a journal
// directory.
const DefaultPath = "~/todos"

// LoadConfig resolves the journal directory from, in order of precedence, the
// ROLLOVER_PATH environment variable, a .rollover config file, and the
// default. A "~" prefix is expanded to the user's home directory.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", DefaultPath)
	viper.SetConfigName(".rollover") // .yaml is implicit
	viper.SetEnvPrefix("ROLLOVER")
	viper.AutomaticEnv()

	if override := os.Getenv("ROLLOVER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	return PathConfig(viper.GetString("path"))
}

// PathConfig wraps an explicit journal directory, expanding a leading "~".
func PathConfig(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand journal path: %w", err)
	}
	return &fileConfig{Path: expanded}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
