package config

import (
	"os"
	"path/filepath"

	"github.com/expresskit/create-express/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyLogLevel  = "log_level"
	KeyNoColor   = "no_color"
	KeyUserAgent = "user_agent"
)

// userAgentEnv is published by npm, pnpm, yarn and bun when they run a
// create-* package.
const userAgentEnv = "npm_config_user_agent"

// Settings is the resolved configuration for one invocation.
type Settings struct {
	LogLevel  string
	NoColor   bool
	UserAgent string
}

// Dir returns the path to the config directory (~/.create-express/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-express/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file (if any) and the environment.
func Load() Settings {
	return LoadFrom(FilePath())
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) Settings {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyNoColor, false)
	_ = v.BindEnv(KeyUserAgent, userAgentEnv)

	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()

	return Settings{
		LogLevel:  v.GetString(KeyLogLevel),
		NoColor:   v.GetBool(KeyNoColor),
		UserAgent: v.GetString(KeyUserAgent),
	}
}
