package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("npm_config_user_agent", "")
	t.Setenv("CREATE_EXPRESS_LOG_LEVEL", "")

	s := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.NoColor)
	assert.Empty(t, s.UserAgent)
}

func TestLoadFrom_UserAgentFromPackageManager(t *testing.T) {
	t.Setenv("npm_config_user_agent", "pnpm/8.6.0 npm/? node/v20.5.0 linux x64")

	s := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "pnpm/8.6.0 npm/? node/v20.5.0 linux x64", s.UserAgent)
}

func TestLoadFrom_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\nno_color: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := LoadFrom(path)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.NoColor)

	t.Setenv("CREATE_EXPRESS_LOG_LEVEL", "warn")
	s = LoadFrom(path)
	assert.Equal(t, "warn", s.LogLevel)
}
