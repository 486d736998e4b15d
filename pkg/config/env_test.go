package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safetmp/pkg/config"
)

type envFileConfig struct {
	Dir      string `env:"CFGTEST_DIR"`
	Prefix   string `env:"CFGTEST_PREFIX"`
	MaxNames uint64 `env:"CFGTEST_MAX_NAMES"`
	ZeroTail bool   `env:"CFGTEST_ZERO_TAIL" envDefault:"true"`
	Priority string `env:"CFGTEST_PRIORITY"`
}

var envFileKeys = []string{
	"CFGTEST_DIR",
	"CFGTEST_PREFIX",
	"CFGTEST_MAX_NAMES",
	"CFGTEST_ZERO_TAIL",
	"CFGTEST_PRIORITY",
}

// clearEnvFileKeys unsets the keys and restores them when the test ends,
// since LoadEnv writes to the real process environment.
func clearEnvFileKeys(t *testing.T) {
	t.Helper()
	for _, k := range envFileKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	config.ResetCache()
}

func TestLoadEnv_CustomPath(t *testing.T) {
	clearEnvFileKeys(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "/var/tmp", cfg.Dir)
	assert.Equal(t, "custom", cfg.Prefix)
	assert.Equal(t, uint64(1000), cfg.MaxNames)
	assert.False(t, cfg.ZeroTail)
	assert.Equal(t, "from custom", cfg.Priority)
}

func TestLoadEnv_MultiplePaths(t *testing.T) {
	clearEnvFileKeys(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "/var/tmp", cfg.Dir)
	assert.Equal(t, "override", cfg.Prefix)
	assert.Equal(t, "from_override", cfg.Priority)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	clearEnvFileKeys(t)

	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.custom")
	})
	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/non_existent_file.env")
	})
}
