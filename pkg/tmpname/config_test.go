package tmpname_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safetmp/pkg/config"
	"github.com/dmitrymomot/safetmp/pkg/report"
	"github.com/dmitrymomot/safetmp/pkg/tmpname"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	cfg, err := tmpname.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, tmpname.DefaultLimits(), cfg.Limits())
	assert.Equal(t, tmpname.NewFSSource(), cfg.Source())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPNAME_MAX_NAME_LEN", "4096")
	t.Setenv("TMPNAME_MAX_NAMES", "2")
	t.Setenv("TMPNAME_ZERO_TAIL", "false")
	t.Setenv("TMPNAME_DIR", dir)
	t.Setenv("TMPNAME_PREFIX", "job")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	cfg, err := tmpname.LoadConfig()
	require.NoError(t, err)

	g, err := tmpname.NewFromConfig(cfg, tmpname.WithReporter(report.Ignore()))
	require.NoError(t, err)
	assert.Equal(t, tmpname.Limits{
		MaxStringSize: 4096,
		MaxNameLen:    4096,
		MaxNames:      2,
		ZeroTail:      false,
	}, g.Limits())

	buf := make([]byte, 256)
	require.NoError(t, g.Generate(buf, len(buf)))
	assert.Regexp(t, `/job[A-Za-z0-9]{6}$`, tmpname.Name(buf))
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	t.Setenv("TMPNAME_MAX_NAMES", "lots")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	_, err := tmpname.LoadConfig()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestConfig_FromYAML(t *testing.T) {
	t.Parallel()

	var cfg tmpname.Config
	require.NoError(t, config.LoadFile("testdata/tmpname.yaml", &cfg))
	assert.Equal(t, tmpname.Config{
		MaxStringSize: 4096,
		MaxNameLen:    4096,
		MaxNames:      2,
		ZeroTail:      false,
		Dir:           "/tmp",
		Prefix:        "job",
		Attempts:      238328,
	}, cfg)
}

func TestNewFromConfig_Invalid(t *testing.T) {
	t.Parallel()

	valid := tmpname.Config{MaxStringSize: 4096, MaxNameLen: 20, MaxNames: 1, Attempts: 1}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*tmpname.Config){
		"max string size": func(c *tmpname.Config) { c.MaxStringSize = 0 },
		"max name len":    func(c *tmpname.Config) { c.MaxNameLen = -1 },
		"max names":       func(c *tmpname.Config) { c.MaxNames = 0 },
		"attempts":        func(c *tmpname.Config) { c.Attempts = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			mutate(&cfg)
			g, err := tmpname.NewFromConfig(cfg)
			assert.ErrorIs(t, err, tmpname.ErrInvalidConfig)
			assert.Nil(t, g)
		})
	}
}
