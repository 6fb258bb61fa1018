package generation

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.RoomCount)
	assert.Equal(t, 100.0, cfg.SampleRadius)
	assert.Equal(t, 6.0, cfg.MinRoomSize)
	assert.Equal(t, 20.0, cfg.MaxRoomSize)
	assert.Equal(t, 220.0, cfg.MinimumRoomArea)
	assert.Equal(t, 4.0, cfg.SeparationFactor)
	assert.Equal(t, 30.0, cfg.SuperTriangleMargin)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"no rooms", func(c *Config) { c.RoomCount = 0 }, "roomCount"},
		{"negative radius", func(c *Config) { c.SampleRadius = -1 }, "sampleRadius"},
		{"NaN radius", func(c *Config) { c.SampleRadius = math.NaN() }, "sampleRadius"},
		{"zero min size", func(c *Config) { c.MinRoomSize = 0 }, "minRoomSize"},
		{"infinite max size", func(c *Config) { c.MaxRoomSize = math.Inf(1) }, "maxRoomSize"},
		{"min above max", func(c *Config) { c.MinRoomSize = 30 }, "minRoomSize"},
		{"negative area", func(c *Config) { c.MinimumRoomArea = -5 }, "minimumRoomArea"},
		{"zero factor", func(c *Config) { c.SeparationFactor = 0 }, "separationFactor"},
		{"zero iterations", func(c *Config) { c.MaxSeparationIterations = 0 }, "maxSeparationIterations"},
		{"negative snap", func(c *Config) { c.GridSnap = -1 }, "gridSnap"},
		{"snap above min size", func(c *Config) { c.GridSnap = 8 }, "gridSnap"},
		{"zero margin", func(c *Config) { c.SuperTriangleMargin = 0 }, "superTriangleMargin"},
		{"loop chance above one", func(c *Config) { c.LoopEdgeChance = 1.5 }, "loopEdgeChance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfigValidateAcceptsEdgeValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRoomSize = cfg.MaxRoomSize
	cfg.MinimumRoomArea = 0
	cfg.GridSnap = 0
	cfg.LoopEdgeChance = 1
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dungeon.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"roomCount": 40, "sampleRadius": 60.5}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.RoomCount)
	assert.Equal(t, 60.5, cfg.SampleRadius)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultConfig().MinimumRoomArea, cfg.MinimumRoomArea)
	assert.Equal(t, DefaultConfig().LoopEdgeChance, cfg.LoopEdgeChance)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"roomCount": `), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"minRoomSize": 50}`), 0o644))
	_, err = LoadConfig(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
