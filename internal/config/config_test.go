package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"facemetry/internal/config"
	"facemetry/internal/facerr"
	"facemetry/internal/quality"
	"facemetry/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every recognized variable so a test starts from the
// documented defaults regardless of the shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvConfigFile, config.EnvAddr, config.EnvMeshAddr,
		config.EnvMeshTimeout, config.EnvMaxDimension,
	} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":6001", cfg.Addr)
	assert.Equal(t, "unix:///tmp/facemesh.sock", cfg.MeshAddr)
	assert.Equal(t, 2, cfg.MeshTimeoutSeconds)
	assert.Equal(t, 1280, cfg.MaxDimension)
	assert.Equal(t, scoring.DefaultBaselines, cfg.Baselines)
	assert.Equal(t, scoring.DefaultWeights, cfg.Weights)
	assert.Equal(t, quality.DefaultThresholds, cfg.Thresholds)
	assert.Equal(t, quality.DefaultMessages.Positive, cfg.Messages.Positive)
}

func TestLoadFileOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `{
		"addr": ":7700",
		"mesh_timeout_seconds": 5,
		"thresholds": {"max_yaw": 25}
	}`)
	t.Setenv(config.EnvConfigFile, path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7700", cfg.Addr)
	assert.Equal(t, 5, cfg.MeshTimeoutSeconds)
	assert.Equal(t, 25.0, cfg.Thresholds.MaxYaw)
	assert.Equal(t, 15.0, cfg.Thresholds.MaxPitch, "keys absent from the file keep their defaults")
	assert.Equal(t, "unix:///tmp/facemesh.sock", cfg.MeshAddr)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `{"addr": ":7700", "mesh_addr": "tcp://old:9000"}`)
	t.Setenv(config.EnvConfigFile, path)
	t.Setenv(config.EnvAddr, ":8800")
	t.Setenv(config.EnvMeshAddr, "tcp://127.0.0.1:9500")
	t.Setenv(config.EnvMeshTimeout, "9")
	t.Setenv(config.EnvMaxDimension, "640")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8800", cfg.Addr)
	assert.Equal(t, "tcp://127.0.0.1:9500", cfg.MeshAddr)
	assert.Equal(t, 9, cfg.MeshTimeoutSeconds)
	assert.Equal(t, 640, cfg.MaxDimension)
}

func TestLoadIgnoresMalformedIntEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMeshTimeout, "not-a-number")
	t.Setenv(config.EnvMaxDimension, "-3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MeshTimeoutSeconds)
	assert.Equal(t, 1280, cfg.MaxDimension)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvConfigFile, filepath.Join(t.TempDir(), "absent.json"))

		cfg, err := config.Load()
		assert.True(t, facerr.HasCode(err, facerr.CodeInvalidConfig))
		assert.Nil(t, cfg)
	})

	t.Run("malformed json", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvConfigFile, writeConfigFile(t, "{not json"))

		cfg, err := config.Load()
		assert.True(t, facerr.HasCode(err, facerr.CodeInvalidConfig))
		assert.Nil(t, cfg)
	})
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty listen address", content: `{"addr": ""}`},
		{name: "non-positive mesh timeout", content: `{"mesh_timeout_seconds": -5}`},
		{name: "inverted brightness band", content: `{"thresholds": {"min_brightness": 250}}`},
		{name: "negative weight", content: `{"weights": {"jaw_angle": -1}}`},
		{name: "inverted baseline range", content: `{"baselines": {"jaw_angle": {"min": 80, "max": 50}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(config.EnvConfigFile, writeConfigFile(t, tt.content))

			cfg, err := config.Load()
			assert.True(t, facerr.HasCode(err, facerr.CodeInvalidConfig))
			assert.Nil(t, cfg)
		})
	}
}
