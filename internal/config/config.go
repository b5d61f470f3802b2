package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"facemetry/internal/facerr"
	"facemetry/internal/quality"
	"facemetry/internal/scoring"
)

// Env variable names recognized by Load.
const (
	EnvConfigFile   = "FACEMETRY_CONFIG"
	EnvAddr         = "FACEMETRY_ADDR"
	EnvMeshAddr     = "FACEMETRY_MESH_ADDR"
	EnvMeshTimeout  = "FACEMETRY_MESH_TIMEOUT"
	EnvMaxDimension = "FACEMETRY_MAX_DIMENSION"
)

// Load builds the runtime configuration: documented defaults, then the
// optional JSON override file named by FACEMETRY_CONFIG, then environment
// overrides for the shell settings, validated as a whole.
func Load() (*Config, error) {
	config := &Config{
		// Default values
		Addr:               ":6001",
		MeshAddr:           "unix:///tmp/facemesh.sock",
		MeshTimeoutSeconds: 2,
		MaxDimension:       1280,
		Baselines:          scoring.DefaultBaselines,
		Weights:            scoring.DefaultWeights,
		Thresholds:         quality.DefaultThresholds,
		Messages:           quality.DefaultMessages,
	}

	// Merge the override file onto the defaults. Absent keys keep their
	// default values, so partial files are fine.
	if path := os.Getenv(EnvConfigFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, facerr.Wrap(facerr.CodeInvalidConfig, fmt.Errorf("read config file: %w", err))
		}
		if err := jsoniter.Unmarshal(data, config); err != nil {
			return nil, facerr.Wrap(facerr.CodeInvalidConfig, fmt.Errorf("decode config file %s: %w", path, err))
		}
	}

	// Environment wins over the file for shell settings.
	if val := os.Getenv(EnvAddr); val != "" {
		config.Addr = val
	}
	if val := os.Getenv(EnvMeshAddr); val != "" {
		config.MeshAddr = val
	}
	if val := getIntEnv(EnvMeshTimeout); val > 0 {
		config.MeshTimeoutSeconds = val
	}
	if val := getIntEnv(EnvMaxDimension); val > 0 {
		config.MaxDimension = val
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks tag constraints and the cross-field rules of every
// engine section.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return facerr.New(facerr.CodeInvalidConfig, "listen address is required")
	}
	if err := validator.New().Struct(c); err != nil {
		return facerr.Wrap(facerr.CodeInvalidConfig, fmt.Errorf("config constraints: %w", err))
	}
	if err := c.Baselines.Validate(); err != nil {
		return err
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	return nil
}

// getIntEnv retrieves an integer setting from the environment, 0 when
// unset or malformed.
func getIntEnv(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}
