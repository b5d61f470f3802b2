package config

import (
	"facemetry/internal/quality"
	"facemetry/internal/scoring"
)

// Config holds all runtime settings: the shell (listen address, mesh
// service, image bounds) and the engine tunables (baselines, weights,
// thresholds, messages).
type Config struct {
	Addr               string `json:"addr"`
	MeshAddr           string `json:"mesh_addr"`
	MeshTimeoutSeconds int    `json:"mesh_timeout_seconds" validate:"gt=0"`
	MaxDimension       int    `json:"max_dimension" validate:"gt=0"`

	Baselines  scoring.Baselines  `json:"baselines"`
	Weights    scoring.Weights    `json:"weights"`
	Thresholds quality.Thresholds `json:"thresholds"`
	Messages   quality.Messages   `json:"messages"`
}
