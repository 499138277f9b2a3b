package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds tunables loaded from an optional TOML file.
type Config struct {
	// Tolerance is the relative tolerance used when reporting scene values.
	Tolerance float64 `toml:"tolerance"`

	// MeshCells is the marching-cubes resolution along the longest axis.
	MeshCells int `toml:"mesh_cells"`

	// MarkerSize is the edge length of the frame marker boxes, in scene units.
	MarkerSize float64 `toml:"marker_size"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Tolerance:  1e-9,
		MeshCells:  120,
		MarkerSize: 0.1,
	}
}

// loadConfig reads the TOML file at path, merging it over the defaults.
// An empty path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.MeshCells <= 0 {
		return cfg, fmt.Errorf("config %s: mesh_cells must be positive, got %d", path, cfg.MeshCells)
	}
	if cfg.MarkerSize <= 0 {
		return cfg, fmt.Errorf("config %s: marker_size must be positive, got %g", path, cfg.MarkerSize)
	}
	return cfg, nil
}
