package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a config path.
const EnvConfigPath = "SKYRUN_CONFIG"

// LoadRunner loads the runner configuration.
// Search order: customPath -> $SKYRUN_CONFIG -> ~/.skyrun/configs/skyrun.yaml ->
// ./configs/skyrun.yaml -> embedded default. Fields a file leaves out keep
// their default values.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// An explicit path must exist and parse
	if customPath != "" {
		return loadFile(customPath)
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return loadFile(envPath)
	}

	// Optional locations: ignore anything unreadable
	for _, path := range []string{userConfigPath("skyrun.yaml"), filepath.Join("configs", "skyrun.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults and validates it.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile reads and parses one config file.
func loadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyrun", "configs", filename)
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the loop cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %.0fx%.0f", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.GroundOffset < 0 || c.Canvas.GroundOffset >= c.Canvas.Height:
		return fmt.Errorf("%w: ground_offset %.0f outside canvas", ErrInvalidConfig, c.Canvas.GroundOffset)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Obstacles.BarrierWidth <= 0 || c.Obstacles.BarrierHeight <= 0:
		return fmt.Errorf("%w: barrier size must be positive", ErrInvalidConfig)
	case c.Physics.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial_speed must be positive", ErrInvalidConfig)
	case c.Physics.MaxJumps < 1:
		return fmt.Errorf("%w: max_jumps must be at least 1", ErrInvalidConfig)
	case c.Buffs.TicksPerLevel <= 0:
		return fmt.Errorf("%w: ticks_per_level must be positive", ErrInvalidConfig)
	case len(c.Parallax.Background) == 0 && len(c.Parallax.Foreground) == 0:
		return fmt.Errorf("%w: at least one parallax layer is required", ErrInvalidConfig)
	}
	return nil
}
