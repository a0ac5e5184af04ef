package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const configFileName = "tilestack.yaml"

// Validation errors. Callers can match them with errors.Is.
var (
	ErrInvalidGrid     = errors.New("config: grid must have positive rows and cols")
	ErrOddGrid         = errors.New("config: rows*cols must be even so every tile has a partner")
	ErrInvalidLayers   = errors.New("config: layer count out of range")
	ErrNoPatterns      = errors.New("config: at least one pattern is required")
	ErrInvalidTiming   = errors.New("config: time_limit and fps must be positive")
	ErrInvalidTileSize = errors.New("config: tile sizes too small")
)

// envOverrides holds TILESTACK_* variables. Zero values mean "not set".
type envOverrides struct {
	Rows          int    `env:"TILESTACK_ROWS"`
	Cols          int    `env:"TILESTACK_COLS"`
	TimeLimit     int    `env:"TILESTACK_TIME_LIMIT"`
	ResultDelayMS int    `env:"TILESTACK_RESULT_DELAY_MS"`
	FPS           int    `env:"TILESTACK_FPS"`
	Difficulty    string `env:"TILESTACK_DIFFICULTY"`
}

// Load loads the tilestack configuration and applies environment overrides.
// Search order: customPath -> ~/.tilestack/configs/tilestack.yaml ->
// ./configs/tilestack.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error.
func Load(customPath string) (TileStackConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (TileStackConfig, error) {
	var cfg TileStackConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		fillMissing(&cfg)
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg TileStackConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			fillMissing(&fileCfg)
			return fileCfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultTileStackYAML, &cfg); err != nil {
		return DefaultTileStackConfig(), nil // Fallback to hardcoded if embed fails
	}
	fillMissing(&cfg)
	return cfg, nil
}

// fillMissing copies defaults into sections a partial YAML file left empty.
func fillMissing(cfg *TileStackConfig) {
	def := DefaultTileStackConfig()

	if cfg.Board.Rows == 0 && cfg.Board.Cols == 0 {
		cfg.Board.Rows, cfg.Board.Cols = def.Board.Rows, def.Board.Cols
	}
	if cfg.Board.Layers == 0 {
		cfg.Board.Layers = def.Board.Layers
	}
	if cfg.Timing.TimeLimit == 0 {
		cfg.Timing.TimeLimit = def.Timing.TimeLimit
	}
	if cfg.Timing.ResultDelayMS == 0 {
		cfg.Timing.ResultDelayMS = def.Timing.ResultDelayMS
	}
	if cfg.Timing.FPS == 0 {
		cfg.Timing.FPS = def.Timing.FPS
	}
	if cfg.Terminal == (TerminalConfig{}) {
		cfg.Terminal = def.Terminal
	}
	if cfg.Window == (WindowConfig{}) {
		cfg.Window = def.Window
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = def.Patterns
	}
	if cfg.Difficulty.Easy == 0 {
		cfg.Difficulty.Easy = def.Difficulty.Easy
	}
	if cfg.Difficulty.Medium == 0 {
		cfg.Difficulty.Medium = def.Difficulty.Medium
	}
	if cfg.Difficulty.Hard == 0 {
		cfg.Difficulty.Hard = def.Difficulty.Hard
	}
}

// ApplyEnv overrides cfg with any TILESTACK_* environment variables.
func ApplyEnv(cfg *TileStackConfig) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	if o.Rows > 0 {
		cfg.Board.Rows = o.Rows
	}
	if o.Cols > 0 {
		cfg.Board.Cols = o.Cols
	}
	if o.TimeLimit > 0 {
		cfg.Timing.TimeLimit = o.TimeLimit
	}
	if o.ResultDelayMS > 0 {
		cfg.Timing.ResultDelayMS = o.ResultDelayMS
	}
	if o.FPS > 0 {
		cfg.Timing.FPS = o.FPS
	}
	if o.Difficulty != "" {
		cfg.Difficulty.Start = o.Difficulty
	}
	return nil
}

// Validate checks the configuration for values the engine cannot play with.
func (c TileStackConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return ErrInvalidGrid
	}
	if (c.Board.Rows*c.Board.Cols)%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrOddGrid, c.Board.Rows, c.Board.Cols)
	}
	for _, n := range []int{c.Board.Layers, c.Difficulty.Easy, c.Difficulty.Medium, c.Difficulty.Hard} {
		if n < 1 || n > MaxLayers {
			return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidLayers, n, MaxLayers)
		}
	}
	if len(c.Patterns) == 0 {
		return ErrNoPatterns
	}
	for i, p := range c.Patterns {
		if utf8.RuneCountInString(p.Glyph) != 1 {
			return fmt.Errorf("config: pattern %d (%s): glyph must be a single character", i, p.Name)
		}
	}
	if c.Timing.TimeLimit <= 0 || c.Timing.FPS <= 0 {
		return ErrInvalidTiming
	}
	if c.Terminal.TileWidth < 3 || c.Terminal.TileHeight < 1 || c.Window.TileSize <= 0 {
		return ErrInvalidTileSize
	}
	if _, err := ParsePreset(c.Difficulty.Start); err != nil {
		return err
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilestack", "configs", filename)
}
