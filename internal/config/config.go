// Package config provides YAML-based configuration loading, environment
// overrides and difficulty presets for tilestack.
package config

// TileStackConfig contains all tunables of the game.
type TileStackConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Window     WindowConfig     `yaml:"window"`
	Patterns   []PatternConfig  `yaml:"patterns"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid shape.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Layers int `yaml:"layers"` // Layer count of the classic variant
}

// TimingConfig defines the countdown and loop pacing.
type TimingConfig struct {
	TimeLimit     int `yaml:"time_limit"`      // Seconds per round
	ResultDelayMS int `yaml:"result_delay_ms"` // How long "You Win!"/"Time's Up!" stays up
	FPS           int `yaml:"fps"`
}

// TerminalConfig defines the tile footprint in terminal cells.
type TerminalConfig struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
}

// WindowConfig defines the pixel geometry of the window front end.
type WindowConfig struct {
	TileSize int `yaml:"tile_size"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// PatternConfig describes one tile pattern as drawn in the terminal.
type PatternConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// DifficultyConfig maps menu presets to layer counts.
type DifficultyConfig struct {
	Start  string `yaml:"start"` // Preset to start with; empty shows the menu
	Easy   int    `yaml:"easy"`
	Medium int    `yaml:"medium"`
	Hard   int    `yaml:"hard"`
}

// MaxLayers is the deepest stack the layer colors and menu support.
const MaxLayers = 4
