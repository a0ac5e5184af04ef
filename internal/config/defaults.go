package config

import (
	_ "embed"
)

//go:embed defaults/tilestack.yaml
var defaultTileStackYAML []byte

// DefaultTileStackConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultTileStackConfig() TileStackConfig {
	return TileStackConfig{
		Board: BoardConfig{
			Rows:   6,
			Cols:   6,
			Layers: 3,
		},
		Timing: TimingConfig{
			TimeLimit:     360,
			ResultDelayMS: 3000,
			FPS:           30,
		},
		Terminal: TerminalConfig{
			TileWidth:  6,
			TileHeight: 3,
		},
		Window: WindowConfig{
			TileSize: 100,
			Width:    600,
			Height:   600,
		},
		Patterns: []PatternConfig{
			{Name: "grass", Glyph: "♣", Color: "green"},
			{Name: "carrot", Glyph: "▲", Color: "orange"},
			{Name: "wool", Glyph: "●", Color: "bright_white"},
			{Name: "bell", Glyph: "♪", Color: "bright_yellow"},
			{Name: "bucket", Glyph: "■", Color: "bright_blue"},
			{Name: "flower", Glyph: "✿", Color: "bright_magenta"},
			{Name: "fire", Glyph: "♦", Color: "bright_red"},
		},
		Difficulty: DifficultyConfig{
			Easy:   2,
			Medium: 3,
			Hard:   4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTileStackYAML
}
