package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the menu presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string is DifficultyNone.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case DifficultyNone, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return p, nil
	}
	return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", name)
}

// Label returns the menu label of the preset, e.g. "Easy (2 layers)".
func (d DifficultyConfig) Label(p DifficultyPreset) string {
	var name string
	switch p {
	case DifficultyEasy:
		name = "Easy"
	case DifficultyMedium:
		name = "Medium"
	case DifficultyHard:
		name = "Hard"
	default:
		return ""
	}
	return fmt.Sprintf("%s (%d layers)", name, d.LayersForPreset(p))
}

// LayersForPreset returns the layer count for a preset, or 0 for DifficultyNone.
func (d DifficultyConfig) LayersForPreset(p DifficultyPreset) int {
	switch p {
	case DifficultyEasy:
		return d.Easy
	case DifficultyMedium:
		return d.Medium
	case DifficultyHard:
		return d.Hard
	default:
		return 0
	}
}

// ApplyPreset sets the preset the game starts with, skipping the first menu.
func ApplyPreset(cfg *TileStackConfig, preset DifficultyPreset) {
	cfg.Difficulty.Start = string(preset)
}
