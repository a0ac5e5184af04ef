package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	GameOver bool // A round has ended (won or timed out)
	Won      bool // The round ended with the board cleared
	Paused   bool // Not accepting play input (menu, too-small window)
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventStarted
	EventStartFailed
	EventMatched
	EventMismatched
	EventWon
	EventTimedOut
)

// String returns a lowercase name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventStartFailed:
		return "start_failed"
	case EventMatched:
		return "matched"
	case EventMismatched:
		return "mismatched"
	case EventWon:
		return "won"
	case EventTimedOut:
		return "timed_out"
	default:
		return "none"
	}
}

// Event carries the details the platform needs to react to a tick
// (sound cues, result history, logging).
type Event struct {
	Kind      EventKind
	Layers    int
	Elapsed   time.Duration
	TilesLeft int
	Err       error // Set for EventStartFailed
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // The game asked the platform to terminate
}
