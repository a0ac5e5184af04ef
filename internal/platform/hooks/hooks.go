// Package hooks fans round events out to the result history, sound cues
// and the log. Front ends call Handle with every StepResult's events.
package hooks

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/storage"
)

// Cuer plays a sound for an event kind.
type Cuer interface {
	Cue(kind core.EventKind)
}

// ResultSaver persists finished rounds.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Hooks reacts to game events. Every field is optional.
type Hooks struct {
	Results ResultSaver
	Sound   Cuer
	Logger  *log.Logger
}

// Handle processes the events of one tick.
func (h Hooks) Handle(gameID string, events []core.Event) {
	logger := h.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for _, ev := range events {
		if h.Sound != nil {
			h.Sound.Cue(ev.Kind)
		}

		switch ev.Kind {
		case core.EventStartFailed:
			logger.Error("could not start round", "game", gameID, "layers", ev.Layers, "err", ev.Err)
		case core.EventWon, core.EventTimedOut:
			h.save(logger, gameID, ev)
		}
	}
}

func (h Hooks) save(logger *log.Logger, gameID string, ev core.Event) {
	r, ok := ResultFromEvent(gameID, ev)
	if !ok || h.Results == nil {
		return
	}
	if _, err := h.Results.SaveResult(r); err != nil {
		// History is best-effort; the game goes on
		logger.Warn("could not save result", "game", gameID, "err", err)
	}
}

// ResultFromEvent converts a terminal event into a history record.
func ResultFromEvent(gameID string, ev core.Event) (storage.Result, bool) {
	var outcome storage.Outcome
	switch ev.Kind {
	case core.EventWon:
		outcome = storage.OutcomeWon
	case core.EventTimedOut:
		outcome = storage.OutcomeTimedOut
	default:
		return storage.Result{}, false
	}

	return storage.Result{
		GameID:      gameID,
		Layers:      ev.Layers,
		Outcome:     outcome,
		ElapsedSecs: int(ev.Elapsed / time.Second),
		TilesLeft:   ev.TilesLeft,
	}, true
}
