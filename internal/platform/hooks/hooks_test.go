package hooks

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/storage"
)

type recordingCuer struct {
	kinds []core.EventKind
}

func (c *recordingCuer) Cue(kind core.EventKind) {
	c.kinds = append(c.kinds, kind)
}

type recordingSaver struct {
	results []storage.Result
	err     error
}

func (s *recordingSaver) SaveResult(r storage.Result) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.results = append(s.results, r)
	return int64(len(s.results)), nil
}

func TestHandleSavesTerminalEvents(t *testing.T) {
	saver := &recordingSaver{}
	cuer := &recordingCuer{}
	h := Hooks{Results: saver, Sound: cuer}

	h.Handle("tilestack", []core.Event{
		{Kind: core.EventStarted, Layers: 3},
		{Kind: core.EventMatched, Layers: 3, TilesLeft: 106},
		{Kind: core.EventWon, Layers: 3, Elapsed: 125*time.Second + 400*time.Millisecond},
	})

	if len(saver.results) != 1 {
		t.Fatalf("saved %d results, expected 1", len(saver.results))
	}
	r := saver.results[0]
	if r.GameID != "tilestack" || r.Outcome != storage.OutcomeWon || r.Layers != 3 || r.ElapsedSecs != 125 {
		t.Errorf("saved %+v", r)
	}

	if len(cuer.kinds) != 3 {
		t.Errorf("cued %v, expected every event", cuer.kinds)
	}
}

func TestHandleSaveErrorIsNotFatal(t *testing.T) {
	h := Hooks{Results: &recordingSaver{err: errors.New("disk full")}}

	// Must not panic
	h.Handle("tilestack", []core.Event{{Kind: core.EventTimedOut, Layers: 2, TilesLeft: 10}})
}

func TestHandleWithoutSinks(t *testing.T) {
	var h Hooks
	h.Handle("tilestack", []core.Event{{Kind: core.EventWon}, {Kind: core.EventStartFailed, Err: errors.New("boom")}})
}

func TestResultFromEvent(t *testing.T) {
	tests := []struct {
		kind    core.EventKind
		ok      bool
		outcome storage.Outcome
	}{
		{core.EventWon, true, storage.OutcomeWon},
		{core.EventTimedOut, true, storage.OutcomeTimedOut},
		{core.EventMatched, false, ""},
		{core.EventStarted, false, ""},
	}

	for _, tc := range tests {
		r, ok := ResultFromEvent("tilestack_classic", core.Event{Kind: tc.kind, Layers: 3, TilesLeft: 8, Elapsed: 361 * time.Second})
		if ok != tc.ok {
			t.Errorf("ResultFromEvent(%v) ok = %v, expected %v", tc.kind, ok, tc.ok)
			continue
		}
		if ok && (r.Outcome != tc.outcome || r.TilesLeft != 8 || r.ElapsedSecs != 361) {
			t.Errorf("ResultFromEvent(%v) = %+v", tc.kind, r)
		}
	}
}
