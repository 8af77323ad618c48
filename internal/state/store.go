package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/roster/internal/roster"
)

// Phase is where the one-shot load currently stands.
type Phase int

const (
	// PhaseLoading means no attempt has finished yet.
	PhaseLoading Phase = iota
	// PhaseReady means a load succeeded. The collection may still be empty.
	PhaseReady
	// PhaseFailed means every attempt so far has failed.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Phase               Phase
	Characters          []roster.Character
	LoadedAt            time.Time
	LastUpdated         time.Time
	LastError           error
	Attempts            int
	ConsecutiveFailures int
}

// Ready reports whether the collection has been loaded.
func (s Snapshot) Ready() bool {
	return s.Phase == PhaseReady
}

// IsOffline returns true when the source has been unreachable for multiple attempts.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates the loader goroutine with the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one load attempt. When err is non-nil the
// previous data is kept but the error is recorded for visibility. Once the
// store is ready the collection is never replaced; later successes only
// clear the error.
func (s *Store) Update(chars []roster.Character, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.Attempts++
	s.snapshot.LastUpdated = now

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		if s.snapshot.Phase != PhaseReady {
			s.snapshot.Phase = PhaseFailed
		}
		return
	}

	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	if s.snapshot.Phase == PhaseReady {
		return
	}
	s.snapshot.Characters = cloneCharacters(chars)
	s.snapshot.Phase = PhaseReady
	s.snapshot.LoadedAt = now
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Characters = cloneCharacters(s.snapshot.Characters)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Phase returns the current phase without copying the collection.
func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Phase
}

func cloneCharacters(items []roster.Character) []roster.Character {
	if items == nil {
		return nil
	}
	dup := make([]roster.Character, len(items))
	copy(dup, items)
	return dup
}
