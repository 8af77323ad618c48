package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type flakySource struct {
	mu       sync.Mutex
	failures int
	calls    int
	chars    []roster.Character
}

func (f *flakySource) FetchCharacters(ctx context.Context) ([]roster.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("connection refused")
	}
	return f.chars, nil
}

func (f *flakySource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestStartLoader_RetriesUntilReady(t *testing.T) {
	src := &flakySource{failures: 2, chars: roster.PinnedCharacters()}
	store := &state.Store{}

	done := StartLoader(context.Background(), store, src, LoaderOptions{RetryBase: time.Millisecond, Logger: zerolog.Nop()})
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loader did not finish")
	}

	snap := store.Snapshot()
	if snap.Phase != state.PhaseReady {
		t.Fatalf("Phase = %v, want ready", snap.Phase)
	}
	if len(snap.Characters) != len(src.chars) {
		t.Fatalf("Characters = %d, want %d", len(snap.Characters), len(src.chars))
	}
	if snap.Attempts != 3 || src.Calls() != 3 {
		t.Fatalf("Attempts = %d calls = %d, want 3", snap.Attempts, src.Calls())
	}
}

func TestStartLoader_StopsOnCancel(t *testing.T) {
	src := &flakySource{failures: 1 << 30}
	store := &state.Store{}

	ctx, cancel := context.WithCancel(context.Background())
	done := StartLoader(ctx, store, src, LoaderOptions{RetryBase: time.Hour, Logger: zerolog.Nop()})

	deadline := time.Now().Add(5 * time.Second)
	for store.Phase() != state.PhaseFailed {
		if time.Now().After(deadline) {
			t.Fatal("first attempt never recorded")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loader ignored cancellation")
	}
	if src.Calls() != 1 {
		t.Fatalf("calls = %d, want 1", src.Calls())
	}
}

func TestStartLoader_EmptyCollectionIsReady(t *testing.T) {
	src := &flakySource{chars: []roster.Character{}}
	store := &state.Store{}

	<-StartLoader(context.Background(), store, src, LoaderOptions{Logger: zerolog.Nop()})

	snap := store.Snapshot()
	if snap.Phase != state.PhaseReady || len(snap.Characters) != 0 {
		t.Fatalf("snapshot = %v/%d, want ready and empty", snap.Phase, len(snap.Characters))
	}
}
