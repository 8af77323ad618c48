package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
)

const (
	defaultRetryBase = time.Second
	maxBackoff       = 30 * time.Second
)

// LoaderOptions tune StartLoader. Zero values use defaults.
type LoaderOptions struct {
	RetryBase time.Duration
	Logger    zerolog.Logger
}

// StartLoader launches a goroutine that fetches the collection until one
// attempt succeeds or ctx is cancelled. Every attempt is recorded in store.
// The returned channel is closed when the goroutine exits.
func StartLoader(ctx context.Context, store *state.Store, source roster.Source, opts LoaderOptions) <-chan struct{} {
	base := opts.RetryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	done := make(chan struct{})
	go func() {
		defer close(done)

		failures := 0
		for {
			if err := load(ctx, store, source, opts.Logger); err == nil {
				return
			}
			if ctx.Err() != nil {
				return
			}
			wait := calculateBackoff(failures, base)
			failures++

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	return done
}

func load(ctx context.Context, store *state.Store, source roster.Source, logger zerolog.Logger) error {
	started := time.Now()
	chars, err := source.FetchCharacters(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Update(nil, err)
		logger.Warn().Err(err).Msg("load characters failed")
		return err
	}
	store.Update(chars, nil)
	logger.Info().
		Int("count", len(chars)).
		Dur("elapsed", time.Since(started)).
		Msg("characters loaded")
	return nil
}

// calculateBackoff doubles base once per failure and caps the result at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return min(base, maxBackoff)
	}
	wait := base
	for range failures {
		wait *= 2
		if wait >= maxBackoff || wait <= 0 {
			return maxBackoff
		}
	}
	return wait
}
