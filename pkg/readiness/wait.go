package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/2getpro/installer/pkg/log"
)

// WaitOptions bounds the polling loop.
type WaitOptions struct {
	// Attempts is the fixed attempt ceiling; at least 1.
	Attempts int
	// Interval is the fixed delay between attempts.
	Interval time.Duration
}

// DefaultWaitOptions polls for up to 30 attempts, two seconds apart.
func DefaultWaitOptions() WaitOptions {
	return WaitOptions{Attempts: 30, Interval: 2 * time.Second}
}

// Wait polls the checker until it succeeds, the attempt ceiling is hit,
// or the context is canceled.
func Wait(ctx context.Context, c Checker, opts WaitOptions, logger log.Logger) error {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	logger.Debug("polling dependency",
		log.Str("checker", c.Name()),
		log.Int("attempts", opts.Attempts),
		log.Duration("interval", opts.Interval))

	var lastErr error
	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = c.Check(ctx)
		if lastErr == nil {
			logger.Info("dependency ready", log.Str("checker", c.Name()), log.Int("attempt", attempt))
			return nil
		}
		logger.Debug("dependency not ready",
			log.Str("checker", c.Name()),
			log.Int("attempt", attempt),
			log.Err(lastErr))

		if attempt == opts.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Interval):
		}
	}
	return fmt.Errorf("%s not ready after %d attempts: %w", c.Name(), opts.Attempts, lastErr)
}

// WaitAll polls the checkers in order; the first failure aborts.
func WaitAll(ctx context.Context, checkers []Checker, opts WaitOptions, logger log.Logger) error {
	for _, c := range checkers {
		if err := Wait(ctx, c, opts, logger); err != nil {
			return err
		}
	}
	return nil
}
