package readiness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2getpro/installer/pkg/log"
)

// flakyChecker fails a fixed number of times, then succeeds.
type flakyChecker struct {
	failures int
	calls    int
}

func (c *flakyChecker) Name() string { return "flaky" }

func (c *flakyChecker) Check(_ context.Context) error {
	c.calls++
	if c.calls <= c.failures {
		return errors.New("not yet")
	}
	return nil
}

func testLogger() log.Logger {
	return log.NewLogger(log.WithLevel(log.ErrorLevel))
}

func TestWaitSucceedsAfterRetries(t *testing.T) {
	c := &flakyChecker{failures: 2}
	opts := WaitOptions{Attempts: 5, Interval: time.Millisecond}

	err := Wait(context.Background(), c, opts, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, c.calls)
}

func TestWaitExhaustsAttemptCeiling(t *testing.T) {
	c := &flakyChecker{failures: 100}
	opts := WaitOptions{Attempts: 3, Interval: time.Millisecond}

	err := Wait(context.Background(), c, opts, testLogger())
	require.Error(t, err)
	assert.Equal(t, 3, c.calls, "a fixed ceiling, not unbounded")
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &flakyChecker{failures: 100}
	err := Wait(ctx, c, WaitOptions{Attempts: 10, Interval: time.Second}, testLogger())
	require.ErrorIs(t, err, context.Canceled)
}

func TestWaitAllStopsAtFirstFailure(t *testing.T) {
	ready := &flakyChecker{}
	broken := &flakyChecker{failures: 100}
	never := &flakyChecker{}

	opts := WaitOptions{Attempts: 2, Interval: time.Millisecond}
	err := WaitAll(context.Background(), []Checker{ready, broken, never}, opts, testLogger())
	require.Error(t, err)
	assert.Equal(t, 1, ready.calls)
	assert.Equal(t, 2, broken.calls)
	assert.Equal(t, 0, never.calls)
}
