package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"plazausers/pkg/shutdown"
)

func TestWaitRunsHooksOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	done := make(chan bool)
	go func() { done <- shutdown.Wait(ctx, time.Second, hook, hook) }()

	cancel()

	select {
	case ok := <-done:
		assert.True(t, ok)
		assert.Equal(t, int32(2), calls.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return")
	}
}

func TestWaitReportsHookError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := shutdown.Wait(ctx, time.Second, func(context.Context) error {
		return errors.New("close failed")
	})
	assert.False(t, ok)
}

func TestWaitRespectsTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	ok := shutdown.Wait(ctx, 50*time.Millisecond, func(hctx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			return nil
		case <-hctx.Done():
			return hctx.Err()
		}
	})

	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}
