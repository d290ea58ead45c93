// Package shutdown ожидает сигнал завершения и выполняет хуки остановки в пределах timeout.
package shutdown

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"plazausers/pkg/logger"
)

const (
	logSignalReceived = "shutdown signal received"
	logHookFailed     = "shutdown hook failed"
	logHooksTimeout   = "shutdown hooks did not finish in time"
	logHooksDone      = "shutdown completed"
)

// Hook - функция остановки компонента.
type Hook func(context.Context) error

// Wait блокируется до SIGINT, SIGTERM или отмены ctx, после чего
// параллельно выполняет hooks с общим ограничением timeout.
// Возвращает false, если хуки не уложились во время или завершились с ошибкой.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) bool {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	<-sigCtx.Done()
	stop()

	log := logger.Log(ctx)
	log.Info(ctx, logSignalReceived, zap.Duration("timeout", timeout))

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed bool
	)
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(hookCtx, logHookFailed, zap.Error(err))
				mu.Lock()
				failed = true
				mu.Unlock()
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(ctx, logHooksDone)
		mu.Lock()
		defer mu.Unlock()
		return !failed
	case <-hookCtx.Done():
		log.Warn(ctx, logHooksTimeout)
		return false
	}
}
