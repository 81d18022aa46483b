// Package lifecycle coordinates startup and shutdown across service subsystems.
// Subsystems register startup and shutdown hooks with a shared Coordinator,
// which tracks readiness and drives graceful termination.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether startup has completed.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator tracks subsystem startup and shutdown hooks and owns the
// root context cancelled on shutdown.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	startup  sync.WaitGroup
	shutdown sync.WaitGroup
	ready    atomic.Bool
}

// New creates a Coordinator with an uncancelled root context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the root context, cancelled when Shutdown is invoked.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in a goroutine tracked by WaitForStartup.
func (c *Coordinator) OnStartup(fn func()) {
	c.startup.Add(1)
	go func() {
		defer c.startup.Done()
		fn()
	}()
}

// OnShutdown runs fn in a goroutine tracked by Shutdown. Hooks should block
// on Context().Done() before performing teardown.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Add(1)
	go func() {
		defer c.shutdown.Done()
		fn()
	}()
}

// WaitForStartup blocks until all startup hooks complete, then marks the
// coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.startup.Wait()
	c.ready.Store(true)
}

// Ready reports whether all startup hooks have completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Shutdown cancels the root context and waits for all shutdown hooks to
// finish, returning an error if they do not complete within timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}
