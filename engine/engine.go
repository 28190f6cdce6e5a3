// Package engine is a small local actor runtime: one goroutine, one mailbox
// and one stop channel per actor, with Started/Stopping/Stopped system
// messages bracketing the user messages.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Actor is the behavior contract: Receive is called once per delivered
// message, always from the same goroutine.
type Actor interface {
	Receive(*Context)
}

// Engine spawns actor processes and routes messages between them. An Engine
// is usable immediately after New; Shutdown stops every actor and waits.
type Engine struct {
	logger *slog.Logger

	mu    sync.RWMutex
	procs map[string]*process

	wg       sync.WaitGroup
	stopping atomic.Bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the Engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLogHandler sets a custom slog handler for the Engine.
func WithLogHandler(handler slog.Handler) Option {
	return func(e *Engine) {
		e.logger = slog.New(handler)
	}
}

// New creates a new actor engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default().WithGroup("engine"),
		procs:  make(map[string]*process),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SpawnOption configures a single spawn.
type SpawnOption func(*spawnConfig)

type spawnConfig struct {
	name        string
	mailboxSize int
}

// SpawnWithName labels the actor's PID for logs and String output.
func SpawnWithName(name string) SpawnOption {
	return func(c *spawnConfig) {
		c.name = name
	}
}

// SpawnWithMailboxSize overrides the default mailbox capacity.
func SpawnWithMailboxSize(size int) SpawnOption {
	return func(c *spawnConfig) {
		if size > 0 {
			c.mailboxSize = size
		}
	}
}

// Spawn starts a new process around the given actor and delivers Started to
// it. It returns nil when the engine is already shutting down.
func (e *Engine) Spawn(actor Actor, opts ...SpawnOption) *PID {
	if e.stopping.Load() {
		e.logger.Warn("engine is stopping, refusing to spawn")
		return nil
	}

	cfg := spawnConfig{mailboxSize: defaultMailboxSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	pid := newPID(cfg.name)
	proc := newProcess(e, pid, actor, cfg.mailboxSize)

	e.mu.Lock()
	e.procs[pid.ID] = proc
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		proc.run()
	}()

	e.Send(pid, Started{}, nil)
	e.logger.Debug("spawned actor", "pid", pid)
	return pid
}

// Send delivers a message to the actor identified by pid. Messages to
// unknown or already-stopped actors are dropped. During shutdown only system
// messages pass through.
func (e *Engine) Send(pid *PID, message any, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}

	e.mu.RLock()
	proc, ok := e.procs[pid.ID]
	e.mu.RUnlock()

	if !ok {
		e.logger.Debug("actor not found, dropping message", "pid", pid)
		return
	}
	proc.deliver(message, sender)
}

// Stop asks the actor to stop. The Stopping message is sent first so the
// actor can clean up, and the stop channel is closed so a full mailbox cannot
// block termination.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.procs[pid.ID]
	e.mu.RUnlock()

	if ok {
		e.Send(pid, Stopping{}, nil)
		proc.signalStop()
	}
}

// ActorCount returns the number of live actor processes.
func (e *Engine) ActorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.procs)
}

// Shutdown stops all actors and waits for their goroutines to exit, or until
// the context is done.
func (e *Engine) Shutdown(ctx context.Context) error {
	if !e.stopping.CompareAndSwap(false, true) {
		return nil
	}
	e.logger.Debug("engine shutdown initiated")

	e.mu.RLock()
	pids := make([]*PID, 0, len(e.procs))
	for _, proc := range e.procs {
		pids = append(pids, proc.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pids {
		e.Stop(pid)
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Debug("engine shutdown complete")
		return nil
	case <-ctx.Done():
		e.logger.Warn("engine shutdown timed out", "remaining", e.ActorCount())
		return ctx.Err()
	}
}

// remove detaches a finished process from routing.
func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.procs, pid.ID)
	e.mu.Unlock()
}

func isSystemMessage(message any) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	default:
		return false
	}
}
