package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/choznerol/luactor/internal/finitestate"
)

var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

const defaultShutdownTimeout = 10 * time.Second

// Runner adapts an Engine to the go-supervisor Runnable contract: Run blocks
// until the context is canceled or Stop is called, then shuts the engine down
// within the configured timeout.
type Runner struct {
	engine *Engine
	logger *slog.Logger
	fsm    finitestate.Machine

	parentCtx context.Context
	runCtx    context.Context
	runCancel context.CancelFunc

	shutdownTimeout time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogHandler sets a custom slog handler for the Runner.
func WithRunnerLogHandler(handler slog.Handler) RunnerOption {
	return func(r *Runner) {
		r.logger = slog.New(handler)
	}
}

// WithRunnerContext sets a custom parent context for the Runner.
func WithRunnerContext(ctx context.Context) RunnerOption {
	return func(r *Runner) {
		r.parentCtx = ctx
	}
}

// WithShutdownTimeout bounds how long Run waits for actors to stop.
func WithShutdownTimeout(timeout time.Duration) RunnerOption {
	return func(r *Runner) {
		if timeout > 0 {
			r.shutdownTimeout = timeout
		}
	}
}

// NewRunner wraps the given engine in a supervisor-compatible runner.
func NewRunner(engine *Engine, opts ...RunnerOption) (*Runner, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}

	runner := &Runner{
		engine:          engine,
		logger:          slog.Default().WithGroup("engine.Runner"),
		parentCtx:       context.Background(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(runner)
	}

	machine, err := finitestate.New(runner.logger.WithGroup("fsm").Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	runner.fsm = machine

	return runner, nil
}

// String implements the supervisor.Runnable interface.
func (r *Runner) String() string {
	return "engine.Runner"
}

// Engine returns the wrapped engine.
func (r *Runner) Engine() *Engine {
	return r.engine
}

// Run implements the supervisor.Runnable interface.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("failed to transition to booting state: %w", err)
	}

	r.runCtx, r.runCancel = context.WithCancel(ctx)

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("failed to transition to running state: %w", err)
	}
	r.logger.Debug("actor engine running")

	select {
	case <-r.parentCtx.Done():
		r.logger.Debug("parent context canceled")
	case <-r.runCtx.Done():
		r.logger.Debug("run context canceled")
	}

	if r.fsm.GetState() != finitestate.StatusStopping {
		if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
			r.logger.Error("failed to transition to stopping state", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.shutdownTimeout)
	defer cancel()
	if err := r.engine.Shutdown(shutdownCtx); err != nil {
		if stateErr := r.fsm.Transition(finitestate.StatusError); stateErr != nil {
			r.logger.Error("failed to transition to error state", "error", stateErr)
		}
		return fmt.Errorf("engine shutdown: %w", err)
	}

	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("failed to transition to stopped state: %w", err)
	}
	return nil
}

// Stop implements the supervisor.Runnable interface.
func (r *Runner) Stop() {
	r.logger.Debug("stopping runner")
	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		r.logger.Error("failed to transition to stopping state", "error", err)
	}
	if r.runCancel != nil {
		r.runCancel()
	}
}
