package luactor

import (
	"fmt"
	"log/slog"

	lua "github.com/yuin/gopher-lua"

	"github.com/choznerol/luactor/engine"
)

// hook slot names, used in diagnostics and compiled chunk names.
const (
	hookStarted = "started"
	hookHandle  = "handle"
	hookStopped = "stopped"
)

// LuaActor runs its three lifecycle hooks on a single Lua state. The state is
// created once at construction and shared by the initialization routine and
// every hook invocation, so globals registered by InitializeVM or by the
// started hook stay visible to handle and stopped. The state is confined to
// the goroutine that drives Receive and is released by Close.
type LuaActor struct {
	state *lua.LState

	started *lua.LFunction
	handle  *lua.LFunction
	stopped *lua.LFunction

	// retained source texts, for String and diagnostics only
	sources [3]string

	logger *slog.Logger
}

var _ engine.Actor = (*LuaActor)(nil)

// NewLuaActor creates a fresh Lua state, runs the optional initialization
// routine against it, and compiles the three hook sources. An empty source is
// substituted with the no-op script. Construction is all-or-nothing: on any
// failure the state is closed and no actor is returned.
func NewLuaActor(started, handle, stopped string, initVM InitializeVM) (*LuaActor, error) {
	state := lua.NewState()

	if initVM != nil {
		if err := initVM(state); err != nil {
			state.Close()
			return nil, fmt.Errorf("%w: %w", ErrVMInit, err)
		}
	}

	actor := &LuaActor{
		state:   state,
		sources: [3]string{started, handle, stopped},
		logger:  slog.Default().With("component", "luactor"),
	}

	var err error
	if actor.started, err = compileHook(state, hookStarted, started); err != nil {
		state.Close()
		return nil, err
	}
	if actor.handle, err = compileHook(state, hookHandle, handle); err != nil {
		state.Close()
		return nil, err
	}
	if actor.stopped, err = compileHook(state, hookStopped, stopped); err != nil {
		state.Close()
		return nil, err
	}

	return actor, nil
}

// SetLogger replaces the actor's logger. Must be called before the actor is
// spawned; the logger is read from the actor goroutine afterwards.
func (a *LuaActor) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// String returns a short description of the actor's hook sources.
func (a *LuaActor) String() string {
	if a == nil {
		return "LuaActor(nil)"
	}
	return fmt.Sprintf("LuaActor(started=%d chars, handle=%d chars, stopped=%d chars)",
		len(a.sources[0]), len(a.sources[1]), len(a.sources[2]))
}

// Receive implements engine.Actor. System messages drive the started and
// stopped hooks; every other message runs the handle hook with the message
// marshalled into the `msg` global. A non-nil handle return value is sent
// back to the sender. Hook runtime errors are logged, never escalated: a
// broken script must not take down the hosting process.
func (a *LuaActor) Receive(ctx *engine.Context) {
	switch ctx.Message().(type) {
	case engine.Started:
		if _, err := a.call(a.started); err != nil {
			a.logger.Error("started hook failed", "error", err)
		}
	case engine.Stopping:
		if _, err := a.call(a.stopped); err != nil {
			a.logger.Error("stopped hook failed", "error", err)
		}
	case engine.Stopped:
		// final system message, nothing left to run
	default:
		a.state.SetGlobal("msg", ToLua(a.state, ctx.Message()))
		ret, err := a.call(a.handle)
		if err != nil {
			a.logger.Error("handle hook failed", "error", err)
			return
		}
		if ret != lua.LNil {
			ctx.Respond(FromLua(ret))
		}
	}
}

// Close releases the Lua state. The engine calls this after the Stopped
// system message has been processed.
func (a *LuaActor) Close() error {
	a.state.Close()
	return nil
}

// call invokes a compiled hook on the shared state and returns its first
// return value (LNil when the hook returns nothing).
func (a *LuaActor) call(fn *lua.LFunction) (lua.LValue, error) {
	a.state.Push(fn)
	if err := a.state.PCall(0, 1, nil); err != nil {
		return lua.LNil, err
	}
	ret := a.state.Get(-1)
	a.state.Pop(1)
	return ret, nil
}

// compileHook compiles a single hook source into a reusable function without
// executing it. Syntax errors surface as ErrScriptSyntax with the gopher-lua
// diagnostic attached.
func compileHook(state *lua.LState, name, source string) (*lua.LFunction, error) {
	if source == "" {
		source = NoopScript
	}
	fn, err := state.LoadString(source)
	if err != nil {
		return nil, NewScriptSyntaxError(name, err)
	}
	return fn, nil
}
