package luactor

import (
	"os"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"
)

// NoopScript is the default body for any hook that is never configured. It
// compiles to a function that does nothing and returns no value.
const NoopScript = "return"

// InitializeVM is given exclusive access to the actor's fresh Lua state
// during construction, before any hook is compiled or executed. It is the
// place to register host functions and globals. A returned error aborts
// construction.
type InitializeVM func(*lua.LState) error

// LuaActorBuilder accumulates the three lifecycle hook sources and an
// optional VM initialization routine, then constructs a LuaActor.
//
// Hook setters are chainable and order-independent: each affects only its own
// slot and the last write to a slot wins. File reads happen at the setter
// call, but a read failure never aborts the process; the first failure is
// recorded and returned from Build. A builder is single-use: once Build
// succeeds, further Build calls fail with ErrBuilderConsumed.
type LuaActorBuilder struct {
	started string
	handle  string
	stopped string

	initVM InitializeVM

	// first file-read failure, surfaced by Build
	err error

	consumed bool
}

// NewLuaActorBuilder returns a builder with all three hook slots set to the
// no-op script and no VM initialization routine.
func NewLuaActorBuilder() *LuaActorBuilder {
	return &LuaActorBuilder{
		started: NoopScript,
		handle:  NoopScript,
		stopped: NoopScript,
	}
}

// OnStarted sources the started hook from the Lua file at path.
func (b *LuaActorBuilder) OnStarted(path string) *LuaActorBuilder {
	b.setFromFile(&b.started, path)
	return b
}

// OnStartedWithLua sets the started hook to the given Lua script.
func (b *LuaActorBuilder) OnStartedWithLua(script string) *LuaActorBuilder {
	b.started = script
	return b
}

// OnHandle sources the handle hook from the Lua file at path.
func (b *LuaActorBuilder) OnHandle(path string) *LuaActorBuilder {
	b.setFromFile(&b.handle, path)
	return b
}

// OnHandleWithLua sets the handle hook to the given Lua script.
func (b *LuaActorBuilder) OnHandleWithLua(script string) *LuaActorBuilder {
	b.handle = script
	return b
}

// OnStopped sources the stopped hook from the Lua file at path.
func (b *LuaActorBuilder) OnStopped(path string) *LuaActorBuilder {
	b.setFromFile(&b.stopped, path)
	return b
}

// OnStoppedWithLua sets the stopped hook to the given Lua script.
func (b *LuaActorBuilder) OnStoppedWithLua(script string) *LuaActorBuilder {
	b.stopped = script
	return b
}

// WithVM sets the VM initialization routine. Only one routine may be active;
// the last call wins.
func (b *LuaActorBuilder) WithVM(fn InitializeVM) *LuaActorBuilder {
	b.initVM = fn
	return b
}

// Build consumes the builder and constructs the actor. It fails when a prior
// file-based setter recorded a read error, when any hook source fails to
// compile, or when the VM initialization routine returns an error. On failure
// no actor is returned and the Lua state is released.
//
// A builder produces at most one actor: once Build succeeds, every later
// call returns ErrBuilderConsumed. A failed Build leaves the builder
// unconsumed so the same error stays observable.
func (b *LuaActorBuilder) Build() (*LuaActor, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if b.err != nil {
		return nil, b.err
	}
	actor, err := NewLuaActor(b.started, b.handle, b.stopped, b.initVM)
	if err != nil {
		return nil, err
	}
	b.consumed = true
	return actor, nil
}

// setFromFile replaces slot with the file contents at path. The slot is left
// untouched on failure so that error reporting stays with Build while the
// chain keeps its last-write-wins shape.
func (b *LuaActorBuilder) setFromFile(slot *string, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if b.err == nil {
			b.err = NewReadScriptError(path, err)
		}
		return
	}
	if !utf8.Valid(data) {
		if b.err == nil {
			b.err = NewReadScriptError(path, ErrScriptEncoding)
		}
		return
	}
	*slot = string(data)
}
