package config

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/choznerol/luactor"
)

// Builder translates the actor definition into a configured LuaActorBuilder.
// Globals are registered through the builder's VM initialization routine, so
// they exist before any hook compiles or runs. Hook file reads happen here;
// failures surface from the builder's Build.
func (c *Config) Builder() *luactor.LuaActorBuilder {
	b := luactor.NewLuaActorBuilder()

	applyHookSource(c, c.Hooks.Started, b.OnStarted, b.OnStartedWithLua)
	applyHookSource(c, c.Hooks.Handle, b.OnHandle, b.OnHandleWithLua)
	applyHookSource(c, c.Hooks.Stopped, b.OnStopped, b.OnStoppedWithLua)

	if len(c.Globals) > 0 {
		globals := c.Globals
		b.WithVM(func(state *lua.LState) error {
			for key, value := range globals {
				state.SetGlobal(key, luactor.ToLua(state, value))
			}
			return nil
		})
	}

	return b
}

func applyHookSource(
	c *Config,
	source HookSource,
	fromFile func(string) *luactor.LuaActorBuilder,
	fromCode func(string) *luactor.LuaActorBuilder,
) {
	switch {
	case source.Code != "":
		fromCode(source.Code)
	case source.File != "":
		fromFile(c.resolvePath(source.File))
	}
}
