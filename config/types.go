// Package config loads and validates TOML actor definitions and turns them
// into configured LuaActorBuilders.
package config

// Config is a complete actor definition. Zero-value hook sources fall back
// to the builder's no-op defaults.
type Config struct {
	Actor   ActorConfig    `toml:"actor"`
	Hooks   HooksConfig    `toml:"hooks"`
	Globals map[string]any `toml:"globals"`

	// baseDir anchors relative hook file paths to the config file location.
	baseDir string
}

// ActorConfig names the actor.
type ActorConfig struct {
	Name string `toml:"name"`
}

// HooksConfig holds the three lifecycle hook sources.
type HooksConfig struct {
	Started HookSource `toml:"started"`
	Handle  HookSource `toml:"handle"`
	Stopped HookSource `toml:"stopped"`
}

// HookSource selects where a hook's Lua text comes from. Code and File are
// mutually exclusive; leaving both empty keeps the no-op default.
type HookSource struct {
	// Code contains the inline Lua script.
	Code string `toml:"code"`
	// File is a path to a Lua file, resolved relative to the config file.
	File string `toml:"file"`
}

// IsZero reports whether no source is configured.
func (h HookSource) IsZero() bool {
	return h.Code == "" && h.File == ""
}
