package config

import (
	"fmt"

	"github.com/choznerol/luactor/internal/fancy"
)

// String returns a one-line summary of the actor definition.
func (c *Config) String() string {
	if c == nil {
		return "Config(nil)"
	}
	name := c.Actor.Name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("Config(actor=%s, hooks=[%s %s %s], globals=%d keys)",
		name,
		describeSource("started", c.Hooks.Started),
		describeSource("handle", c.Hooks.Handle),
		describeSource("stopped", c.Hooks.Stopped),
		len(c.Globals))
}

// ToTree returns a tree representation of the actor definition for terminal
// output.
func (c *Config) ToTree() *fancy.ComponentTree {
	name := c.Actor.Name
	if name == "" {
		name = "unnamed actor"
	}
	tree := fancy.NewComponentTree(name)

	hooks := tree.AddBranch("Hooks")
	hooks.Child(describeSource("started", c.Hooks.Started))
	hooks.Child(describeSource("handle", c.Hooks.Handle))
	hooks.Child(describeSource("stopped", c.Hooks.Stopped))

	if len(c.Globals) > 0 {
		globals := tree.AddBranch(fmt.Sprintf("Globals (%d keys)", len(c.Globals)))
		for key := range c.Globals {
			globals.Child(key)
		}
	}

	return tree
}

func describeSource(name string, source HookSource) string {
	switch {
	case source.Code != "":
		return fmt.Sprintf("%s: inline (%d chars)", name, len(source.Code))
	case source.File != "":
		return fmt.Sprintf("%s: file %s", name, source.File)
	default:
		return fmt.Sprintf("%s: default no-op", name)
	}
}
