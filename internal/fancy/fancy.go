// Package fancy renders styled terminal trees for the validate command.
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	rootStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hookStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// ComponentTree is a styled tree with a titled root.
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a new tree with the standard styling.
func NewComponentTree(title string) *ComponentTree {
	t := tree.New()
	t.EnumeratorStyle(branchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	t.Root(rootStyle.Render(title))
	return &ComponentTree{tree: t}
}

// AddBranch adds a styled branch and returns it for nesting.
func (c *ComponentTree) AddBranch(text string) *tree.Tree {
	return c.tree.Child(hookStyle.Render(text))
}

// AddChild adds a leaf node under the root.
func (c *ComponentTree) AddChild(child any) *tree.Tree {
	return c.tree.Child(child)
}

// Render returns the printable tree.
func (c *ComponentTree) Render() string {
	return c.tree.String()
}
