// Package scss assembles BEM components into a selector tree and renders it
// as nested SCSS rule skeletons.
package scss

import (
	"sort"
	"strings"

	"github.com/maruel/natural"

	"bemc/bem"
)

// Node is a single selector in the tree. Name is the raw matched substring:
// a block name for roots, or an "__element" / "--modifier" substring with its
// marker for children. Children are insertion-ordered and unique by name.
type Node struct {
	Name     string
	Children []*Node
}

// child returns the direct child with the given name, creating it on first
// sight. Uniqueness is by exact name within this node only - the same
// modifier under two different elements remains two distinct nodes.
func (n *Node) child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &Node{Name: name}
	n.Children = append(n.Children, c)
	return c
}

// Forest maps block names to their root nodes. Iteration follows the order
// blocks were first seen.
type Forest struct {
	// Indent is the single-unit indent token repeated per nesting level
	// during serialization. Empty means two spaces.
	Indent string

	order []string
	roots map[string]*Node
}

// NewForest creates an empty selector forest.
func NewForest() *Forest {
	return &Forest{roots: make(map[string]*Node)}
}

// Add folds one parsed class into the forest:
//   - invalid components (no block) are skipped,
//   - an element nests under the block root,
//   - a modifier nests under the element when one is present, directly under
//     the block root otherwise.
//
// Adding the same components twice never creates duplicate nodes.
func (f *Forest) Add(c bem.Components) {
	if !c.Valid() {
		return
	}

	root, ok := f.roots[c.Block]
	if !ok {
		root = &Node{Name: c.Block}
		f.roots[c.Block] = root
		f.order = append(f.order, c.Block)
	}

	if c.Element == "" && c.Modifier == "" {
		return
	}

	parent := root
	if c.Element != "" {
		parent = root.child(c.Element)
	}
	if c.Modifier != "" {
		parent.child(c.Modifier)
	}
}

// Roots returns the root nodes in insertion order.
func (f *Forest) Roots() []*Node {
	roots := make([]*Node, 0, len(f.order))
	for _, name := range f.order {
		roots = append(roots, f.roots[name])
	}
	return roots
}

// Len returns the number of blocks in the forest.
func (f *Forest) Len() int {
	return len(f.order)
}

// SortCanonical reorders the direct children of every block root: modifiers
// before elements, natural order within each group. Deeper levels keep their
// insertion order - only the first level is normalized.
func (f *Forest) SortCanonical() {
	for _, root := range f.roots {
		sort.SliceStable(root.Children, func(i, j int) bool {
			gi, gj := childGroup(root.Children[i].Name), childGroup(root.Children[j].Name)
			if gi != gj {
				return gi < gj
			}
			return natural.Less(root.Children[i].Name, root.Children[j].Name)
		})
	}
}

func childGroup(name string) int {
	if strings.HasPrefix(name, "--") {
		return 0
	}
	return 1
}
