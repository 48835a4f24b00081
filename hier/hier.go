// Package hier builds the declared tag hierarchy: a forest describing, for
// each tag, which tags are legal direct children. Trees are immutable after
// Build and safe to share across concurrent classifier sessions.
package hier

import (
	"fmt"
	"sort"
	"strings"
)

// Node is one position in the hierarchy. Identity is positional: the same
// name declared under two parents yields two distinct nodes sharing only
// the name string.
type Node struct {
	Name     string
	Level    int
	children map[string]*Node
}

// Child returns the child node for name, or nil if name is not a declared
// direct child of n.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// HasChild reports whether name is a declared direct child of n.
func (n *Node) HasChild(name string) bool {
	_, ok := n.children[name]
	return ok
}

// ChildNames returns the declared child names in sorted order.
func (n *Node) ChildNames() []string {
	res := make([]string, 0, len(n.children))
	for name := range n.children {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%s, level=%d, children=%v)", n.Name, n.Level, n.ChildNames())
}

// Tree is a forest of root nodes. The zero value is unusable; use Build.
type Tree struct {
	roots map[string]*Node
}

// Build constructs a Tree from a parent name to child names mapping.
// Roots are the declared parents that never appear as a child value.
// Construction is independent of map iteration order: each root subtree is
// expanded recursively from the mapping, and a name already open on the
// expansion path is not expanded again, so self-referential declarations
// terminate. An empty mapping yields an empty tree.
func Build(hierarchy map[string][]string) *Tree {
	childNames := map[string]bool{}
	for _, children := range hierarchy {
		for _, c := range children {
			childNames[c] = true
		}
	}
	t := &Tree{roots: map[string]*Node{}}
	for parent := range hierarchy {
		if childNames[parent] {
			continue
		}
		onPath := map[string]bool{}
		t.roots[parent] = expand(parent, 0, hierarchy, onPath)
	}
	return t
}

func expand(name string, level int, hierarchy map[string][]string, onPath map[string]bool) *Node {
	n := &Node{Name: name, Level: level, children: map[string]*Node{}}
	onPath[name] = true
	for _, child := range hierarchy[name] {
		if onPath[child] {
			// name recurs on its own path; the inner occurrence is a leaf
			n.children[child] = &Node{Name: child, Level: level + 1, children: map[string]*Node{}}
			continue
		}
		n.children[child] = expand(child, level+1, hierarchy, onPath)
	}
	delete(onPath, name)
	return n
}

// Root returns the root node for name, or nil.
func (t *Tree) Root(name string) *Node {
	return t.roots[name]
}

// RootNames returns the root names in sorted order.
func (t *Tree) RootNames() []string {
	res := make([]string, 0, len(t.roots))
	for name := range t.roots {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Empty reports whether the tree has no roots; an empty tree recognizes no
// tags at any position.
func (t *Tree) Empty() bool {
	return len(t.roots) == 0
}

// Describe renders the forest for diagnostics: one line per node with its
// level, indented by depth. Presentation only.
func (t *Tree) Describe() string {
	sb := &strings.Builder{}
	sb.WriteString("tag hierarchy:\n")
	for _, name := range t.RootNames() {
		describeNode(sb, t.roots[name], 0)
	}
	return sb.String()
}

func describeNode(sb *strings.Builder, n *Node, indent int) {
	fmt.Fprintf(sb, "%s- %s (level %d)\n", strings.Repeat("  ", indent), n.Name, n.Level)
	for _, child := range n.ChildNames() {
		describeNode(sb, n.children[child], indent+1)
	}
}
