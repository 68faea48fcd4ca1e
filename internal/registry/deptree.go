package registry

import (
	"fmt"
	"io"

	"github.com/neokit-dev/nktool/internal/catalog"
)

// Node is one plugin in a requirement tree.
type Node struct {
	ID        string
	Name      string
	Children  []*Node
	Deduped   bool // true if this plugin was already expanded earlier in the tree
	Installed bool // true if the plugin package is already in the project
}

// BuildTree resolves id and builds its requirement tree. A plugin reached a
// second time is marked Deduped and not expanded again. Installed marks
// plugins for which installed returns true; installed may be nil.
func BuildTree(cat catalog.Catalog, id string, installed func(id string) bool) (*Node, error) {
	b := &treeBuilder{
		cat:       cat,
		installed: installed,
		seen:      make(map[string]bool),
		active:    make(map[string]bool),
	}
	return b.build(id)
}

type treeBuilder struct {
	cat       catalog.Catalog
	installed func(string) bool
	seen      map[string]bool
	active    map[string]bool
	path      []string
}

func (b *treeBuilder) build(id string) (*Node, error) {
	if b.active[id] {
		return nil, &CycleError{Path: append(pathFrom(b.path, id), id)}
	}

	d, err := b.cat.Lookup(id)
	if err != nil {
		return nil, err
	}

	node := &Node{ID: id, Name: d.DisplayName(id)}
	if b.installed != nil {
		node.Installed = b.installed(id)
	}

	if b.seen[id] {
		node.Deduped = true
		return node, nil
	}
	b.seen[id] = true

	b.active[id] = true
	b.path = append(b.path, id)
	for _, req := range d.Requires {
		child, err := b.build(req)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	b.path = b.path[:len(b.path)-1]
	delete(b.active, id)

	return node, nil
}

func pathFrom(path []string, id string) []string {
	for i, p := range path {
		if p == id {
			return append([]string(nil), path[i:]...)
		}
	}
	return nil
}

// FlattenTree returns the plugins in the tree with requirements before the
// plugins that need them, each listed once.
func FlattenTree(root *Node) []string {
	seen := make(map[string]bool)
	var result []string
	flattenRecursive(root, seen, &result)
	return result
}

func flattenRecursive(node *Node, seen map[string]bool, result *[]string) {
	if node == nil || node.Deduped || seen[node.ID] {
		return
	}

	for _, child := range node.Children {
		flattenRecursive(child, seen, result)
	}

	if !seen[node.ID] {
		seen[node.ID] = true
		*result = append(*result, node.ID)
	}
}

// PrintTree prints the requirement tree with box-drawing characters.
func PrintTree(w io.Writer, node *Node, prefix string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	label := node.Name
	if node.Name != node.ID {
		label = fmt.Sprintf("%s (%s)", node.Name, node.ID)
	}
	if node.Deduped {
		label += " (deduped)"
	} else if node.Installed {
		label += " (already installed)"
	}

	// The root has no connector.
	if prefix == "" {
		fmt.Fprintf(w, "  %s\n", label)
	} else {
		fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, label)
	}

	childPrefix := prefix
	if prefix == "" {
		childPrefix = " "
	} else if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}

	for i, child := range node.Children {
		PrintTree(w, child, childPrefix, i == len(node.Children)-1)
	}
}
