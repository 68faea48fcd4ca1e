package registry

import (
	"fmt"
	"strings"

	"github.com/neokit-dev/nktool/internal/catalog"
)

// CycleError reports a plugin that transitively requires itself. Path starts
// and ends with the same identifier.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Path, " → "))
}

type frame struct {
	id   string
	reqs []string
	next int
}

// Required returns every plugin that id transitively requires, excluding id
// itself. For each direct requirement p, in declaration order, the result
// holds p's own requirements followed by p. Requirements reached through
// more than one path appear once per path.
//
// A missing identifier yields a *catalog.LookupError and a requirement cycle
// yields a *CycleError; in both cases no partial result is returned.
func Required(cat catalog.Catalog, id string) ([]string, error) {
	root, err := cat.Lookup(id)
	if err != nil {
		return nil, err
	}

	result := []string{}
	stack := []*frame{{id: id, reqs: root.Requires}}
	active := map[string]bool{id: true}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next == len(top.reqs) {
			stack = stack[:len(stack)-1]
			delete(active, top.id)
			if len(stack) > 0 {
				result = append(result, top.id)
			}
			continue
		}

		p := top.reqs[top.next]
		top.next++

		if active[p] {
			return nil, &CycleError{Path: cyclePath(stack, p)}
		}
		d, err := cat.Lookup(p)
		if err != nil {
			return nil, err
		}

		stack = append(stack, &frame{id: p, reqs: d.Requires})
		active[p] = true
	}

	return result, nil
}

// cyclePath returns the active path from the first occurrence of id to the
// top of the stack, closed with id.
func cyclePath(stack []*frame, id string) []string {
	start := 0
	for i, f := range stack {
		if f.id == id {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.id)
	}
	return append(path, id)
}
