package catalog

import (
	"slices"
	"sort"
)

// Descriptor describes a single plugin in the catalog.
type Descriptor struct {
	Name     string   `json:"name,omitempty"`
	Icon     string   `json:"icon,omitempty"`
	Color    string   `json:"color,omitempty"`
	Requires []string `json:"requires,omitempty"`
	Env      []string `json:"env,omitempty"`
}

// DisplayName returns the descriptor's name, falling back to id.
func (d Descriptor) DisplayName(id string) string {
	if d.Name == "" {
		return id
	}
	return d.Name
}

// SupportsEnv reports whether the plugin applies to env.
// A descriptor without an env list applies everywhere.
func (d Descriptor) SupportsEnv(env string) bool {
	if d.Env == nil {
		return true
	}
	return slices.Contains(d.Env, env)
}

// Catalog maps plugin identifiers to their descriptors. Treat it as read-only.
type Catalog map[string]Descriptor

// Lookup returns the descriptor for id, or a *LookupError if it is absent.
func (c Catalog) Lookup(id string) (Descriptor, error) {
	d, ok := c[id]
	if !ok {
		return Descriptor{}, &LookupError{ID: id}
	}
	return d, nil
}

// DisplayName returns the display name for id, or id itself when unknown.
func (c Catalog) DisplayName(id string) string {
	return c[id].DisplayName(id)
}

// IDs returns all plugin identifiers in lexical order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ForEnv returns the identifiers of plugins applicable to env, in lexical order.
func (c Catalog) ForEnv(env string) []string {
	var ids []string
	for _, id := range c.IDs() {
		if c[id].SupportsEnv(env) {
			ids = append(ids, id)
		}
	}
	return ids
}
