package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/neokit-dev/nktool/internal/catalog"
)

// Batch is one package-manager invocation: a selected plugin together with
// everything it requires.
type Batch struct {
	Plugin   string
	Required []string // transitive requirements, see Required
	Install  []string // Required followed by Plugin
}

// InstallPlan is the ordered set of batches for a plugin selection.
type InstallPlan struct {
	Batches []Batch
	// Installed lists every plugin across all batches once, in first-seen order.
	Installed []string
}

// Plan resolves each selected plugin in order. The first lookup or cycle
// error aborts planning.
func Plan(cat catalog.Catalog, selected []string) (*InstallPlan, error) {
	plan := &InstallPlan{Installed: []string{}}
	seen := make(map[string]bool)

	for _, id := range selected {
		req, err := Required(cat, id)
		if err != nil {
			return nil, fmt.Errorf("resolving requirements of %s: %w", id, err)
		}

		install := make([]string, 0, len(req)+1)
		install = append(install, req...)
		install = append(install, id)

		for _, p := range install {
			if !seen[p] {
				seen[p] = true
				plan.Installed = append(plan.Installed, p)
			}
		}

		plan.Batches = append(plan.Batches, Batch{Plugin: id, Required: req, Install: install})
	}

	return plan, nil
}

// PrintPlan prints one line per batch naming the plugins it installs.
func PrintPlan(w io.Writer, cat catalog.Catalog, plan *InstallPlan) {
	if len(plan.Batches) == 0 {
		fmt.Fprintln(w, "  No plugins selected.")
		return
	}
	for _, b := range plan.Batches {
		names := make([]string, len(b.Install))
		for i, p := range b.Install {
			names[i] = cat.DisplayName(p)
		}
		fmt.Fprintf(w, "  %s: %s\n", cat.DisplayName(b.Plugin), strings.Join(names, ", "))
	}
	fmt.Fprintf(w, "  Total: %d plugin", len(plan.Installed))
	if len(plan.Installed) != 1 {
		fmt.Fprint(w, "s")
	}
	fmt.Fprintln(w)
}
