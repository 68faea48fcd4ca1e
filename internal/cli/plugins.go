package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neokit-dev/nktool/internal/catalog"
	"github.com/neokit-dev/nktool/internal/config"
	"github.com/neokit-dev/nktool/internal/pkgmgr"
	"github.com/neokit-dev/nktool/internal/project"
	"github.com/neokit-dev/nktool/internal/registry"
)

var (
	pluginsDepsDir    string
	pluginsDepsFlat   bool
	pluginsSearchEnv  string
	pluginsSearchJSON bool
)

func init() {
	pluginsDepsCmd.Flags().StringVar(&pluginsDepsDir, "dir", "", "Mark plugins already declared in this project's package.json")
	pluginsDepsCmd.Flags().BoolVar(&pluginsDepsFlat, "flat", false, "Print the ordered requirement list instead of a tree")
	pluginsSearchCmd.Flags().StringVar(&pluginsSearchEnv, "env", "", "Only show plugins available for this environment")
	pluginsSearchCmd.Flags().BoolVar(&pluginsSearchJSON, "json", false, "Output in JSON format")

	pluginsCmd.AddCommand(pluginsDepsCmd)
	pluginsCmd.AddCommand(pluginsSearchCmd)
	rootCmd.AddCommand(pluginsCmd)
}

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Explore NeoKit plugins",
}

var pluginsDepsCmd = &cobra.Command{
	Use:   "deps <plugin>",
	Short: "Show everything a plugin requires",
	Long: `Show the transitive requirements of a plugin.

By default the requirements are printed as a tree; plugins reached more than
once are marked (deduped). With --flat the ordered install list is printed,
exactly as setup would hand it to the package manager.`,
	Args: cobra.ExactArgs(1),
	RunE: runPluginsDeps,
}

func runPluginsDeps(cmd *cobra.Command, args []string) error {
	id := args[0]
	cat, err := newLoader(config.Current()).Load(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pluginsDepsFlat {
		req, err := registry.Required(cat, id)
		if err != nil {
			return err
		}
		for _, p := range append(req, id) {
			fmt.Fprintln(out, pkgmgr.ScopedPlugin(p))
		}
		return nil
	}

	var installed func(string) bool
	if pluginsDepsDir != "" {
		declared, err := project.DeclaredPackages(filepath.Clean(pluginsDepsDir))
		if err != nil {
			return err
		}
		installed = func(p string) bool { return declared[pkgmgr.ScopedPlugin(p)] }
	}

	root, err := registry.BuildTree(cat, id, installed)
	if err != nil {
		return err
	}
	registry.PrintTree(out, root, "", true)

	if flat := registry.FlattenTree(root); len(flat) > 1 {
		fmt.Fprintf(out, "\n  Installs %d plugins.\n", len(flat))
	}
	return nil
}

var pluginsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the plugin catalog",
	Long: `Search plugins by identifier or display name (case-insensitive substring).
Use --env to only show plugins available for a deployment environment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPluginsSearch,
}

// searchEntry represents a matching plugin for display.
type searchEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Package  string   `json:"package"`
	Requires []string `json:"requires,omitempty"`
	Env      []string `json:"env,omitempty"`
}

func runPluginsSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	cat, err := newLoader(config.Current()).Load(cmd.Context())
	if err != nil {
		return err
	}

	var entries []searchEntry
	for _, id := range cat.IDs() {
		d := cat[id]
		if !matchesSearch(id, d, query, pluginsSearchEnv) {
			continue
		}
		entries = append(entries, searchEntry{
			ID:       id,
			Name:     d.DisplayName(id),
			Package:  pkgmgr.ScopedPlugin(id),
			Requires: d.Requires,
			Env:      d.Env,
		})
	}

	if len(entries) == 0 {
		msg := "No plugins found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		if pluginsSearchEnv != "" {
			msg += fmt.Sprintf(" with --env=%s", pluginsSearchEnv)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if pluginsSearchJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPACKAGE\tREQUIRES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Package, listColumn(e.Requires))
	}
	return w.Flush()
}

// matchesSearch returns true if the plugin matches the query and environment.
func matchesSearch(id string, d catalog.Descriptor, query, env string) bool {
	if env != "" && !d.SupportsEnv(env) {
		return false
	}
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(id), q) || strings.Contains(strings.ToLower(d.Name), q)
}
