package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neokit-dev/nktool/internal/catalog"
	"github.com/neokit-dev/nktool/internal/config"
	"github.com/neokit-dev/nktool/internal/ui"
)

var (
	catalogListEnv  string
	catalogListJSON bool
)

func init() {
	catalogListCmd.Flags().StringVar(&catalogListEnv, "env", "", "Only list plugins available for this environment")
	catalogListCmd.Flags().BoolVar(&catalogListJSON, "json", false, "Output the catalog as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	catalogCmd.AddCommand(catalogRefreshCmd)
	catalogCmd.AddCommand(catalogClearCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the cached plugin catalog",
	Long: `Inspect and manage the local copy of the NeoKit plugin catalog.

The catalog is downloaded once and cached; it is not refreshed automatically.
Run "catalog refresh" to pick up newly published plugins.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plugins in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newLoader(config.Current()).Load(cmd.Context())
		if err != nil {
			return err
		}

		ids := cat.IDs()
		if catalogListEnv != "" {
			ids = cat.ForEnv(catalogListEnv)
		}

		if catalogListJSON {
			subset := make(catalog.Catalog, len(ids))
			for _, id := range ids {
				subset[id] = cat[id]
			}
			data, err := json.MarshalIndent(subset, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling catalog: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No plugins found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tENV\tREQUIRES")
		for _, id := range ids {
			d := cat[id]
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, d.DisplayName(id), envColumn(d), listColumn(d.Requires))
		}
		return w.Flush()
	},
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the catalog source and cache state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := newLoader(config.Current())
		info, err := loader.Cache().Stat()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog URL:  %s\n", loader.URL())
		fmt.Fprintf(out, "Cache file:   %s\n", info.Path)
		if !info.Exists {
			fmt.Fprintln(out, "Cached:       no", ui.Faint.Render("(fetched on next use)"))
			return nil
		}
		fmt.Fprintf(out, "Cached:       yes (%d bytes, updated %s)\n", info.Size, info.ModTime.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Download a fresh copy of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := newLoader(config.Current())
		fmt.Fprint(cmd.OutOrStdout(), ui.Info.Render("Refreshing plugin list..."), " ")
		cat, err := loader.Refresh(cmd.Context())
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Error.Render("failed!"))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("done."))
		fmt.Fprintf(cmd.OutOrStdout(), "%d plugins available.\n", len(cat))
		return nil
	},
}

var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache := newLoader(config.Current()).Cache()
		if err := cache.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", cache.Path)
		return nil
	},
}

func envColumn(d catalog.Descriptor) string {
	if d.Env == nil {
		return "all"
	}
	return listColumn(d.Env)
}

func listColumn(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
