package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neokit-dev/nktool/internal/config"
	"github.com/neokit-dev/nktool/internal/logging"
	"github.com/neokit-dev/nktool/internal/pkgmgr"
	"github.com/neokit-dev/nktool/internal/prompt"
	"github.com/neokit-dev/nktool/internal/setup"
)

var (
	setupHook           bool
	setupEnv            string
	setupPlugins        []string
	setupDryRun         bool
	setupDir            string
	setupPackageManager string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up NeoKit in the current SvelteKit project",
	Long: `Set up NeoKit in an existing SvelteKit project.

The setup command:
  1. Asks which environment to deploy to (Cloudflare Pages, Cloudflare Workers, Node.js)
  2. Installs the matching SvelteKit adapter and switches svelte.config.js to it
  3. Removes @sveltejs/adapter-auto
  4. Installs the NeoKit core
  5. Lets you pick plugins for that environment and installs them with
     every plugin they require

Use --env and --plugins to skip the prompts, --hook to generate
src/hooks.server.ts, and --dry-run to see what would happen.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupHook, "hook", false, "Generate src/hooks.server.ts for the installed plugins")
	setupCmd.Flags().StringVar(&setupEnv, "env", "", "Deployment environment (cloudflare, cloudflare-workers, node)")
	setupCmd.Flags().StringSliceVar(&setupPlugins, "plugins", nil, "Plugins to install, comma-separated (skips the prompt)")
	setupCmd.Flags().BoolVar(&setupDryRun, "dry-run", false, "Show what would be done without changing anything")
	setupCmd.Flags().StringVar(&setupDir, "dir", ".", "SvelteKit project directory")
	setupCmd.Flags().StringVar(&setupPackageManager, "package-manager", "", "Package manager to use (npm, pnpm, yarn, bun)")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	settings := config.Current()

	dir, err := filepath.Abs(setupDir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	pmName := settings.PackageManager
	if setupPackageManager != "" {
		pmName = setupPackageManager
	}
	pm, err := pkgmgr.New(pmName, dir)
	if err != nil {
		return err
	}

	opts := setup.Options{
		Dir:         dir,
		Env:         setupEnv,
		Hook:        setupHook,
		DryRun:      setupDryRun,
		CoreVersion: settings.CoreVersion,
	}
	if cmd.Flags().Changed("plugins") {
		opts.Plugins = append([]string{}, setupPlugins...)
	}

	logging.Log.Debugf("using %s in %s", pm.Name(), dir)

	runner := &setup.Runner{
		Catalog:  newLoader(settings),
		Prompter: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Packages: pm,
		Out:      cmd.OutOrStdout(),
	}

	_, err = runner.Run(cmd.Context(), opts)
	return err
}
