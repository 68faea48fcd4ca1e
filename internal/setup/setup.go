package setup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/neokit-dev/nktool/internal/catalog"
	"github.com/neokit-dev/nktool/internal/logging"
	"github.com/neokit-dev/nktool/internal/pkgmgr"
	"github.com/neokit-dev/nktool/internal/project"
	"github.com/neokit-dev/nktool/internal/prompt"
	"github.com/neokit-dev/nktool/internal/registry"
	"github.com/neokit-dev/nktool/internal/ui"
)

// CatalogSource provides the plugin catalog.
type CatalogSource interface {
	Load(ctx context.Context) (catalog.Catalog, error)
}

// Prompter asks the user to choose among options.
type Prompter interface {
	Select(title string, choices []prompt.Choice) (string, error)
	MultiSelect(title string, choices []prompt.Choice) ([]string, error)
}

// PackageManager adds and removes project packages.
type PackageManager interface {
	Install(ctx context.Context, dev bool, pkgs ...string) error
	Uninstall(ctx context.Context, pkgs ...string) error
}

// Options controls a setup run.
type Options struct {
	// Dir is the SvelteKit project directory.
	Dir string
	// Env skips the environment prompt when set.
	Env string
	// Plugins skips the plugin prompt when non-nil. An empty, non-nil
	// slice installs no plugins.
	Plugins []string
	// Hook generates src/hooks.server.ts for the installed plugins.
	Hook bool
	// DryRun reports every action without running package-manager
	// commands or writing files.
	DryRun bool
	// CoreVersion optionally constrains the NeoKit core version.
	CoreVersion string
}

// Result summarizes a completed run.
type Result struct {
	Env       string
	Adapter   string
	Plan      *registry.InstallPlan
	HooksPath string
}

// Runner executes the setup workflow.
type Runner struct {
	Catalog  CatalogSource
	Prompter Prompter
	Packages PackageManager
	Out      io.Writer
}

// Run performs the setup steps in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := project.Detect(opts.Dir); err != nil {
		return nil, err
	}

	coreSpec, err := pkgmgr.PackageSpec(pkgmgr.ScopedPlugin("core"), opts.CoreVersion)
	if err != nil {
		return nil, err
	}

	var cat catalog.Catalog
	if err := r.step("Loading plugin list", func() error {
		var loadErr error
		cat, loadErr = r.Catalog.Load(ctx)
		return loadErr
	}); err != nil {
		return nil, fmt.Errorf("loading plugin catalog: %w", err)
	}
	fmt.Fprintln(r.Out)

	env, err := r.chooseEnv(opts.Env)
	if err != nil {
		return nil, err
	}
	res := &Result{Env: env, Adapter: project.AdapterFor(env)}
	logging.Log.Debugf("setting up for %s with %s", env, res.Adapter)

	fmt.Fprintln(r.Out)
	if err := r.step(fmt.Sprintf("Installing adapter (%s)", ui.Warning.Render(res.Adapter)), func() error {
		return r.install(ctx, opts.DryRun, res.Adapter)
	}); err != nil {
		return nil, fmt.Errorf("installing adapter %s: %w", res.Adapter, err)
	}

	if err := r.step("Updating "+project.ConfigFile, func() error {
		if opts.DryRun {
			return nil
		}
		changed, err := project.RewriteAdapter(opts.Dir, res.Adapter)
		if err == nil && !changed {
			logging.Log.Warnf("%s does not import %s; left unchanged", project.ConfigFile, project.AutoAdapter)
		}
		return err
	}); err != nil {
		return nil, fmt.Errorf("updating %s: %w", project.ConfigFile, err)
	}

	if err := r.step(fmt.Sprintf("Removing auto adapter (%s)", ui.Warning.Render(project.AutoAdapter)), func() error {
		if opts.DryRun {
			return nil
		}
		return r.Packages.Uninstall(ctx, project.AutoAdapter)
	}); err != nil {
		return nil, fmt.Errorf("removing %s: %w", project.AutoAdapter, err)
	}
	fmt.Fprintln(r.Out)

	if err := r.step(fmt.Sprintf("Installing NeoKit (%s)", ui.Warning.Render(coreSpec)), func() error {
		return r.install(ctx, opts.DryRun, coreSpec)
	}); err != nil {
		return nil, fmt.Errorf("installing %s: %w", coreSpec, err)
	}
	fmt.Fprintln(r.Out)

	selected, err := r.choosePlugins(cat, env, opts.Plugins)
	if err != nil {
		return nil, err
	}

	plan, err := registry.Plan(cat, selected)
	if err != nil {
		return nil, err
	}
	res.Plan = plan

	fmt.Fprintln(r.Out)
	if opts.DryRun {
		fmt.Fprintln(r.Out, ui.Info.Render("Plugins to install:"))
		registry.PrintPlan(r.Out, cat, plan)
	} else if err := r.installPlan(ctx, cat, plan); err != nil {
		return nil, err
	}

	if opts.Hook {
		fmt.Fprintln(r.Out)
		if err := r.step("Adding NeoKit hook", func() error {
			if opts.DryRun {
				res.HooksPath = project.HooksFile
				return nil
			}
			path, err := project.WriteHooks(opts.Dir, plan.Installed)
			res.HooksPath = path
			return err
		}); err != nil {
			return nil, err
		}
		fmt.Fprintln(r.Out)
		fmt.Fprintln(r.Out, ui.Emphasis.Render("Please note that some plugins may require additional setup and need to be configured manually in "+project.HooksFile+"."))
	}

	fmt.Fprintln(r.Out)
	if opts.DryRun {
		fmt.Fprintln(r.Out, ui.Success.Render("Dry run complete, nothing was changed."))
	} else {
		fmt.Fprintln(r.Out, ui.Success.Render("Setup complete!"))
	}
	return res, nil
}

// installPlan runs one package-manager install per batch, announcing the
// requirements each selected plugin pulls in.
func (r *Runner) installPlan(ctx context.Context, cat catalog.Catalog, plan *registry.InstallPlan) error {
	for _, b := range plan.Batches {
		for _, p := range b.Required {
			fmt.Fprintln(r.Out, ui.Warning.Render(fmt.Sprintf("%s is required by %s and will be installed as well.",
				ui.Emphasis.Render(cat.DisplayName(p)), ui.Emphasis.Render(cat.DisplayName(b.Plugin)))))
		}

		names := make([]string, len(b.Install))
		for i, p := range b.Install {
			names[i] = cat.DisplayName(p)
		}
		if err := r.step("Installing "+ui.Emphasis.Render(strings.Join(names, ", ")), func() error {
			return r.Packages.Install(ctx, true, pkgmgr.ScopedPlugins(b.Install)...)
		}); err != nil {
			return fmt.Errorf("installing %s: %w", b.Plugin, err)
		}
	}
	return nil
}

// step prints "<label>... " then "done." or "failed!" depending on fn.
func (r *Runner) step(label string, fn func() error) error {
	fmt.Fprint(r.Out, ui.Info.Render(label+"..."), " ")
	if err := fn(); err != nil {
		fmt.Fprintln(r.Out, ui.Error.Render("failed!"))
		return err
	}
	fmt.Fprintln(r.Out, ui.Success.Render("done."))
	return nil
}

func (r *Runner) install(ctx context.Context, dryRun bool, pkgs ...string) error {
	if dryRun {
		logging.Log.Debugf("dry run: skipping install of %s", strings.Join(pkgs, " "))
		return nil
	}
	return r.Packages.Install(ctx, true, pkgs...)
}

func (r *Runner) chooseEnv(env string) (string, error) {
	if env != "" {
		if err := ValidateEnv(env); err != nil {
			return "", err
		}
		return env, nil
	}
	return r.Prompter.Select("Which environment do you want to deploy to?", environmentChoices())
}

func (r *Runner) choosePlugins(cat catalog.Catalog, env string, requested []string) ([]string, error) {
	available := cat.ForEnv(env)

	if requested != nil {
		allowed := make(map[string]bool, len(available))
		for _, id := range available {
			allowed[id] = true
		}
		for _, id := range requested {
			if _, err := cat.Lookup(id); err != nil {
				return nil, err
			}
			if !allowed[id] {
				return nil, fmt.Errorf("plugin %q is not available for %s", id, env)
			}
		}
		return requested, nil
	}

	choices := make([]prompt.Choice, len(available))
	for i, id := range available {
		d := cat[id]
		choices[i] = prompt.Choice{Label: ui.PluginLabel(d.Icon, d.Color, d.DisplayName(id)), Value: id}
	}
	return r.Prompter.MultiSelect("Select plugins to install", choices)
}
