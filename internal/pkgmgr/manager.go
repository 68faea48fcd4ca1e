package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/neokit-dev/nktool/internal/logging"
)

// Supported package manager identifiers.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
	Bun  = "bun"
)

// Names lists the supported package managers.
var Names = []string{NPM, PNPM, Yarn, Bun}

type commands struct {
	install   []string
	devFlag   string
	uninstall []string
}

var table = map[string]commands{
	NPM:  {install: []string{"i"}, devFlag: "-D", uninstall: []string{"un"}},
	PNPM: {install: []string{"add"}, devFlag: "-D", uninstall: []string{"remove"}},
	Yarn: {install: []string{"add"}, devFlag: "-D", uninstall: []string{"remove"}},
	Bun:  {install: []string{"add"}, devFlag: "-d", uninstall: []string{"remove"}},
}

// Manager runs one package manager binary in a project directory.
type Manager struct {
	name string
	cmds commands
	// Dir is the working directory for every command. Empty means the
	// current directory.
	Dir string
}

// New returns the Manager for name, or an error listing the supported names.
func New(name, dir string) (*Manager, error) {
	cmds, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("unknown package manager %q: supported are %s", name, strings.Join(Names, ", "))
	}
	return &Manager{name: name, cmds: cmds, Dir: dir}, nil
}

// Name returns the package manager binary name.
func (m *Manager) Name() string { return m.name }

// InstallArgs returns the arguments that add pkgs, optionally as dev dependencies.
func (m *Manager) InstallArgs(dev bool, pkgs ...string) []string {
	args := append([]string{}, m.cmds.install...)
	if dev {
		args = append(args, m.cmds.devFlag)
	}
	return append(args, pkgs...)
}

// UninstallArgs returns the arguments that remove pkgs.
func (m *Manager) UninstallArgs(pkgs ...string) []string {
	args := append([]string{}, m.cmds.uninstall...)
	return append(args, pkgs...)
}

// Install adds pkgs to the project.
func (m *Manager) Install(ctx context.Context, dev bool, pkgs ...string) error {
	return m.run(ctx, m.InstallArgs(dev, pkgs...))
}

// Uninstall removes pkgs from the project.
func (m *Manager) Uninstall(ctx context.Context, pkgs ...string) error {
	return m.run(ctx, m.UninstallArgs(pkgs...))
}

// Command renders the full command line, for dry runs and messages.
func (m *Manager) Command(args []string) string {
	return m.name + " " + strings.Join(args, " ")
}

func (m *Manager) run(ctx context.Context, args []string) error {
	bin, err := exec.LookPath(m.name)
	if err != nil {
		return fmt.Errorf("%s is not installed or not on PATH: %w", m.name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = m.Dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	logging.Log.Debugf("running %s in %q", m.Command(args), m.Dir)
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(out.String())
		if msg == "" {
			return fmt.Errorf("running %s: %w", m.Command(args), err)
		}
		return fmt.Errorf("running %s: %w\n%s", m.Command(args), err, msg)
	}
	logging.Log.Debugf("%s finished", m.name)
	return nil
}
