package pkgmgr

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Unknown(t *testing.T) {
	_, err := New("pip", "")
	if err == nil {
		t.Fatal("expected error for unknown package manager")
	}
	if !strings.Contains(err.Error(), "npm, pnpm, yarn, bun") {
		t.Errorf("error %q should list supported managers", err)
	}
}

func TestArgs(t *testing.T) {
	tests := []struct {
		manager   string
		install   string
		uninstall string
	}{
		{NPM, "i -D a b", "un a"},
		{PNPM, "add -D a b", "remove a"},
		{Yarn, "add -D a b", "remove a"},
		{Bun, "add -d a b", "remove a"},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			m, err := New(tt.manager, "")
			require.NoError(t, err)

			assert.Equal(t, tt.manager, m.Name())
			assert.Equal(t, tt.install, strings.Join(m.InstallArgs(true, "a", "b"), " "))
			assert.Equal(t, tt.uninstall, strings.Join(m.UninstallArgs("a"), " "))
		})
	}
}

func TestInstallArgs_NotDev(t *testing.T) {
	m, err := New(NPM, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "left-pad"}, m.InstallArgs(false, "left-pad"))
}

// fakeManager puts an executable named name on PATH that appends its
// arguments to a log file and exits with code.
func fakeManager(t *testing.T, name string, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}

	bin := t.TempDir()
	log := filepath.Join(t.TempDir(), "calls.log")
	script := "#!/bin/sh\necho \"$(pwd) $*\" >> \"" + log + "\"\n"
	if code != 0 {
		script += "echo 'ERR! something broke' >&2\nexit " + strconv.Itoa(code) + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(bin, name), []byte(script), 0755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	return log
}

func TestInstall_RunsInProjectDir(t *testing.T) {
	log := fakeManager(t, "npm", 0)
	dir := t.TempDir()

	m, err := New(NPM, dir)
	require.NoError(t, err)
	require.NoError(t, m.Install(context.Background(), true, "@sveltejs/adapter-node"))
	require.NoError(t, m.Uninstall(context.Background(), "@sveltejs/adapter-auto"))

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(lines[0], "i -D @sveltejs/adapter-node"), lines[0])
	assert.True(t, strings.HasPrefix(lines[0], resolved) || strings.HasPrefix(lines[0], dir), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "un @sveltejs/adapter-auto"), lines[1])
}

func TestInstall_FailureIncludesOutput(t *testing.T) {
	fakeManager(t, "pnpm", 1)

	m, err := New(PNPM, t.TempDir())
	require.NoError(t, err)

	err = m.Install(context.Background(), true, "@neokit-dev/core")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pnpm add -D @neokit-dev/core")
	assert.Contains(t, err.Error(), "ERR! something broke")
}

func TestInstall_PreservesExitCode(t *testing.T) {
	fakeManager(t, "yarn", 42)

	m, err := New(Yarn, t.TempDir())
	require.NoError(t, err)

	err = m.Uninstall(context.Background(), "@sveltejs/adapter-auto")
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "error = %v, want *exec.ExitError", err)
	assert.Equal(t, 42, exitErr.ExitCode())
}

func TestInstall_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	m, err := New(Bun, "")
	require.NoError(t, err)

	err = m.Install(context.Background(), true, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bun is not installed")
}
