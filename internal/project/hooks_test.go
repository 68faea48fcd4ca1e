package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPluginVar(t *testing.T) {
	tests := map[string]string{
		"auth":      "authPlugin",
		"core-auth": "coreauthPlugin",
		"a-b-c":     "abcPlugin",
	}
	for id, want := range tests {
		if got := PluginVar(id); got != want {
			t.Errorf("PluginVar(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestRenderHooks(t *testing.T) {
	got, err := RenderHooks([]string{"database", "core-auth"})
	if err != nil {
		t.Fatalf("RenderHooks: %v", err)
	}

	want := `import { load, handle } from '@neokit-dev/core';
import { plugin as databasePlugin } from '@neokit-dev/database';
import { plugin as coreauthPlugin } from '@neokit-dev/core-auth';

load(
  databasePlugin({}),
  coreauthPlugin({})
);

export { handle };
`
	if got != want {
		t.Errorf("RenderHooks mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderHooks_NoPlugins(t *testing.T) {
	got, err := RenderHooks(nil)
	if err != nil {
		t.Fatalf("RenderHooks: %v", err)
	}

	want := `import { load, handle } from '@neokit-dev/core';

load(
);

export { handle };
`
	if got != want {
		t.Errorf("RenderHooks mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestWriteHooks_CreatesSrc(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteHooks(dir, []string{"kv"})
	if err != nil {
		t.Fatalf("WriteHooks: %v", err)
	}
	if path != filepath.Join(dir, "src", "hooks.server.ts") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := RenderHooks([]string{"kv"})
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}
