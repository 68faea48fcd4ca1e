//go:build integration

package integration_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir string // a SvelteKit project
	CachePath  string // catalog cache file
	CallLog    string // one line per fake npm invocation
	CatalogURL string
	Fetches    *int32
}

// setupTestEnv creates a mock SvelteKit project, a catalog server and a fake
// npm on PATH so the whole setup flow runs without network or Node.js.
func setupTestEnv(t *testing.T, catalogJSON string) *testEnv {
	t.Helper()

	env := &testEnv{
		ProjectDir: t.TempDir(),
		CachePath:  filepath.Join(t.TempDir(), "neokit-plugin-list.json"),
		CallLog:    filepath.Join(t.TempDir(), "npm-calls.log"),
		Fetches:    new(int32),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(env.Fetches, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogJSON))
	}))
	t.Cleanup(srv.Close)
	env.CatalogURL = srv.URL + "/list.json"

	writeFile(t, filepath.Join(env.ProjectDir, "svelte.config.js"), `import adapter from '@sveltejs/adapter-auto';
import { vitePreprocess } from '@sveltejs/vite-plugin-svelte';

const config = {
	preprocess: vitePreprocess(),
	kit: { adapter: adapter() }
};

export default config;
`)
	writeFile(t, filepath.Join(env.ProjectDir, "package.json"), `{"devDependencies": {"@sveltejs/adapter-auto": "^3.0.0"}}`)

	bin := t.TempDir()
	writeFile(t, filepath.Join(bin, "npm"), "#!/bin/sh\necho \"$*\" >> \""+env.CallLog+"\"\n")
	if err := os.Chmod(filepath.Join(bin, "npm"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	return env
}

// npmCalls returns the argument lists the fake npm received, in order.
func (e *testEnv) npmCalls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.CallLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading npm call log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileContains(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), want) {
		t.Errorf("%s does not contain %q:\n%s", path, want, data)
	}
}
