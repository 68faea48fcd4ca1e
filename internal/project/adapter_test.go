package project

import (
	"os"
	"path/filepath"
	"testing"
)

const svelteConfig = `import adapter from '@sveltejs/adapter-auto';
import { vitePreprocess } from '@sveltejs/vite-plugin-svelte';

/** @type {import('@sveltejs/kit').Config} */
const config = {
	preprocess: vitePreprocess(),
	kit: {
		adapter: adapter()
	}
};

export default config;
`

func TestAdapterFor(t *testing.T) {
	if got := AdapterFor("cloudflare-workers"); got != "@sveltejs/adapter-cloudflare-workers" {
		t.Errorf("AdapterFor = %q", got)
	}
}

func TestReplaceAdapterImport(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"single quotes",
			"import adapter from '@sveltejs/adapter-auto';",
			"import adapter from '@sveltejs/adapter-node';",
		},
		{
			"double quotes",
			`import adapter from "@sveltejs/adapter-auto";`,
			`import adapter from "@sveltejs/adapter-node";`,
		},
		{
			"only the first import",
			"import a from '@sveltejs/adapter-auto';\n// was: import a from \"@sveltejs/adapter-auto\";\n// from '@sveltejs/adapter-auto'",
			"import a from '@sveltejs/adapter-node';\n// was: import a from \"@sveltejs/adapter-auto\";\n// from '@sveltejs/adapter-auto'",
		},
		{
			"double quotes first",
			"import a from \"@sveltejs/adapter-auto\";\nimport b from '@sveltejs/adapter-auto';",
			"import a from \"@sveltejs/adapter-node\";\nimport b from '@sveltejs/adapter-auto';",
		},
		{
			"already switched",
			"import adapter from '@sveltejs/adapter-static';",
			"import adapter from '@sveltejs/adapter-static';",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceAdapterImport(tt.src, "@sveltejs/adapter-node"); got != tt.want {
				t.Errorf("ReplaceAdapterImport = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteAdapter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte(svelteConfig), 0644); err != nil {
		t.Fatal(err)
	}

	changed, err := RewriteAdapter(dir, AdapterFor("cloudflare"))
	if err != nil {
		t.Fatalf("RewriteAdapter: %v", err)
	}
	if !changed {
		t.Error("changed = false, want true")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "import adapter from '@sveltejs/adapter-cloudflare';\n"
	if got := string(data[:len(want)]); got != want {
		t.Errorf("first line = %q, want %q", got, want)
	}

	// A second run finds nothing left to change.
	changed, err = RewriteAdapter(dir, AdapterFor("cloudflare"))
	if err != nil {
		t.Fatalf("RewriteAdapter (second): %v", err)
	}
	if changed {
		t.Error("second RewriteAdapter reported a change")
	}
}

func TestRewriteAdapter_MissingConfig(t *testing.T) {
	if _, err := RewriteAdapter(t.TempDir(), AdapterFor("node")); err == nil {
		t.Error("expected error for missing svelte.config.js")
	}
}
