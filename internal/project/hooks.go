package project

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/neokit-dev/nktool/internal/branding"
)

// HooksFile is the generated server hooks module, relative to the project.
var HooksFile = filepath.Join("src", "hooks.server.ts")

//go:embed templates/hooks.server.ts.tmpl
var hooksTemplate string

var hooksTmpl = template.Must(template.New("hooks.server.ts").Parse(hooksTemplate))

type hookPlugin struct {
	Var     string // e.g., "coreauthPlugin"
	Package string // e.g., "@neokit-dev/core-auth"
}

type hooksData struct {
	Core    string
	Plugins []hookPlugin
}

// PluginVar returns the identifier a plugin's factory is imported as.
func PluginVar(id string) string {
	return strings.ReplaceAll(id, "-", "") + "Plugin"
}

// RenderHooks renders hooks.server.ts importing and loading every plugin in
// ids, in order.
func RenderHooks(ids []string) (string, error) {
	scope := branding.PackageScope()
	data := hooksData{Core: scope + "/core"}
	for _, id := range ids {
		data.Plugins = append(data.Plugins, hookPlugin{
			Var:     PluginVar(id),
			Package: scope + "/" + id,
		})
	}

	var buf bytes.Buffer
	if err := hooksTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", HooksFile, err)
	}
	return buf.String(), nil
}

// WriteHooks renders the hooks module and writes it to dir/src, replacing
// any existing file. It returns the written path.
func WriteHooks(dir string, ids []string) (string, error) {
	content, err := RenderHooks(ids)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, HooksFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating src directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", HooksFile, err)
	}
	return path, nil
}
