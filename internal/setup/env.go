package setup

import (
	"fmt"
	"strings"

	"github.com/neokit-dev/nktool/internal/prompt"
	"github.com/neokit-dev/nktool/internal/ui"
)

// Environment is a supported deployment target.
type Environment struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// Environments lists the deployment targets in menu order.
var Environments = []Environment{
	{ID: "cloudflare", Name: "Cloudflare Pages", Icon: "\ue792", Color: string(ui.ColorCloudflare)},
	{ID: "cloudflare-workers", Name: "Cloudflare Workers", Icon: "\ue793", Color: string(ui.ColorCloudflare)},
	{ID: "node", Name: "Node.js", Icon: "\U000f0399", Color: string(ui.ColorNode)},
}

// EnvironmentIDs returns the identifiers of all deployment targets.
func EnvironmentIDs() []string {
	ids := make([]string, len(Environments))
	for i, e := range Environments {
		ids[i] = e.ID
	}
	return ids
}

// ValidateEnv returns an error unless id names a deployment target.
func ValidateEnv(id string) error {
	for _, e := range Environments {
		if e.ID == id {
			return nil
		}
	}
	return fmt.Errorf("unknown environment %q: supported are %s", id, strings.Join(EnvironmentIDs(), ", "))
}

func environmentChoices() []prompt.Choice {
	choices := make([]prompt.Choice, len(Environments))
	for i, e := range Environments {
		choices[i] = prompt.Choice{Label: ui.PluginLabel(e.Icon, e.Color, e.Name), Value: e.ID}
	}
	return choices
}
