// Package ui provides the terminal styles shared by commands.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI bright colors.
var (
	ColorInfo     = lipgloss.Color("12")
	ColorSuccess  = lipgloss.Color("10")
	ColorWarning  = lipgloss.Color("11")
	ColorError    = lipgloss.Color("9")
	ColorEmphasis = lipgloss.Color("15")
)

// Brand colors for deployment targets.
var (
	ColorCloudflare = lipgloss.Color("#f38020")
	ColorNode       = lipgloss.Color("#5fa04e")
)

// DefaultPluginColor is used when a plugin has no usable color.
const DefaultPluginColor = "#ffffff"

var (
	Info     = lipgloss.NewStyle().Foreground(ColorInfo)
	Success  = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning  = lipgloss.NewStyle().Foreground(ColorWarning)
	Error    = lipgloss.NewStyle().Foreground(ColorError)
	Emphasis = lipgloss.NewStyle().Foreground(ColorEmphasis)
	Faint    = lipgloss.NewStyle().Faint(true)
)

// NormalizeHex returns color as "#rrggbb". The leading '#' is optional and
// 3-digit shorthand is expanded; anything else yields DefaultPluginColor.
func NormalizeHex(color string) string {
	c := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 {
		return DefaultPluginColor
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return DefaultPluginColor
		}
	}
	return "#" + strings.ToLower(c)
}

// PluginLabel renders a plugin's icon in its color followed by its name.
// A missing icon is shown as a blank.
func PluginLabel(icon, color, name string) string {
	if icon == "" {
		icon = " "
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(NormalizeHex(color)))
	return style.Render(icon+" ") + name
}
