// Package catalog is the fixed list of project templates shipped with the CLI.
package catalog

import "github.com/fatih/color"

// Accent is the colour a template is presented in.
type Accent int

const (
	AccentGreen Accent = iota
	AccentYellow
)

// Paint renders s in the accent colour.
func (a Accent) Paint(s string) string {
	switch a {
	case AccentYellow:
		return color.New(color.FgYellow).Sprint(s)
	default:
		return color.New(color.FgGreen).Sprint(s)
	}
}

// Template is one selectable project template.
type Template struct {
	ID     string
	Label  string
	Accent Accent
}

// templates is in display order. It is never modified after init.
var templates = [...]Template{
	{ID: "basic", Label: "Great for absolute beginners", Accent: AccentGreen},
	{ID: "api", Label: "For building real-world APIs", Accent: AccentYellow},
}

// List returns the templates in display order.
func List() []Template {
	out := make([]Template, len(templates))
	copy(out, templates[:])
	return out
}

// IDs returns the template identifiers in display order.
func IDs() []string {
	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}
	return ids
}

// Lookup returns the template with the given id.
func Lookup(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// IsKnown reports whether id names a template.
func IsKnown(id string) bool {
	_, ok := Lookup(id)
	return ok
}
