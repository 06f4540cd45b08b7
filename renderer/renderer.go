// Package renderer renders the finance reports as markdown.
//
// Each report is a plain struct built from the engine results (New* functions)
// and rendered by an embedded text/template (Render* functions). Numbers are
// kept as finance.Money so that templates can use their renderers
// (String, SignedString).
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// Header holds what every report shows in its title block.
type Header struct {
	Title    string `json:"title"`
	Currency string `json:"currency"`
	// Scenario is the scenario name, empty for the baseline.
	Scenario string `json:"scenario,omitempty"`
	// Degraded is true when FX rates are the fallback ones.
	Degraded bool `json:"degraded,omitempty"`
}

var funcs = template.FuncMap{
	// cell escapes text for a markdown table cell.
	"cell": func(s string) string {
		s = strings.ReplaceAll(s, "|", `\|`)
		return strings.ReplaceAll(s, "\n", " ")
	},
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// headerPartials are the partials every report includes.
func headerPartials() map[string]string {
	return map[string]string{"header": "header.md"}
}
