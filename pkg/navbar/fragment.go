package navbar

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mchmarny/sitenav/pkg/nav"
)

const (
	// PlaceholderSelector locates the container the menu is rendered into.
	PlaceholderSelector = "#navbar-placeholder"

	// HeaderSelector locates the rendered header element. Page content with the
	// same id is not matched.
	HeaderSelector = `header[data-sitenav="navbar"]`

	// ToggleSelector locates the mobile menu toggle icon of the rendered header.
	ToggleSelector = HeaderSelector + " > .header-toggle"

	// LinkSelector locates the rendered menu links.
	LinkSelector = HeaderSelector + " #navmenu a"

	classOpen      = "header-show"
	classIconList  = "bi-list"
	classIconClose = "bi-x"
)

var fragment = template.Must(template.New("navbar").Parse(
	`<header id="header" class="header d-flex flex-column justify-content-center" data-sitenav="navbar">` +
		`<i class="header-toggle d-xl-none bi bi-list"></i>` +
		`<nav id="navmenu" class="navmenu"><ul>` +
		`{{range .}}<li><a href="{{.Target}}"{{if .Active}} class="active"{{end}}>` +
		`<i class="bi {{.Icon}} navicon"></i><span>{{.Label}}</span></a></li>{{end}}` +
		`</ul></nav></header>`))

// Fragment renders the menu entries as the navigation header markup.
func Fragment(entries []nav.Entry) (string, error) {
	var buf bytes.Buffer
	if err := fragment.Execute(&buf, entries); err != nil {
		return "", fmt.Errorf("failed to render navbar fragment: %w", err)
	}
	return buf.String(), nil
}
