// Package templates renders the file set of a scaffolded project from a
// fixed registry of embedded templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"text/template"

	"github.com/phravins/forgeweb/internal/project"
)

//go:embed files
var templateFS embed.FS

// File maps one embedded template to its output location. Both the body and
// the path are Go templates executed against project.Config, so generated
// files can live under the project's Python package directory.
type File struct {
	Path  string // output path relative to the project root
	Asset string // template file under files/
}

// Registry is the full file set of a generated project, in write order.
var Registry = []File{
	{Path: "backend/manage.py", Asset: "files/manage.py.tmpl"},
	{Path: "backend/{{.PackageName}}/__init__.py", Asset: "files/init.py.tmpl"},
	{Path: "backend/{{.PackageName}}/settings.py", Asset: "files/settings.py.tmpl"},
	{Path: "backend/{{.PackageName}}/urls.py", Asset: "files/urls.py.tmpl"},
	{Path: "backend/{{.PackageName}}/wsgi.py", Asset: "files/wsgi.py.tmpl"},
	{Path: "backend/{{.PackageName}}/asgi.py", Asset: "files/asgi.py.tmpl"},
	{Path: "requirements.txt", Asset: "files/requirements.txt.tmpl"},
	{Path: "Dockerfile", Asset: "files/dockerfile.tmpl"},
	{Path: "docker-compose.yml", Asset: "files/docker-compose.yml.tmpl"},
	{Path: "README.md", Asset: "files/readme.md.tmpl"},
	{Path: ".gitignore", Asset: "files/gitignore.tmpl"},
	{Path: "docs/.gitkeep", Asset: "files/gitkeep.tmpl"},
	{Path: "data/.gitkeep", Asset: "files/gitkeep.tmpl"},
}

// Error reports an inconsistency between a template and the configuration.
// It indicates a bug in the registry, not bad user input.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("template %s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Render produces the full output-path -> content mapping for cfg.
// Rendering is deterministic: the same config yields byte-identical output.
func Render(cfg project.Config) (map[string]string, error) {
	out := make(map[string]string, len(Registry))
	for _, f := range Registry {
		path, err := renderString(f.Asset+":path", f.Path, cfg)
		if err != nil {
			return nil, err
		}

		raw, err := templateFS.ReadFile(f.Asset)
		if err != nil {
			return nil, &Error{Name: f.Asset, Err: err}
		}
		content, err := renderString(f.Asset, string(raw), cfg)
		if err != nil {
			return nil, err
		}
		out[path] = content
	}
	return out, nil
}

// Paths returns the keys of a rendered mapping in stable order.
func Paths(rendered map[string]string) []string {
	paths := make([]string, 0, len(rendered))
	for p := range rendered {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func renderString(name, text string, cfg project.Config) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", &Error{Name: name, Err: err}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", &Error{Name: name, Err: err}
	}
	return buf.String(), nil
}
