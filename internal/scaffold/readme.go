package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/labforge-dev/labforge/internal/branding"
	"github.com/labforge-dev/labforge/internal/layout"
)

// readmeData holds the variables a README template may reference.
type readmeData struct {
	ProjectName string
	Structure   string
}

// templateFile locates the optional README template. The LABFORGE_TEMPLATES
// environment variable overrides the search; otherwise templates/README.md
// is looked up next to the installed binary and one level above it.
func templateFile() (string, bool) {
	if v := os.Getenv(branding.EnvVar("TEMPLATES")); v != "" {
		p := filepath.Join(v, "README.md")
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		return "", false
	}

	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	dir := filepath.Dir(exe)
	for _, p := range []string{
		filepath.Join(dir, "templates", "README.md"),
		filepath.Join(dir, "..", "templates", "README.md"),
	} {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// RenderREADME produces the README content for a project. A present and
// well-formed template wins; any template problem (unreadable, unparsable,
// unknown placeholder) silently degrades to the generated fallback. The
// README is never empty.
func RenderREADME(projectName string) string {
	tree := layout.Tree(projectName)
	if path, ok := templateFile(); ok {
		if text, err := renderTemplate(path, projectName, tree); err == nil {
			return text
		}
	}
	return fallbackREADME(projectName, tree)
}

func renderTemplate(path, projectName, tree string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, readmeData{ProjectName: projectName, Structure: tree}); err != nil {
		return "", fmt.Errorf("executing template %s: %w", path, err)
	}
	return buf.String(), nil
}

func fallbackREADME(projectName, tree string) string {
	return fmt.Sprintf("# %s\n\nA standardized research project layout created by %s.\n\n%s\n",
		projectName, branding.CLIName(), tree)
}
