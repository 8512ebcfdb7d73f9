package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// embeddedPrompts holds the default prompts built into the binary.
//
//go:embed prompts/*.txt
var embeddedPrompts embed.FS

// Vars carries the values a prompt template can reference.
type Vars struct {
	Changes  string // Opaque diff content
	Language string // ISO 639-1 language preference ("en" renders no instruction)
	Detailed bool   // Request the detailed analysis sections (explain)
	Type     string // Conventional commit type (commit), empty for free-form
	Branch   string // Source branch name (pr)
	Base     string // Target branch name (pr)
}

// Loader loads and renders prompt templates.
type Loader struct {
	dirs    []string                      // Directories searched before embedded prompts
	cache   map[string]*template.Template // Cached parsed templates
	funcMap template.FuncMap
}

// NewLoader creates a prompt loader for the given project directory.
// User overrides in <projectDir>/.gas/prompts/ shadow the embedded
// templates of the same name.
func NewLoader(projectDir string) *Loader {
	var dirs []string
	if projectDir != "" {
		dirs = append(dirs, filepath.Join(projectDir, ".gas", "prompts"))
	}
	return &Loader{
		dirs:    dirs,
		cache:   make(map[string]*template.Template),
		funcMap: defaultFuncMap(),
	}
}

// Explain renders the diff-explanation prompt.
func (l *Loader) Explain(vars Vars) (string, error) {
	return l.Render("explain", vars)
}

// Commit renders the commit-message prompt.
func (l *Loader) Commit(vars Vars) (string, error) {
	return l.Render("commit", vars)
}

// PR renders the pull-request description prompt.
func (l *Loader) PR(vars Vars) (string, error) {
	return l.Render("pr", vars)
}

// Render loads a prompt by name and renders it with vars.
func (l *Loader) Render(name string, vars Vars) (string, error) {
	tmpl, err := l.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Exists checks if a prompt exists.
func (l *Loader) Exists(name string) bool {
	_, err := l.loadRaw(name)
	return err == nil
}

func (l *Loader) getTemplate(name string) (*template.Template, error) {
	if tmpl, ok := l.cache[name]; ok {
		return tmpl, nil
	}

	content, err := l.loadRaw(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(l.funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	l.cache[name] = tmpl
	return tmpl, nil
}

// loadRaw loads raw prompt content, preferring override directories.
func (l *Loader) loadRaw(name string) (string, error) {
	filename := name + ".txt"

	for _, dir := range l.dirs {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err == nil {
			return string(data), nil
		}
	}

	data, err := embeddedPrompts.ReadFile("prompts/" + filename)
	if err != nil {
		return "", fmt.Errorf("prompt not found: %s", name)
	}
	return string(data), nil
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"join":  strings.Join,
		"trim":  strings.TrimSpace,
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": cases.Title(language.English).String,
	}
}
