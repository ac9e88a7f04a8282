package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sendkit/sendkit-go/pkg/sanitizer"
)

// Renderer turns markdown templates with YAML frontmatter into email bodies.
// Parsed templates and layouts are cached; rendered output never is.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	bodies  map[string]*parsedBody
	layouts map[string]*template.Template

	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

type parsedBody struct {
	meta Frontmatter
	tmpl *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// RenderOptions selects the layout for a single render.
// Precedence: Layout, then the template's frontmatter, then FallbackLayout.
// When all are empty the body is rendered without a layout.
type RenderOptions struct {
	Layout         string
	FallbackLayout string
}

// RenderResult is a rendered template.
type RenderResult struct {
	Frontmatter Frontmatter
	HTML        string
	Text        string
}

// LayoutData is passed to layout templates.
type LayoutData struct {
	Frontmatter Frontmatter
	Data        any
	Content     template.HTML
}

// NewRenderer creates a renderer with default directories.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:          filesystem,
		md:          goldmark.New(goldmark.WithExtensions(extension.GFM)),
		bodies:      make(map[string]*parsedBody),
		layouts:     make(map[string]*template.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// Render executes the named template with data, converts it to sanitized
// HTML, and wraps it in the selected layout. Text is derived from the body
// HTML, not the layout.
func (r *Renderer) Render(name string, data any, opts RenderOptions) (*RenderResult, error) {
	body, err := r.body(name)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := body.tmpl.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	var converted bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &converted); err != nil {
		return nil, fmt.Errorf("%w: %s: convert markdown: %v", ErrRenderFailed, name, err)
	}
	content := sanitizer.EmailHTML(converted.String())

	result := &RenderResult{
		Frontmatter: body.meta,
		HTML:        content,
		Text:        sanitizer.PlainText(content),
	}

	layoutName := firstNonEmpty(opts.Layout, body.meta.Layout, opts.FallbackLayout)
	if layoutName == "" {
		return result, nil
	}

	layout, err := r.layout(layoutName)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := layout.Execute(&out, LayoutData{
		Frontmatter: body.meta,
		Data:        data,
		Content:     template.HTML(content), //nolint:gosec // sanitized above
	}); err != nil {
		return nil, fmt.Errorf("%w: layout %s: %v", ErrRenderFailed, layoutName, err)
	}
	result.HTML = out.String()

	return result, nil
}

func (r *Renderer) body(name string) (*parsedBody, error) {
	r.mu.RLock()
	cached, ok := r.bodies[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	tmpl, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.bodies[name]; ok {
		return cached, nil
	}
	cached = &parsedBody{meta: parsed.Frontmatter, tmpl: tmpl}
	r.bodies[name] = cached
	return cached, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: layout %s: %v", ErrRenderFailed, name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}
	r.layouts[name] = tmpl
	return tmpl, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
