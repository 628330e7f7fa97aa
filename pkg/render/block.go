package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-servicesync/pkg/catalog"
	rendertemplate "github.com/goliatone/go-servicesync/pkg/render/template"
	"github.com/goliatone/go-servicesync/pkg/render/template/pongo"
	"github.com/goliatone/go-servicesync/pkg/splice"
)

// BlockSpec describes a template-backed block: the template it renders, its
// defaults, and how the catalog is projected for the template.
type BlockSpec struct {
	Name         string
	TemplateName string
	Templates    fs.FS
	Constant     string
	Markers      splice.Markers
	// View returns the value exposed to the template as "categories".
	View func(catalog.Catalog) any
}

// BlockOption overrides a BlockSpec default.
type BlockOption func(*blockConfig)

type blockConfig struct {
	templates    fs.FS
	templatesDir string
	engine       rendertemplate.TemplateRenderer
	constant     string
	markers      splice.Markers
}

// WithTemplatesFS replaces the embedded template bundle. The bundle must
// contain the block's TemplateName.
func WithTemplatesFS(files fs.FS) BlockOption {
	return func(cfg *blockConfig) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk first. Templates
// missing from the directory fall back to the bundle.
func WithTemplatesDir(dir string) BlockOption {
	return func(cfg *blockConfig) {
		cfg.templatesDir = strings.TrimSpace(dir)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) BlockOption {
	return func(cfg *blockConfig) {
		if renderer != nil {
			cfg.engine = renderer
		}
	}
}

// WithConstant overrides the declared constant name.
func WithConstant(name string) BlockOption {
	return func(cfg *blockConfig) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.constant = name
		}
	}
}

// WithMarkers overrides the marker pair wrapping the block.
func WithMarkers(markers splice.Markers) BlockOption {
	return func(cfg *blockConfig) {
		if markers.Start != "" && markers.End != "" {
			cfg.markers = markers
		}
	}
}

// BlockRenderer renders one BlockSpec through a TemplateRenderer.
type BlockRenderer struct {
	name         string
	templateName string
	constant     string
	markers      splice.Markers
	view         func(catalog.Catalog) any
	engine       rendertemplate.TemplateRenderer
}

var _ Renderer = (*BlockRenderer)(nil)

// NewBlock builds a renderer for spec. Without WithTemplateRenderer a pongo2
// engine is created over the templates dir (when set) and the bundle.
func NewBlock(spec BlockSpec, options ...BlockOption) (*BlockRenderer, error) {
	if spec.Name == "" || spec.TemplateName == "" {
		return nil, errors.New("render: block name and template name are required")
	}
	if spec.View == nil {
		return nil, fmt.Errorf("render: %s: view is required", spec.Name)
	}

	cfg := blockConfig{
		templates: spec.Templates,
		constant:  spec.Constant,
		markers:   spec.Markers,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	engine := cfg.engine
	if engine == nil {
		pongoOpts := []pongo.Option{pongo.WithExtension(".tpl")}
		if cfg.templatesDir != "" {
			pongoOpts = append(pongoOpts, pongo.WithBaseDir(cfg.templatesDir))
		}
		if cfg.templates != nil {
			pongoOpts = append(pongoOpts, pongo.WithFS(cfg.templates))
		}
		created, err := pongo.New(pongoOpts...)
		if err != nil {
			return nil, fmt.Errorf("render: %s: configure template renderer: %w", spec.Name, err)
		}
		engine = created
	}

	return &BlockRenderer{
		name:         spec.Name,
		templateName: spec.TemplateName,
		constant:     cfg.constant,
		markers:      cfg.markers,
		view:         spec.View,
		engine:       engine,
	}, nil
}

func (b *BlockRenderer) Name() string {
	return b.name
}

func (b *BlockRenderer) Markers() splice.Markers {
	return b.markers
}

// Constant reports the JavaScript constant the block declares.
func (b *BlockRenderer) Constant() string {
	return b.constant
}

// Render executes the block template. The trailing newline the template file
// ends with is dropped so the block splices in without a blank line.
func (b *BlockRenderer) Render(ctx context.Context, cat catalog.Catalog) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := blockData{
		Start:      b.markers.Start,
		End:        b.markers.End,
		Constant:   b.constant,
		Categories: b.view(cat),
	}
	result, err := b.engine.RenderTemplate(b.templateName, data)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", b.name, err)
	}
	return []byte(strings.TrimRight(result, "\n")), nil
}

type blockData struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Constant   string `json:"constant"`
	Categories any    `json:"categories"`
}
