package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-servicesync/internal/workbook/xlsx"
	"github.com/goliatone/go-servicesync/pkg/catalog"
	"github.com/goliatone/go-servicesync/pkg/prompt"
	"github.com/goliatone/go-servicesync/pkg/render"
	"github.com/goliatone/go-servicesync/pkg/renderers/pricing"
	"github.com/goliatone/go-servicesync/pkg/renderers/triggers"
	"github.com/goliatone/go-servicesync/pkg/splice"
	"github.com/goliatone/go-servicesync/pkg/workbook"
)

// DefaultBlocks lists the renderers applied to the target, in splice order.
var DefaultBlocks = []string{triggers.Name, pricing.Name}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom workbook loader.
func WithLoader(loader workbook.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry. It must hold every block named
// through WithBlocks.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithBlocks overrides which registered renderers are spliced and in which
// order.
func WithBlocks(names ...string) Option {
	return func(o *Orchestrator) {
		if len(names) == 0 {
			return
		}
		o.blocks = append([]string(nil), names...)
	}
}

// WithLogger sets the logger used for progress and warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfirmer asks before the target file is written. Without one the
// write happens unconditionally.
func WithConfirmer(confirmer prompt.Confirmer) Option {
	return func(o *Orchestrator) {
		o.confirmer = confirmer
	}
}

// WithTemplatesDir loads block templates from dir before the embedded
// bundle. It only applies to the default registry.
func WithTemplatesDir(dir string) Option {
	return func(o *Orchestrator) {
		o.templatesDir = dir
	}
}

// WithVersionIdentifier changes the constant holding the app version.
func WithVersionIdentifier(identifier string) Option {
	return func(o *Orchestrator) {
		if identifier != "" {
			o.versionIdentifier = identifier
		}
	}
}

// Orchestrator regenerates the generated blocks of a target file from a
// workbook. Missing dependencies are initialised with the built-in excelize
// loader and the two block renderers.
type Orchestrator struct {
	loader            workbook.Loader
	registry          *render.Registry
	blocks            []string
	logger            *zap.Logger
	confirmer         prompt.Confirmer
	versionIdentifier string
	templatesDir      string
	initialiseErr     error
	defaultsApplied   bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one sync run.
type Request struct {
	// Source identifies the workbook.
	Source workbook.Source

	// Target is the path of the file holding the marker pairs.
	Target string

	// Bump selects how the version is incremented. Empty means patch.
	Bump splice.BumpPolicy

	// SkipBump leaves the version declaration untouched.
	SkipBump bool

	// DryRun computes the result without writing the target.
	DryRun bool

	// Check reports ErrOutOfDate when the generated blocks differ from the
	// target. It never writes and never bumps.
	Check bool
}

// Block is one rendered region, markers included.
type Block struct {
	Name    string
	Markers splice.Markers
	Content string
}

// Result summarises a sync run.
type Result struct {
	Services    int
	Categories  int
	TriggerSets int
	Blocks      []Block

	// Version is nil when the bump was skipped or no declaration was found.
	Version *splice.VersionChange

	// Changed reports whether the target content differs from what was read.
	Changed bool

	// Written reports whether the target file was rewritten.
	Written bool
}

// Sync runs load → build → render → splice → bump → write. Every fatal
// condition is detected before the target is written; a missing version
// declaration is only logged.
func (o *Orchestrator) Sync(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	mode, err := validateRequest(req)
	if err != nil {
		return Result{}, err
	}

	o.logger.Debug("loading workbook", zap.String("source", req.Source.Location()))
	wb, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		if errors.Is(err, workbook.ErrNotFound) {
			return Result{}, fmt.Errorf("%w: %w", ErrSpreadsheetNotFound, err)
		}
		return Result{}, fmt.Errorf("orchestrator: load workbook: %w", err)
	}

	cat := catalog.Build(wb)
	result := Result{
		Services:    cat.Services,
		Categories:  len(cat.Categories),
		TriggerSets: cat.TriggerSets,
	}
	o.logger.Debug("catalog built",
		zap.Int("services", result.Services),
		zap.Int("categories", result.Categories),
		zap.Int("triggerSets", result.TriggerSets),
	)

	blocks, err := o.renderBlocks(ctx, cat)
	if err != nil {
		return result, err
	}
	result.Blocks = blocks

	raw, err := os.ReadFile(req.Target)
	if err != nil {
		return result, fmt.Errorf("orchestrator: read target %s: %w", req.Target, err)
	}
	original := string(raw)

	updated := original
	for _, block := range blocks {
		updated, err = splice.Replace(updated, block.Markers, block.Content)
		if err != nil {
			return result, fmt.Errorf("orchestrator: splice %s into %s: %w", block.Name, req.Target, err)
		}
		o.logger.Debug("block replaced", zap.String("block", block.Name))
	}

	if req.Check {
		result.Changed = updated != original
		if result.Changed {
			return result, fmt.Errorf("%w: %s", ErrOutOfDate, req.Target)
		}
		return result, nil
	}

	if !req.SkipBump {
		bumped, change, err := splice.BumpVersion(updated, o.versionIdentifier, req.Bump)
		switch {
		case errors.Is(err, splice.ErrVersionNotFound):
			o.logger.Warn("version declaration not found, version left unchanged",
				zap.String("identifier", o.versionIdentifier),
				zap.String("target", req.Target),
			)
		case err != nil:
			return result, fmt.Errorf("orchestrator: bump version: %w", err)
		default:
			updated = bumped
			result.Version = &change
			o.logger.Debug("version bumped",
				zap.Stringer("from", change.From),
				zap.Stringer("to", change.To),
			)
		}
	}

	result.Changed = updated != original
	if req.DryRun {
		o.logger.Debug("dry run, target not written", zap.String("target", req.Target))
		return result, nil
	}

	if err := o.confirm(ctx, req.Target); err != nil {
		return result, err
	}

	if err := os.WriteFile(req.Target, []byte(updated), mode.Perm()); err != nil {
		return result, fmt.Errorf("orchestrator: write target %s: %w", req.Target, err)
	}
	result.Written = true
	return result, nil
}

func (o *Orchestrator) renderBlocks(ctx context.Context, cat catalog.Catalog) ([]Block, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	if len(o.blocks) == 0 {
		return nil, errors.New("orchestrator: no blocks configured")
	}

	renderers, err := o.registry.Resolve(o.blocks...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve blocks: %w", err)
	}

	blocks := make([]Block, 0, len(renderers))
	for _, renderer := range renderers {
		name := renderer.Name()
		o.logger.Debug("rendering block", zap.String("block", name))
		out, err := renderer.Render(ctx, cat)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: render %s: %w", name, err)
		}
		blocks = append(blocks, Block{
			Name:    name,
			Markers: renderer.Markers(),
			Content: string(out),
		})
	}
	return blocks, nil
}

func (o *Orchestrator) confirm(ctx context.Context, target string) error {
	if o.confirmer == nil {
		return nil
	}
	ok, err := o.confirmer.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("Write changes to %s?", target),
		Default: true,
	})
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return fmt.Errorf("%w: %w", ErrAborted, err)
		}
		return fmt.Errorf("orchestrator: confirm write: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: write to %s declined", ErrAborted, target)
	}
	return nil
}

// validateRequest checks both paths before any work is done and returns the
// target's file mode so the rewrite keeps it.
func validateRequest(req Request) (fs.FileMode, error) {
	if req.Source == nil {
		return 0, errors.New("orchestrator: spreadsheet source is required")
	}
	if req.Target == "" {
		return 0, errors.New("orchestrator: target path is required")
	}

	if req.Source.Kind() == workbook.SourceKindFile {
		if _, err := os.Stat(req.Source.Location()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return 0, fmt.Errorf("%w: %s", ErrSpreadsheetNotFound, req.Source.Location())
			}
			return 0, fmt.Errorf("orchestrator: stat spreadsheet: %w", err)
		}
	}

	info, err := os.Stat(req.Target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrTargetNotFound, req.Target)
		}
		return 0, fmt.Errorf("orchestrator: stat target: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("orchestrator: target %s is a directory", req.Target)
	}
	return info.Mode(), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = xlsx.New(workbook.NewLoaderOptions())
	}
	if o.registry == nil {
		var templateOpts []render.BlockOption
		if o.templatesDir != "" {
			templateOpts = append(templateOpts, render.WithTemplatesDir(o.templatesDir))
		}
		registry, err := DefaultRegistry(templateOpts...)
		if err != nil {
			o.initialiseErr = err
		}
		o.registry = registry
	}
	if len(o.blocks) == 0 {
		o.blocks = append([]string(nil), DefaultBlocks...)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.versionIdentifier == "" {
		o.versionIdentifier = splice.DefaultVersionIdentifier
	}

	o.defaultsApplied = true
}

// DefaultRegistry returns a registry holding the service-triggers and
// pricing-guide renderers. Options are applied to both renderers.
func DefaultRegistry(options ...render.BlockOption) (*render.Registry, error) {
	triggersRenderer, err := triggers.New(options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	pricingRenderer, err := pricing.New(options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	return render.NewRegistry(triggersRenderer, pricingRenderer)
}
