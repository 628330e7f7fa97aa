package workbook

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-servicesync/pkg/catalog"
)

const (
	DefaultServicesSheet = "Services Master"
	DefaultTriggersSheet = "Trigger Patterns"
)

var (
	// ErrNotFound reports a workbook source that does not exist.
	ErrNotFound = errors.New("workbook: not found")
	// ErrSheetNotFound reports a required sheet missing from the workbook.
	ErrSheetNotFound = errors.New("workbook: sheet not found")
)

// Loader reads the services and trigger pattern sheets of a workbook.
// Implementations live under internal/workbook but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (catalog.Workbook, error)
}

// LoaderOptions configures how a Loader resolves sources and which sheets it
// reads.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. Nil disables them.
	FileSystem fs.FS

	// ServicesSheet names the sheet holding one row per service.
	ServicesSheet string

	// TriggersSheet names the sheet holding one row per category trigger set.
	TriggersSheet string
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS used for SourceFromFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithServicesSheet overrides the services sheet name.
func WithServicesSheet(name string) LoaderOption {
	return func(opts *LoaderOptions) {
		if name != "" {
			opts.ServicesSheet = name
		}
	}
}

// WithTriggersSheet overrides the trigger patterns sheet name.
func WithTriggersSheet(name string) LoaderOption {
	return func(opts *LoaderOptions) {
		if name != "" {
			opts.TriggersSheet = name
		}
	}
}

// NewLoaderOptions applies a set of LoaderOption values on top of the default
// sheet names.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{
		ServicesSheet: DefaultServicesSheet,
		TriggersSheet: DefaultTriggersSheet,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level servicesync package to prevent
// import cycles.
