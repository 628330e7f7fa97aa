package servicesync

import (
	"io/fs"

	"github.com/goliatone/go-servicesync/pkg/renderers/pricing"
	"github.com/goliatone/go-servicesync/pkg/renderers/triggers"
)

// EmbeddedTemplates exposes the built-in block templates keyed by renderer
// name so callers can copy and adapt them without importing the renderer
// packages directly.
func EmbeddedTemplates() map[string]fs.FS {
	return map[string]fs.FS{
		triggers.Name: triggers.TemplatesFS(),
		pricing.Name:  pricing.TemplatesFS(),
	}
}
