package render

import (
	"context"

	"github.com/goliatone/go-servicesync/pkg/catalog"
	"github.com/goliatone/go-servicesync/pkg/splice"
)

// Renderer turns a Catalog into one generated block of the target file. The
// returned bytes include the marker lines so they can replace the existing
// region verbatim.
type Renderer interface {
	Name() string
	Markers() splice.Markers
	Render(ctx context.Context, cat catalog.Catalog) ([]byte, error)
}
