package template

import (
	"io"
)

// TemplateRenderer is the seam block renderers rely on. Implementations load
// named templates from a file set and render them against plain data.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
