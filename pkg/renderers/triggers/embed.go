package triggers

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplateName is the path of the block template inside TemplatesFS.
const TemplateName = "templates/service_triggers.tpl"

// TemplatesFS exposes the embedded template bundle so callers can copy and
// adapt the block layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
