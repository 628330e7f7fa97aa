package triggers

import (
	"github.com/goliatone/go-servicesync/pkg/catalog"
	"github.com/goliatone/go-servicesync/pkg/render"
	"github.com/goliatone/go-servicesync/pkg/splice"
)

const (
	// Name identifies the renderer in a render.Registry.
	Name = "service-triggers"

	// DefaultConstant is the JavaScript constant the block declares.
	DefaultConstant = "SERVICE_TRIGGERS"
)

// Spec describes the SERVICE_TRIGGERS block.
func Spec() render.BlockSpec {
	return render.BlockSpec{
		Name:         Name,
		TemplateName: TemplateName,
		Templates:    TemplatesFS(),
		Constant:     DefaultConstant,
		Markers:      splice.ServiceTriggers,
		View: func(cat catalog.Catalog) any {
			return buildView(cat)
		},
	}
}

// New constructs the renderer applying any provided options.
func New(options ...render.BlockOption) (*render.BlockRenderer, error) {
	return render.NewBlock(Spec(), options...)
}
