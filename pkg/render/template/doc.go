// Package template defines the renderer-agnostic template interface used by
// the block renderers. The pongo2 backed adapter lives in the pongo
// subpackage.
package template
