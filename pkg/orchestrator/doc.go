// Package orchestrator wires the workbook loader, the block renderers and the
// marker splicer into a single Sync call that regenerates a target file.
package orchestrator
