// Package servicesync regenerates the SERVICE_TRIGGERS and PRICING_GUIDE
// blocks of a front-end source file from a services workbook.
package servicesync

import (
	"context"

	"github.com/goliatone/go-servicesync/pkg/orchestrator"
	"github.com/goliatone/go-servicesync/pkg/render"
	"github.com/goliatone/go-servicesync/pkg/splice"
	"github.com/goliatone/go-servicesync/pkg/workbook"
)

// Request aliases orchestrator.Request for callers of the top-level package.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// DefaultRegistry returns a registry with the built-in block renderers.
func DefaultRegistry(options ...render.BlockOption) (*render.Registry, error) {
	return orchestrator.DefaultRegistry(options...)
}

// Sync reads the workbook at spreadsheetPath and rewrites target in place,
// bumping the version with policy. It is the simplest entry point for callers
// that just want the file updated.
func Sync(ctx context.Context, spreadsheetPath, target string, policy splice.BumpPolicy, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Sync(ctx, orchestrator.Request{
		Source: workbook.SourceFromFile(spreadsheetPath),
		Target: target,
		Bump:   policy,
	})
}
