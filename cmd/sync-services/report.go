package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-servicesync/pkg/orchestrator"
)

// report prints the progress summary. Styles degrade to plain text when the
// writer is not a terminal.
type report struct {
	w       io.Writer
	heading lipgloss.Style
	ok      lipgloss.Style
	muted   lipgloss.Style
}

func newReport(w io.Writer) *report {
	renderer := lipgloss.NewRenderer(w)
	return &report{
		w:       w,
		heading: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		ok:      renderer.NewStyle().Foreground(lipgloss.Color("#3FB950")),
		muted:   renderer.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

func (r *report) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *report) reading(spreadsheet string) {
	r.line("Reading: %s", spreadsheet)
}

func (r *report) generated(result orchestrator.Result) {
	r.line("  Found %d services, %d trigger sets", result.Services, result.TriggerSets)
	for _, block := range result.Blocks {
		r.line("Generating %s...", constantName(block.Name))
	}
}

func (r *report) replaced(result orchestrator.Result) {
	for _, block := range result.Blocks {
		r.line("  %s %s replaced", r.ok.Render("✓"), constantName(block.Name))
	}
	if result.Version != nil {
		r.line("  Version: %s → %s", result.Version.From, result.Version.To)
	}
}

func (r *report) synced(result orchestrator.Result, target string) {
	r.generated(result)
	r.line("Updating: %s", target)
	r.replaced(result)

	r.line("")
	r.line("%s", r.heading.Render("Sync complete:"))
	r.line("  %d services across %d categories", result.Services, result.Categories)
	r.line("  %d trigger pattern sets", result.TriggerSets)
	r.line("  %s updated at %s", filepath.Base(target), target)
	r.line("")
	r.line("%s", r.muted.Render("Next: npm run build (or npx vite build) to verify"))
}

func (r *report) dryRun(result orchestrator.Result, target string) {
	r.generated(result)
	r.line("")
	for _, block := range result.Blocks {
		r.line("%s", strings.TrimRight(block.Content, "\n"))
		r.line("")
	}
	r.replaced(result)
	r.line("%s", r.muted.Render(fmt.Sprintf("Dry run: %s not written", target)))
}

func (r *report) checked(result orchestrator.Result, target string) {
	r.generated(result)
	r.line("  %s %s is up to date", r.ok.Render("✓"), target)
}

// constantName maps a block name such as "service-triggers" to the constant
// it declares.
func constantName(block string) string {
	return strings.ToUpper(strings.ReplaceAll(block, "-", "_"))
}
