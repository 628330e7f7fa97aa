package pricing

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/goliatone/go-servicesync/internal/jsliteral"
	"github.com/goliatone/go-servicesync/pkg/catalog"
)

const (
	annualWeeks = 52

	termVaries = "Varies"
	budgetTM   = "T&M based on scope"
)

type categoryView struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Rows  []rowView `json:"rows"`
}

type rowView struct {
	Service string `json:"service"`
	Term    string `json:"term"`
	Budget  string `json:"budget"`
}

func buildView(cat catalog.Catalog) []categoryView {
	view := make([]categoryView, 0, len(cat.Categories))
	for _, category := range cat.Categories {
		entry := categoryView{
			Name:  jsliteral.TemplateText(category.Name),
			Label: jsliteral.TemplateText(category.EngagementType.Label()),
			Rows:  make([]rowView, 0, len(category.Services)),
		}
		for _, svc := range category.Services {
			if svc.BundleLineItem() {
				continue
			}
			entry.Rows = append(entry.Rows, rowView{
				Service: jsliteral.TemplateText(DisplayName(svc)),
				Term:    jsliteral.TemplateText(FormatTerm(svc)),
				Budget:  jsliteral.TemplateText(FormatBudget(svc)),
			})
		}
		view = append(view, entry)
	}
	return view
}

// DisplayName returns the service name, tagged with its bundle when it has one.
func DisplayName(svc catalog.Service) string {
	if svc.Bundled() {
		return fmt.Sprintf("%s [%s]", svc.Name, svc.Bundle)
	}
	return svc.Name
}

// FormatTerm describes the engagement length in weeks.
func FormatTerm(svc catalog.Service) string {
	low, high := svc.Pricing.TermLow, svc.Pricing.TermHigh
	switch {
	case low == nil || high == nil:
		return termVaries
	case *low == annualWeeks && *high == annualWeeks:
		return "Annual"
	case *low == *high:
		return fmt.Sprintf("%d weeks", *low)
	default:
		return fmt.Sprintf("%d-%d weeks", *low, *high)
	}
}

// FormatBudget describes the expected fee. Percentages win over a budget
// range and are shown truncated to whole numbers.
func FormatBudget(svc catalog.Service) string {
	p := svc.Pricing
	switch {
	case p.PctProject != nil:
		return fmt.Sprintf("~%d%% of total project fee", int(*p.PctProject))
	case p.PctPaidMedia != nil:
		return fmt.Sprintf("~%d%% of paid media management fees", int(*p.PctPaidMedia))
	case p.BudgetLow != nil && p.BudgetHigh != nil:
		budget := "$" + humanize.Comma(int64(*p.BudgetLow)) + " - $" + humanize.Comma(int64(*p.BudgetHigh))
		if svc.Note != "" {
			budget += " (" + svc.Note + ")"
		}
		return budget
	default:
		return budgetTM
	}
}
