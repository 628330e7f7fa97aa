package triggers

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-servicesync/internal/jsliteral"
	"github.com/goliatone/go-servicesync/pkg/catalog"
)

const individualServices = "Individual services"

type categoryView struct {
	ID             string        `json:"id"`
	Category       string        `json:"category"`
	Description    string        `json:"description"`
	EngagementType string        `json:"engagementType"`
	Services       []serviceView `json:"services"`
	Triggers       triggerView   `json:"triggers"`
}

// serviceView carries a fully formatted object literal plus the optional
// comment line emitted above it.
type serviceView struct {
	Comment string `json:"comment"`
	Literal string `json:"literal"`
}

type triggerView struct {
	Direct         string `json:"direct"`
	Indirect       string `json:"indirect"`
	Situational    string `json:"situational"`
	Performance    string `json:"performance"`
	SampleLanguage string `json:"sampleLanguage"`
}

func buildView(cat catalog.Catalog) []categoryView {
	view := make([]categoryView, 0, len(cat.Categories))
	for _, category := range cat.Categories {
		view = append(view, categoryView{
			ID:             jsliteral.Escape(category.ID),
			Category:       jsliteral.Escape(category.Name),
			Description:    jsliteral.Escape(category.Description),
			EngagementType: jsliteral.Escape(string(category.EngagementType)),
			Services:       serviceViews(category.Services),
			Triggers: triggerView{
				Direct:         jsliteral.Array(category.Triggers.Direct),
				Indirect:       jsliteral.Array(category.Triggers.Indirect),
				Situational:    jsliteral.Array(category.Triggers.Situational),
				Performance:    jsliteral.Array(category.Triggers.Performance),
				SampleLanguage: jsliteral.Array(category.Triggers.SampleLanguage),
			},
		})
	}
	return view
}

// serviceViews annotates bundle boundaries: a comment opens each new bundle
// and another marks the return to unbundled services.
func serviceViews(services []catalog.Service) []serviceView {
	out := make([]serviceView, 0, len(services))
	current := ""
	for _, svc := range services {
		var comment string
		switch {
		case svc.Bundled() && svc.Bundle != current:
			current = svc.Bundle
			comment = strings.ReplaceAll(svc.Bundle, "\n", " ") + " bundle"
		case !svc.Bundled() && current != "":
			current = ""
			comment = individualServices
		}
		out = append(out, serviceView{Comment: comment, Literal: ServiceLiteral(svc)})
	}
	return out
}

// ServiceLiteral formats one service as a JavaScript object literal.
func ServiceLiteral(svc catalog.Service) string {
	recommend := string(svc.Recommend)
	if recommend == "" {
		recommend = string(catalog.RecommendConditional)
	}

	var b strings.Builder
	b.WriteString("{ name: ")
	b.WriteString(jsliteral.Quote(svc.Name))
	b.WriteString(", recommend: ")
	b.WriteString(jsliteral.Quote(recommend))
	b.WriteString(", condition: ")
	b.WriteString(jsliteral.Quote(svc.Condition))
	b.WriteString(", pricing: ")
	b.WriteString(PricingLiteral(svc))
	b.WriteString(" }")
	return b.String()
}

// PricingLiteral formats the sparse pricing object. Absent values are left
// out rather than emitted as null.
func PricingLiteral(svc catalog.Service) string {
	p := svc.Pricing
	var parts []string
	addInt := func(key string, v *int) {
		if v != nil {
			parts = append(parts, key+": "+strconv.Itoa(*v))
		}
	}
	addFloat := func(key string, v *float64) {
		if v != nil {
			parts = append(parts, key+": "+jsliteral.Number(*v))
		}
	}

	addInt("termLow", p.TermLow)
	addInt("termHigh", p.TermHigh)
	addInt("budgetLow", p.BudgetLow)
	addInt("budgetHigh", p.BudgetHigh)
	addFloat("percentageOfProject", p.PctProject)
	addFloat("percentageOfPaidMedia", p.PctPaidMedia)
	if svc.Bundled() {
		parts = append(parts, "bundle: "+jsliteral.Quote(svc.Bundle))
	}
	if svc.Note != "" {
		parts = append(parts, "note: "+jsliteral.Quote(svc.Note))
	}

	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
