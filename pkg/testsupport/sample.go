package testsupport

import (
	"embed"
	"strings"
	"testing"

	"github.com/goliatone/go-servicesync/pkg/catalog"
)

//go:embed testdata/*.golden
var goldens embed.FS

// SampleWorkbookRows is the spreadsheet form of SampleWorkbook. Loading it
// through the xlsx loader yields the same services and trigger sets.
func SampleWorkbookRows() Workbook {
	return Workbook{
		Services: [][]any{
			{"Branding", "Logo Design", "yes", "", "", "fixed_fee", 4, 6, 5000, 15000, nil, nil, "per concept"},
			{"Branding", "Guidelines", nil, "if new logo", "Brand Pack", "fixed_fee"},
			{"Branding", "Brand Pack fee", nil, nil, "Brand Pack", "fixed_fee", nil, nil, 8000, 12000},
			{"Branding", "Workshop", "no", "client's call", nil, "fixed_fee", nil, nil, nil, nil, 12.5},
			{"", "Dropped without category"},
			{"Paid Media (Digital)", "Campaign mgmt", nil, nil, nil, "retainer", 52, 52, nil, nil, nil, 15},
			{"Analytics", "Audit", "yes", nil, nil, "tm"},
		},
		Triggers: [][]any{
			{"brand", "Branding", "Identity work", "fixed_fee", "new logo\nit's time"},
			{"unused", "Unused", "Not referenced by any service"},
		},
	}
}

// SampleWorkbook returns the in-memory workbook matching SampleWorkbookRows.
func SampleWorkbook() catalog.Workbook {
	return catalog.Workbook{
		Services: []catalog.Service{
			{
				Category: "Branding", Name: "Logo Design", Recommend: catalog.RecommendYes,
				EngagementType: catalog.EngagementFixedFee, Note: "per concept", Row: 2,
				Pricing: catalog.Pricing{TermLow: Int(4), TermHigh: Int(6), BudgetLow: Int(5000), BudgetHigh: Int(15000)},
			},
			{
				Category: "Branding", Name: "Guidelines", Recommend: catalog.RecommendConditional,
				Condition: "if new logo", Bundle: "Brand Pack", EngagementType: catalog.EngagementFixedFee, Row: 3,
			},
			{
				Category: "Branding", Name: "Brand Pack fee", Recommend: catalog.RecommendConditional,
				Bundle: "Brand Pack", EngagementType: catalog.EngagementFixedFee, Row: 4,
				Pricing: catalog.Pricing{BudgetLow: Int(8000), BudgetHigh: Int(12000)},
			},
			{
				Category: "Branding", Name: "Workshop", Recommend: catalog.RecommendNo,
				Condition: "client's call", EngagementType: catalog.EngagementFixedFee, Row: 5,
				Pricing: catalog.Pricing{PctProject: Float(12.5)},
			},
			{
				Category: "Paid Media (Digital)", Name: "Campaign mgmt", Recommend: catalog.RecommendConditional,
				EngagementType: catalog.EngagementRetainer, Row: 7,
				Pricing: catalog.Pricing{TermLow: Int(52), TermHigh: Int(52), PctPaidMedia: Float(15)},
			},
			{
				Category: "Analytics", Name: "Audit", Recommend: catalog.RecommendYes,
				EngagementType: catalog.EngagementTimeAndMaterials, Row: 8,
			},
		},
		Triggers: map[string]catalog.TriggerSet{
			"Branding": {
				ID: "brand", Category: "Branding", Description: "Identity work",
				EngagementType: catalog.EngagementFixedFee,
				Patterns:       catalog.TriggerPatterns{Direct: []string{"new logo", "it's time"}},
				Row:            2,
			},
			"Unused": {
				ID: "unused", Category: "Unused", Description: "Not referenced by any service",
				Row: 3,
			},
		},
	}
}

// SampleCatalog builds the catalog of SampleWorkbook.
func SampleCatalog() catalog.Catalog {
	return catalog.Build(SampleWorkbook())
}

// Golden returns an embedded golden file without its trailing newline.
func Golden(t *testing.T, name string) string {
	t.Helper()

	data, err := goldens.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read golden %s: %v", name, err)
	}
	return strings.TrimSuffix(string(data), "\n")
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
