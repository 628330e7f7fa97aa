package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(v int) *int { return &v }

func TestDeriveID(t *testing.T) {
	cases := map[string]string{
		"Branding":                      "branding",
		"PR & Communications":           "pr_communications",
		"Paid Media (Digital)":          "paid_media_digital",
		"Web Design & Development Plus": "web_design_development_plus",
	}
	for name, want := range cases {
		if got := DeriveID(name); got != want {
			t.Fatalf("DeriveID(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestGroupByCategory_PreservesFirstSeenOrder(t *testing.T) {
	services := []Service{
		{Category: "Website", Name: "Sitemap", Row: 2},
		{Category: "Branding", Name: "Logo", Row: 3},
		{Category: "Website", Name: "Build", Row: 4},
		{Category: "Analytics", Name: "Audit", Row: 5},
		{Category: "Branding", Name: "Guidelines", Row: 6},
	}

	groups := GroupByCategory(services)

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	if diff := cmp.Diff([]string{"Website", "Branding", "Analytics"}, names); diff != "" {
		t.Fatalf("category order mismatch (-want +got):\n%s", diff)
	}

	var website []string
	for _, svc := range groups[0].Services {
		website = append(website, svc.Name)
	}
	if diff := cmp.Diff([]string{"Sitemap", "Build"}, website); diff != "" {
		t.Fatalf("service order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_MatchesTriggerSets(t *testing.T) {
	wb := Workbook{
		Services: []Service{
			{Category: "Branding", Name: "Logo", EngagementType: EngagementFixedFee},
			{Category: "Retainers", Name: "Monthly support", EngagementType: EngagementRetainer},
			{Category: "Retainers", Name: "Quarterly review", EngagementType: EngagementFixedFee},
		},
		Triggers: map[string]TriggerSet{
			"Branding": {
				ID:          "brand",
				Category:    "Branding",
				Description: "Identity work",
				Patterns: TriggerPatterns{
					Direct: []string{"new logo"},
				},
			},
			"Unused": {ID: "unused", Category: "Unused"},
		},
	}

	got := Build(wb)

	if got.Services != 3 || got.TriggerSets != 2 {
		t.Fatalf("unexpected counts: services=%d triggerSets=%d", got.Services, got.TriggerSets)
	}
	if len(got.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got.Categories))
	}

	brand := got.Categories[0]
	if brand.ID != "brand" || brand.Description != "Identity work" || !brand.Matched {
		t.Fatalf("unexpected branding category: %+v", brand)
	}
	if diff := cmp.Diff([]string{"new logo"}, brand.Triggers.Direct); diff != "" {
		t.Fatalf("trigger mismatch (-want +got):\n%s", diff)
	}

	retainers := got.Categories[1]
	if retainers.ID != "retainers" || retainers.Description != "Retainers" || retainers.Matched {
		t.Fatalf("unexpected fallback category: %+v", retainers)
	}
	if retainers.EngagementType != EngagementRetainer {
		t.Fatalf("engagement type should come from the first service, got %q", retainers.EngagementType)
	}
}

func TestService_BundleLineItem(t *testing.T) {
	cases := []struct {
		name string
		svc  Service
		want bool
	}{
		{name: "unbundled", svc: Service{Name: "a"}, want: false},
		{name: "bundled without pricing", svc: Service{Name: "a", Bundle: "Launch"}, want: true},
		{
			name: "bundled with term only",
			svc:  Service{Name: "a", Bundle: "Launch", Pricing: Pricing{TermLow: intPtr(4), TermHigh: intPtr(4)}},
			want: true,
		},
		{
			name: "bundled with budget",
			svc:  Service{Name: "a", Bundle: "Launch", Pricing: Pricing{BudgetLow: intPtr(1000)}},
			want: false,
		},
		{
			name: "bundled with explicit zero budget",
			svc:  Service{Name: "a", Bundle: "Launch", Pricing: Pricing{BudgetLow: intPtr(0)}},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.svc.BundleLineItem(); got != tc.want {
				t.Fatalf("BundleLineItem() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEngagementType_Label(t *testing.T) {
	cases := map[EngagementType]string{
		EngagementFixedFee:         "Fixed Fee",
		EngagementRetainer:         "Retainer",
		EngagementTimeAndMaterials: "Time & Materials",
		EngagementAny:              "Any",
		"hourly":                   "hourly",
	}
	for code, want := range cases {
		if got := code.Label(); got != want {
			t.Fatalf("%q.Label() = %q, want %q", code, got, want)
		}
	}
}
