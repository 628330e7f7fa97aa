package triggers

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-servicesync/pkg/catalog"
	"github.com/goliatone/go-servicesync/pkg/render"
	"github.com/goliatone/go-servicesync/pkg/splice"
	"github.com/goliatone/go-servicesync/pkg/testsupport"
)

func TestRenderer_MatchesGolden(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := renderer.Render(context.Background(), testsupport.SampleCatalog())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := testsupport.Golden(t, "service_triggers.golden")
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("service triggers mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first, err := renderer.Render(context.Background(), testsupport.SampleCatalog())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		next, err := renderer.Render(context.Background(), testsupport.SampleCatalog())
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if string(next) != string(first) {
			t.Fatalf("render %d differs from the first render", i)
		}
	}
}

func TestRenderer_EmptyCatalog(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := renderer.Render(context.Background(), catalog.Catalog{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := splice.ServiceTriggers.Wrap("const SERVICE_TRIGGERS = [\n];")
	if string(got) != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderer_Options(t *testing.T) {
	markers := splice.Markers{Start: "/* begin */", End: "/* end */"}
	files := fstest.MapFS{
		TemplateName: {Data: []byte("{{ start|safe }}|{{ constant }}|{{ categories|length }}|{{ end|safe }}\n")},
	}

	renderer, err := New(render.WithConstant("CATALOG"), render.WithMarkers(markers), render.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if renderer.Markers() != markers {
		t.Fatalf("Markers() = %+v", renderer.Markers())
	}

	got, err := renderer.Render(context.Background(), testsupport.SampleCatalog())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(got) != "/* begin */|CATALOG|3|/* end */" {
		t.Fatalf("Render() = %q", got)
	}
}

func TestServiceLiteral(t *testing.T) {
	cases := []struct {
		name string
		svc  catalog.Service
		want string
	}{
		{
			name: "empty pricing",
			svc:  catalog.Service{Name: "Audit", Recommend: catalog.RecommendYes},
			want: "{ name: 'Audit', recommend: 'yes', condition: '', pricing: {} }",
		},
		{
			name: "default recommendation",
			svc:  catalog.Service{Name: "Audit"},
			want: "{ name: 'Audit', recommend: 'conditional', condition: '', pricing: {} }",
		},
		{
			name: "explicit zero kept",
			svc: catalog.Service{
				Name: "Setup", Recommend: catalog.RecommendNo,
				Pricing: catalog.Pricing{BudgetLow: testsupport.Int(0), PctProject: testsupport.Float(0)},
			},
			want: "{ name: 'Setup', recommend: 'no', condition: '', pricing: { budgetLow: 0, percentageOfProject: 0 } }",
		},
		{
			name: "escaped text",
			svc: catalog.Service{
				Name: "Client's \"site\"", Recommend: catalog.RecommendYes, Condition: "line\nbreak",
				Bundle: "O'Neil", Note: `C:\fees`,
			},
			want: `{ name: 'Client\'s "site"', recommend: 'yes', condition: 'line break', pricing: { bundle: 'O\'Neil', note: 'C:\\fees' } }`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ServiceLiteral(tc.svc); got != tc.want {
				t.Fatalf("ServiceLiteral() =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestServiceViews_BundleComments(t *testing.T) {
	services := []catalog.Service{
		{Name: "a"},
		{Name: "b", Bundle: "Launch"},
		{Name: "c", Bundle: "Launch"},
		{Name: "d", Bundle: "Scale"},
		{Name: "e"},
		{Name: "f"},
	}

	var comments []string
	for _, view := range serviceViews(services) {
		comments = append(comments, view.Comment)
	}
	want := []string{"", "Launch bundle", "", "Scale bundle", "Individual services", ""}
	if diff := cmp.Diff(want, comments); diff != "" {
		t.Fatalf("comments mismatch (-want +got):\n%s", diff)
	}

	for _, view := range serviceViews(services) {
		if strings.Contains(view.Literal, "//") {
			t.Fatalf("comments must not change the emitted data: %s", view.Literal)
		}
	}
}
