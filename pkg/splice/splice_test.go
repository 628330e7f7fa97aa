package splice

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testMarkers = Markers{Start: "// BEGIN", End: "// END"}

func TestReplace_SwapsRegionInclusive(t *testing.T) {
	source := "head\n// BEGIN\nold line 1\nold line 2\n// END\ntail\n"
	block := testMarkers.Wrap("new line")

	got, err := Replace(source, testMarkers, block)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	want := "head\n// BEGIN\nnew line\n// END\ntail\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Replace() mismatch (-want +got):\n%s", diff)
	}
}

func TestReplace_OnlyFirstRegion(t *testing.T) {
	source := "// BEGIN\na\n// END\n--\n// BEGIN\nb\n// END"

	got, err := Replace(source, testMarkers, "X")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if want := "X\n--\n// BEGIN\nb\n// END"; got != want {
		t.Fatalf("Replace() = %q, want %q", got, want)
	}
}

func TestReplace_InsertsLiterally(t *testing.T) {
	source := "// BEGIN\n// END"
	block := `// BEGIN` + "\n" + `name: 'it\'s', path: 'C:\\tmp', re: '$1'` + "\n" + `// END`

	got, err := Replace(source, testMarkers, block)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got != block {
		t.Fatalf("replacement was altered: %q", got)
	}
}

func TestReplace_MissingMarkers(t *testing.T) {
	cases := map[string]string{
		"no markers":   "nothing here",
		"start only":   "// BEGIN\nbody",
		"end only":     "body\n// END",
		"end before":   "// END\n// BEGIN",
		"empty source": "",
	}
	for name, source := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Replace(source, testMarkers, "X")
			if !errors.Is(err, ErrMarkersNotFound) {
				t.Fatalf("expected ErrMarkersNotFound, got %v", err)
			}
		})
	}
}

func TestReplace_RoundTrip(t *testing.T) {
	source := "a\n" + ServiceTriggers.Wrap("stale one\nstale two") + "\nb\n" + PricingGuide.Wrap("stale pricing") + "\nc"

	updated, err := Replace(source, ServiceTriggers, ServiceTriggers.Wrap("fresh"))
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	updated, err = Replace(updated, PricingGuide, PricingGuide.Wrap("fresh pricing"))
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	region, err := Extract(updated, ServiceTriggers)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if region != ServiceTriggers.Wrap("fresh") {
		t.Fatalf("unexpected region %q", region)
	}
	if strings.Contains(updated, "stale") {
		t.Fatalf("previous content should be removed: %q", updated)
	}
	if strings.Count(updated, ServiceTriggers.Start) != 1 || strings.Count(updated, PricingGuide.End) != 1 {
		t.Fatalf("markers should appear exactly once: %q", updated)
	}

	again, err := Replace(updated, ServiceTriggers, ServiceTriggers.Wrap("fresh"))
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if again != updated {
		t.Fatal("replacing with the same block should be idempotent")
	}
}

func TestReplace_RequiresMarkers(t *testing.T) {
	if _, err := Replace("x", Markers{}, "y"); err == nil {
		t.Fatal("expected error for empty markers")
	}
}
