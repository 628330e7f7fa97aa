package render

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-servicesync/pkg/catalog"
	"github.com/goliatone/go-servicesync/pkg/splice"
)

const testTemplate = "templates/block.tpl"

func testSpec(files fs.FS) BlockSpec {
	return BlockSpec{
		Name:         "names",
		TemplateName: testTemplate,
		Templates:    files,
		Constant:     "NAMES",
		Markers:      splice.Markers{Start: "// <names>", End: "// </names>"},
		View: func(cat catalog.Catalog) any {
			out := []string{}
			for _, c := range cat.Categories {
				out = append(out, c.Name)
			}
			return out
		},
	}
}

func sampleCatalog() catalog.Catalog {
	return catalog.Catalog{Categories: []catalog.Category{{Name: "Design"}, {Name: "Build"}}}
}

func TestBlockRenderer_Render(t *testing.T) {
	files := fstest.MapFS{
		testTemplate: {Data: []byte("{{ start|safe }}\nconst {{ constant }} = [{% for name in categories %}'{{ name|safe }}',{% endfor %}];\n{{ end|safe }}\n")},
	}
	block, err := NewBlock(testSpec(files))
	if err != nil {
		t.Fatalf("NewBlock() error = %v", err)
	}
	if block.Name() != "names" || block.Constant() != "NAMES" {
		t.Fatalf("unexpected block identity %q %q", block.Name(), block.Constant())
	}

	got, err := block.Render(context.Background(), sampleCatalog())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "// <names>\nconst NAMES = ['Design','Build',];\n// </names>"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockRenderer_TemplatesDir(t *testing.T) {
	files := fstest.MapFS{
		testTemplate: {Data: []byte("embedded\n")},
	}
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "templates"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, testTemplate), []byte("{{ constant }}:{{ categories|length }}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	block, err := NewBlock(testSpec(files), WithTemplatesDir(dir), WithConstant("OTHER"))
	if err != nil {
		t.Fatalf("NewBlock() error = %v", err)
	}
	got, err := block.Render(context.Background(), sampleCatalog())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(got) != "OTHER:2" {
		t.Fatalf("Render() = %q, want the on-disk template", got)
	}

	if _, err := NewBlock(testSpec(files), WithTemplatesDir(filepath.Join(dir, "missing"))); err == nil {
		t.Fatal("expected error for a missing templates dir")
	}
}

type recordingEngine struct {
	name string
	data any
	err  error
}

func (r *recordingEngine) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	r.name = name
	r.data = data
	return "rendered\n\n", r.err
}

func TestBlockRenderer_TemplateRenderer(t *testing.T) {
	engine := &recordingEngine{}
	markers := splice.Markers{Start: "/* a */", End: "/* b */"}

	block, err := NewBlock(testSpec(nil), WithTemplateRenderer(engine), WithMarkers(markers))
	if err != nil {
		t.Fatalf("NewBlock() error = %v", err)
	}
	if block.Markers() != markers {
		t.Fatalf("Markers() = %+v", block.Markers())
	}

	got, err := block.Render(context.Background(), sampleCatalog())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(got) != "rendered" {
		t.Fatalf("Render() = %q", got)
	}
	if engine.name != testTemplate {
		t.Fatalf("rendered template %q", engine.name)
	}
	want := blockData{Start: "/* a */", End: "/* b */", Constant: "NAMES", Categories: []string{"Design", "Build"}}
	if diff := cmp.Diff(want, engine.data); diff != "" {
		t.Fatalf("template data mismatch (-want +got):\n%s", diff)
	}

	engine.err = errors.New("boom")
	if _, err := block.Render(context.Background(), sampleCatalog()); err == nil {
		t.Fatal("expected template error")
	}
}

func TestBlockRenderer_Errors(t *testing.T) {
	if _, err := NewBlock(BlockSpec{}); err == nil {
		t.Fatal("expected error for an unnamed block")
	}
	spec := testSpec(nil)
	spec.View = nil
	if _, err := NewBlock(spec); err == nil {
		t.Fatal("expected error without a view")
	}
	if _, err := NewBlock(testSpec(nil)); err == nil {
		t.Fatal("expected error without any template source")
	}

	block, err := NewBlock(testSpec(fstest.MapFS{testTemplate: {Data: []byte("x")}}))
	if err != nil {
		t.Fatalf("NewBlock() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := block.Render(ctx, sampleCatalog()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want context.Canceled", err)
	}
}
