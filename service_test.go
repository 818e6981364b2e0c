package doc2nb

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestService_Convert_Validation(t *testing.T) {
	t.Parallel()

	svc := New()

	if _, err := svc.Convert(Input{DocName: "doc"}); !errors.Is(err, ErrNilTree) {
		t.Errorf("nil tree error = %v, want ErrNilTree", err)
	}
	if _, err := svc.Convert(Input{Tree: NewNode(KindDocument)}); !errors.Is(err, ErrEmptyDocName) {
		t.Errorf("empty docname error = %v, want ErrEmptyDocName", err)
	}
}

func TestService_Convert_EndToEnd(t *testing.T) {
	t.Parallel()

	tree := NewNode(KindDocument,
		NewNode(KindSection,
			NewNode(KindTitle, TextNode("Getting Started")),
			NewNode(KindParagraph,
				TextNode("See "),
				&Node{Kind: KindReference, RefDoc: "install", Children: []*Node{TextNode("the install guide")}},
				TextNode(" first."),
			),
			CodeBlock("import this\n", "python"),
			NewNode(KindParagraph, TextNode("Done.")),
		),
	)

	svc := New()
	result, err := svc.Convert(Input{Tree: tree, DocName: "intro"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}

	cells := result.Notebook.Cells
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(cells))
	}

	md := markdownOf(cells[0])
	wantContains := []string{
		"# Getting Started",
		"[the install guide](install.ipynb)",
	}
	for _, want := range wantContains {
		if !strings.Contains(md, want) {
			t.Errorf("first cell missing %q:\n%s", want, md)
		}
	}

	data, err := result.Notebook.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	for _, want := range []string{`"nbformat": 4`, `"cell_type": "code"`, `"import this"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("serialized notebook missing %s", want)
		}
	}
}

func TestService_WarningsCarryDocName(t *testing.T) {
	t.Parallel()

	tree := NewNode(KindDocument,
		NewNode(KindParagraph,
			&Node{Kind: KindReference, Line: 7, Children: []*Node{TextNode("ghost")}},
		),
	)
	result, err := New().Convert(Input{Tree: tree, DocName: "broken/page"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(result.Warnings))
	}
	w := result.Warnings[0]
	if w.DocName != "broken/page" || w.Line != 7 {
		t.Errorf("warning location = %s:%d, want broken/page:7", w.DocName, w.Line)
	}
	if !strings.Contains(w.String(), "broken/page:7") {
		t.Errorf("String() = %q, want location prefix", w.String())
	}
}

func TestService_OutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		svc  *Service
		want string
	}{
		{
			name: "default suffix",
			svc:  New(),
			want: "guide.ipynb",
		},
		{
			name: "custom suffix",
			svc:  New(WithFileSuffix(".nb.json")),
			want: "guide.nb.json",
		},
		{
			name: "custom transform",
			svc: New(WithFileTransform(func(docname string) string {
				return "out/" + docname + ".ipynb"
			})),
			want: "out/guide.ipynb",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.svc.OutputName("guide"); got != tt.want {
				t.Errorf("OutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestService_LinkSuffixFollowsFileSuffix(t *testing.T) {
	t.Parallel()

	tree := NewNode(KindDocument,
		NewNode(KindParagraph,
			&Node{Kind: KindReference, RefDoc: "other", Children: []*Node{TextNode("x")}},
		),
	)

	t.Run("inherited", func(t *testing.T) {
		t.Parallel()
		result, err := New(WithFileSuffix(".nb")).Convert(Input{Tree: tree, DocName: "doc"})
		if err != nil {
			t.Fatal(err)
		}
		if md := markdownOf(result.Notebook.Cells[0]); !strings.Contains(md, "(other.nb)") {
			t.Errorf("link did not inherit file suffix: %s", md)
		}
	})

	t.Run("overridden", func(t *testing.T) {
		t.Parallel()
		result, err := New(WithLinkSuffix(".html")).Convert(Input{Tree: tree, DocName: "doc"})
		if err != nil {
			t.Fatal(err)
		}
		if md := markdownOf(result.Notebook.Cells[0]); !strings.Contains(md, "(other.html)") {
			t.Errorf("link suffix override ignored: %s", md)
		}
	})
}

func TestService_MetadataLayers(t *testing.T) {
	t.Parallel()

	svc := New(
		WithKernel("python"),
		WithMetadata(map[string]any{"authors": []any{"docs team"}, "title": "base"}),
	)
	result, err := svc.Convert(Input{
		Tree:    NewNode(KindDocument, paragraph("x")),
		DocName: "doc",
		Meta:    map[string]any{"title": "override"},
	})
	if err != nil {
		t.Fatal(err)
	}

	meta := result.Notebook.Metadata
	if _, ok := meta["kernelspec"]; !ok {
		t.Error("kernel defaults missing from metadata")
	}
	if meta["title"] != "override" {
		t.Errorf("title = %v, want per-call override", meta["title"])
	}
	if _, ok := meta["authors"]; !ok {
		t.Error("configured base metadata missing")
	}
}

func TestService_ConcurrentConversions(t *testing.T) {
	t.Parallel()

	svc := New()
	tree := NewNode(KindDocument,
		paragraph("text"),
		CodeBlock("print(1)", "python"),
	)

	want, err := svc.Convert(Input{Tree: tree, DocName: "doc"})
	if err != nil {
		t.Fatal(err)
	}
	wantBytes, err := want.Notebook.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Convert(Input{Tree: tree, DocName: "doc"})
			if err != nil {
				errs <- err
				return
			}
			data, err := result.Notebook.Bytes()
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(data, wantBytes) {
				errs <- errors.New("concurrent conversion produced different bytes")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestOptions_PanicOnMisuse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"suffix without dot", func() { WithFileSuffix("ipynb") }},
		{"nil file transform", func() { WithFileTransform(nil) }},
		{"nil link transform", func() { WithLinkTransform(nil) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
