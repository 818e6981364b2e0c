package doc2nb

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// parseMarkdown re-parses emitted markdown so tests can assert on the
// structure a notebook viewer would see.
func parseMarkdown(t *testing.T, src string) ast.Node {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return md.Parser().Parse(text.NewReader([]byte(src)))
}

// countKind walks a goldmark AST counting nodes of one kind.
func countKind(t *testing.T, root ast.Node, kind ast.NodeKind) int {
	t.Helper()
	count := 0
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == kind {
			count++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking AST: %v", err)
	}
	return count
}

func newTestRenderer(warnings *[]Warning) *inlineRenderer {
	return &inlineRenderer{
		resolver: &linkResolver{docname: "doc", transform: suffixTransform(".ipynb")},
		warn: func(kind WarningKind, message string, line int) {
			*warnings = append(*warnings, Warning{Kind: kind, Message: message, Line: line})
		},
	}
}

func TestInlineRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "plain text",
			node: TextNode("hello world"),
			want: "hello world",
		},
		{
			name: "text with markdown specials escaped",
			node: TextNode("2 * 3 _and_ [brackets]"),
			want: `2 \* 3 \_and\_ \[brackets\]`,
		},
		{
			name: "emphasis",
			node: NewNode(KindEmphasis, TextNode("soft")),
			want: "*soft*",
		},
		{
			name: "strong",
			node: NewNode(KindStrong, TextNode("loud")),
			want: "**loud**",
		},
		{
			name: "nested emphasis in strong",
			node: NewNode(KindStrong, NewNode(KindEmphasis, TextNode("both"))),
			want: "***both***",
		},
		{
			name: "inline literal",
			node: &Node{Kind: KindLiteral, Text: "fmt.Println"},
			want: "`fmt.Println`",
		},
		{
			name: "inline literal with backtick run",
			node: &Node{Kind: KindLiteral, Text: "a ``b`` c"},
			want: "```a ``b`` c```",
		},
		{
			name: "inline literal starting with backtick",
			node: &Node{Kind: KindLiteral, Text: "`quoted`"},
			want: "`` `quoted` ``",
		},
		{
			name: "inline math",
			node: &Node{Kind: KindMath, Text: `\alpha_1 \le n`},
			want: `$\alpha_1 \le n$`,
		},
		{
			name: "external reference",
			node: &Node{Kind: KindReference, RefURI: "https://example.com", Children: []*Node{TextNode("site")}},
			want: "[site](https://example.com)",
		},
		{
			name: "internal reference",
			node: &Node{Kind: KindReference, RefDoc: "guide/setup", Children: []*Node{TextNode("setup")}},
			want: "[setup](guide/setup.ipynb)",
		},
		{
			name: "internal reference with anchor",
			node: &Node{Kind: KindReference, RefDoc: "api", RefAnchor: "errors", Children: []*Node{TextNode("errors")}},
			want: "[errors](api.ipynb#errors)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var warnings []Warning
			ir := newTestRenderer(&warnings)
			got := ir.render(tt.node)
			if got != tt.want {
				t.Errorf("render() = %q, want %q", got, tt.want)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
		})
	}
}

func TestInlineRenderer_UnresolvedReference(t *testing.T) {
	t.Parallel()

	var warnings []Warning
	ir := newTestRenderer(&warnings)

	node := &Node{Kind: KindReference, Children: []*Node{TextNode("dangling")}, Line: 12}
	got := ir.render(node)

	if got != "[dangling]()" {
		t.Errorf("render() = %q, want placeholder link", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Kind != WarningUnresolvedLink {
		t.Errorf("warning kind = %q, want %q", warnings[0].Kind, WarningUnresolvedLink)
	}
	if warnings[0].Line != 12 {
		t.Errorf("warning line = %d, want 12", warnings[0].Line)
	}
}

func TestInlineRenderer_UnknownKindRendersChildren(t *testing.T) {
	t.Parallel()

	var warnings []Warning
	ir := newTestRenderer(&warnings)

	node := &Node{Kind: NodeKind("subscript"), Children: []*Node{TextNode("x0")}}
	got := ir.render(node)

	if got != "x0" {
		t.Errorf("render() = %q, want child rendering %q", got, "x0")
	}
	if len(warnings) != 1 || warnings[0].Kind != WarningUnsupportedNode {
		t.Fatalf("warnings = %v, want exactly one UnsupportedNode", warnings)
	}
}

func TestEscaping_NoSpuriousEmphasisAfterReparse(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"2 * 3 * 4",
		"under_score_heavy",
		"*leading star",
		"[not a link](nope",
		"backtick ` inside",
		"# not a heading",
		"- not a list item",
		"+ also not one",
		"1. not an enumeration",
		"42) nor this",
		"---",
		"> not a quote",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			escaped := escapeText(input)
			root := parseMarkdown(t, escaped)
			if n := countKind(t, root, ast.KindEmphasis); n != 0 {
				t.Errorf("escaped %q re-parses with %d emphasis nodes", input, n)
			}
			if n := countKind(t, root, ast.KindLink); n != 0 {
				t.Errorf("escaped %q re-parses with %d links", input, n)
			}
			if n := countKind(t, root, ast.KindCodeSpan); n != 0 {
				t.Errorf("escaped %q re-parses with %d code spans", input, n)
			}
			if n := countKind(t, root, ast.KindHeading); n != 0 {
				t.Errorf("escaped %q re-parses with %d headings", input, n)
			}
			if n := countKind(t, root, ast.KindList); n != 0 {
				t.Errorf("escaped %q re-parses with %d lists", input, n)
			}
			if n := countKind(t, root, ast.KindBlockquote); n != 0 {
				t.Errorf("escaped %q re-parses with %d block quotes", input, n)
			}
			if n := countKind(t, root, ast.KindThematicBreak); n != 0 {
				t.Errorf("escaped %q re-parses with %d thematic breaks", input, n)
			}
		})
	}
}

func TestCodeSpan_DelimiterExceedsInnerRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
	}{
		{"plain"},
		{"one ` tick"},
		{"two `` ticks"},
		{"```"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got := codeSpan(tt.text)

			// The produced span must re-parse as exactly one code span.
			root := parseMarkdown(t, got)
			if n := countKind(t, root, ast.KindCodeSpan); n != 1 {
				t.Errorf("codeSpan(%q) = %q re-parses with %d code spans, want 1", tt.text, got, n)
			}
		})
	}
}

func TestRawText(t *testing.T) {
	t.Parallel()

	node := NewNode(KindLiteral,
		TextNode("a"),
		NewNode(KindEmphasis, TextNode("b")),
	)
	if got := rawText(node); got != "ab" {
		t.Errorf("rawText() = %q, want %q", got, "ab")
	}
	if got := rawText(&Node{Kind: KindLiteral, Text: "direct"}); got != "direct" {
		t.Errorf("rawText() = %q, want %q", got, "direct")
	}
	if !strings.Contains(codeSpan("`quoted`"), " `quoted` ") {
		t.Error("codeSpan should pad content touching backticks")
	}
}
