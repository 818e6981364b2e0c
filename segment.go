package doc2nb

import (
	"fmt"
	"strings"
)

// maxHeadingLevel is Markdown's deepest heading. Sections nested further
// still render, clamped to this level.
const maxHeadingLevel = 6

// notebookRawFormats lists raw-block formats that markdown cells can carry.
// Raw content for any other output format is dropped.
var notebookRawFormats = map[string]bool{
	"ipynb":    true,
	"markdown": true,
	"md":       true,
	"html":     true, // markdown cells render inline HTML natively
}

// segmenter walks a document tree in a single depth-first pass and drives
// the cell assembler: block content accumulates into the current markdown
// buffer, literal blocks flush it and become standalone code cells.
type segmenter struct {
	asm          *cellAssembler
	inline       *inlineRenderer
	warn         func(kind WarningKind, message string, line int)
	sectionLevel int
}

// walk dispatches one block node. Cells come out in exact document order;
// nothing is reordered or merged across a code-cell boundary.
func (s *segmenter) walk(n *Node) {
	switch n.Kind {
	case KindDocument:
		s.walkAll(n.Children)
	case KindSection:
		s.sectionLevel++
		s.walkAll(n.Children)
		s.sectionLevel--
	case KindTitle:
		s.asm.appendMarkdown(s.heading(n) + "\n\n")
	case KindParagraph:
		s.asm.appendMarkdown(s.inline.renderAll(n.Children) + "\n\n")
	case KindBulletList, KindEnumeratedList:
		s.asm.appendMarkdown(s.renderList(n, 0) + "\n")
	case KindTable:
		s.asm.appendMarkdown(s.renderTable(n) + "\n")
	case KindBlockQuote:
		s.asm.appendMarkdown(s.renderQuote(n) + "\n")
	case KindLiteralBlock:
		s.asm.appendCode(n.Text, canonicalLanguage(n.Language))
	case KindRaw:
		if notebookRawFormats[strings.ToLower(n.Format)] {
			s.asm.appendMarkdown(n.Text + "\n\n")
		}
	case KindTransition:
		s.asm.appendMarkdown("---\n\n")
	case KindMathBlock:
		s.asm.appendMarkdown("$$" + strings.TrimSpace(rawText(n)) + "$$\n\n")
	case KindComment:
		s.asm.appendMarkdown("<!-- " + rawText(n) + " -->\n\n")
	case KindText, KindEmphasis, KindStrong, KindLiteral, KindReference, KindMath:
		// Inline content loose at block level, e.g. under a degraded
		// unknown container.
		s.asm.appendMarkdown(s.inline.render(n) + "\n\n")
	default:
		s.warn(WarningUnsupportedNode,
			fmt.Sprintf("block node kind %q is not supported, rendering children", n.Kind),
			n.Line)
		s.walkAll(n.Children)
	}
}

func (s *segmenter) walkAll(nodes []*Node) {
	for _, n := range nodes {
		s.walk(n)
	}
}

// heading renders a title as a #-prefixed line scaled by section depth.
func (s *segmenter) heading(n *Node) string {
	level := s.sectionLevel
	if level < 1 {
		level = 1
	}
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	return strings.Repeat("#", level) + " " + s.inline.renderAll(n.Children)
}

// renderList renders a bullet or enumerated list. Nesting is preserved by
// two-space indentation per level; enumerated items count per level.
func (s *segmenter) renderList(n *Node, level int) string {
	indent := strings.Repeat("  ", level)
	var b strings.Builder
	item := 0
	for _, child := range n.Children {
		if child.Kind != KindListItem {
			s.walkUnexpected(child, &b)
			continue
		}
		item++
		marker := "- "
		if n.Kind == KindEnumeratedList {
			marker = fmt.Sprintf("%d. ", item)
		}
		b.WriteString(indent + marker + s.renderItem(child, level, indent+"  "))
		b.WriteString("\n")
	}
	return b.String()
}

// renderItem renders the content of one list item. The first paragraph
// shares the marker line; nested lists and further blocks continue on
// their own indented lines.
func (s *segmenter) renderItem(n *Node, level int, cont string) string {
	var parts []string
	for _, child := range n.Children {
		switch child.Kind {
		case KindParagraph:
			text := s.inline.renderAll(child.Children)
			if len(parts) > 0 {
				text = "\n" + cont + text
			}
			parts = append(parts, text)
		case KindBulletList, KindEnumeratedList:
			nested := strings.TrimRight(s.renderList(child, level+1), "\n")
			parts = append(parts, "\n"+nested)
		case KindLiteralBlock:
			parts = append(parts, "\n"+indentLines(fencedBlock(child), cont))
		case KindText, KindEmphasis, KindStrong, KindLiteral, KindReference, KindMath:
			parts = append(parts, s.inline.render(child))
		default:
			s.warn(WarningUnsupportedNode,
				fmt.Sprintf("list item child kind %q is not supported, rendering children", child.Kind),
				child.Line)
			parts = append(parts, s.inline.renderAll(child.Children))
		}
	}
	return strings.Join(parts, "")
}

// renderTable renders a pipe-delimited table. The first row is the header;
// the column count is the widest row and short rows pad with empty cells.
func (s *segmenter) renderTable(n *Node) string {
	rows := tableRows(n)
	if len(rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range rows {
		if len(row.Children) > cols {
			cols = len(row.Children)
		}
	}

	var b strings.Builder
	for i, row := range rows {
		b.WriteString("|")
		for c := 0; c < cols; c++ {
			text := ""
			if c < len(row.Children) {
				text = s.renderTableCell(row.Children[c])
			}
			b.WriteString(" " + text + " |")
		}
		b.WriteString("\n")
		if i == 0 {
			b.WriteString("|" + strings.Repeat(" --- |", cols) + "\n")
		}
	}
	return b.String()
}

// tableRows flattens a table's rows, looking through grouping nodes such
// as header/body sections that some hosts keep in their trees.
func tableRows(n *Node) []*Node {
	var rows []*Node
	for _, child := range n.Children {
		if child.Kind == KindTableRow {
			rows = append(rows, child)
			continue
		}
		rows = append(rows, tableRows(child)...)
	}
	return rows
}

// renderTableCell renders a table cell's content on one line. Pipes inside
// cell text are already escaped by the inline renderer.
func (s *segmenter) renderTableCell(n *Node) string {
	var parts []string
	for _, child := range n.Children {
		if child.Kind == KindParagraph {
			parts = append(parts, s.inline.renderAll(child.Children))
			continue
		}
		parts = append(parts, s.inline.render(child))
	}
	text := strings.Join(parts, " ")
	return strings.ReplaceAll(text, "\n", " ")
}

// renderQuote renders a block quote with "> " line prefixes.
func (s *segmenter) renderQuote(n *Node) string {
	var parts []string
	for _, child := range n.Children {
		switch child.Kind {
		case KindParagraph:
			parts = append(parts, s.inline.renderAll(child.Children))
		case KindLiteralBlock:
			parts = append(parts, fencedBlock(child))
		default:
			parts = append(parts, s.inline.render(child))
		}
	}
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString(">\n")
		}
		for _, line := range strings.Split(strings.TrimRight(part, "\n"), "\n") {
			b.WriteString("> " + line + "\n")
		}
	}
	return b.String()
}

// walkUnexpected handles a non-item child of a list node.
func (s *segmenter) walkUnexpected(n *Node, b *strings.Builder) {
	s.warn(WarningUnsupportedNode,
		fmt.Sprintf("list child kind %q is not supported, rendering children", n.Kind),
		n.Line)
	b.WriteString(s.inline.renderAll(n.Children))
}

// fencedBlock renders a literal block as fenced markdown. Used only where
// a code cell cannot be split out (inside lists and quotes); top-level
// literal blocks become code cells instead.
func fencedBlock(n *Node) string {
	text := strings.TrimRight(n.Text, "\n")
	return "``` " + n.Language + "\n" + text + "\n```\n"
}

// indentLines prefixes every line of text with indent.
func indentLines(text, indent string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n") + "\n"
}
