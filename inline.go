package doc2nb

import (
	"fmt"
	"regexp"
	"strings"
)

// Markdown delimiter table, kept in one place the way a writer would keep
// its syntax configurable.
const (
	emphasisDelim = "*"
	strongDelim   = "**"
)

// markdownEscaper backslash-escapes characters that plain text content must
// not contribute as markup. The set covers emphasis, code spans, links,
// autolinks/raw HTML, and table pipes.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`|`, `\|`,
)

// orderedLeaderPattern matches an ordered-list marker at the start of a
// line: up to nine digits followed by "." or ")" and a space or line end.
var orderedLeaderPattern = regexp.MustCompile(`^\d{1,9}[.)]( |$)`)

// escapeText returns text with markdown special characters escaped so the
// fragment round-trips as literal content. Inline specials are escaped
// everywhere; block leaders ("#", "-", "+", "1.") only where the text
// starts a line, so they cannot open a heading or list.
func escapeText(text string) string {
	escaped := markdownEscaper.Replace(text)
	if !strings.Contains(escaped, "\n") {
		return escapeLineLeader(escaped)
	}
	lines := strings.Split(escaped, "\n")
	for i, line := range lines {
		lines[i] = escapeLineLeader(line)
	}
	return strings.Join(lines, "\n")
}

// escapeLineLeader escapes a block-construct marker at the start of one
// line. A backslash before ASCII punctuation always renders the literal
// character, so escaping a marker that a preceding sibling would have
// pushed mid-line is harmless.
func escapeLineLeader(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	pad := line[:len(line)-len(trimmed)]
	if strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, "+") {
		return pad + `\` + trimmed
	}
	if loc := orderedLeaderPattern.FindStringIndex(trimmed); loc != nil {
		// Escape the marker punctuation: "12. x" becomes "12\. x".
		i := strings.IndexAny(trimmed[:loc[1]], ".)")
		return pad + trimmed[:i] + `\` + trimmed[i:]
	}
	return line
}

// inlineRenderer converts inline nodes to markdown fragments. It is purely
// functional over (node, resolver) except for warning emission.
type inlineRenderer struct {
	resolver *linkResolver
	warn     func(kind WarningKind, message string, line int)
}

// render converts one inline node to a markdown fragment. The fragment
// never contains a cell boundary.
func (ir *inlineRenderer) render(n *Node) string {
	switch n.Kind {
	case KindText:
		return escapeText(n.Text)
	case KindEmphasis:
		return emphasisDelim + ir.renderAll(n.Children) + emphasisDelim
	case KindStrong:
		return strongDelim + ir.renderAll(n.Children) + strongDelim
	case KindLiteral:
		return codeSpan(rawText(n))
	case KindMath:
		return "$" + rawText(n) + "$"
	case KindReference:
		return ir.renderReference(n)
	default:
		ir.warn(WarningUnsupportedNode,
			fmt.Sprintf("inline node kind %q is not supported, rendering children", n.Kind),
			n.Line)
		return ir.renderAll(n.Children)
	}
}

// renderAll concatenates the rendering of a child sequence.
func (ir *inlineRenderer) renderAll(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(ir.render(n))
	}
	return b.String()
}

// renderReference emits a markdown link. A reference that cannot be
// resolved still produces a link, with an empty target, so the label text
// survives in the output.
func (ir *inlineRenderer) renderReference(n *Node) string {
	label := ir.renderAll(n.Children)
	target, ok := ir.resolver.resolve(n)
	if !ok {
		ir.warn(WarningUnresolvedLink,
			fmt.Sprintf("cannot resolve reference %q", label),
			n.Line)
	}
	return "[" + label + "](" + target + ")"
}

// codeSpan wraps text in a backtick run longer than any run inside it, the
// standard markdown rule for literal backticks. Content touching a backtick
// at either end gets a space pad so the delimiter stays unambiguous.
func codeSpan(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	delim := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		return delim + " " + text + " " + delim
	}
	return delim + text + delim
}

// rawText returns the unrendered text content of a node: its own Text if
// set, otherwise the concatenated text of its descendants.
func rawText(n *Node) string {
	if n.Text != "" {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(rawText(c))
	}
	return b.String()
}
