package doc2nb

// NodeKind identifies the structural role of a Node. The set is closed;
// kinds outside it decode as KindUnknown and go through the fallback arm
// of the segmenter and inline renderer.
type NodeKind string

// Block-level kinds.
const (
	KindDocument       NodeKind = "document"
	KindSection        NodeKind = "section"
	KindTitle          NodeKind = "title"
	KindParagraph      NodeKind = "paragraph"
	KindLiteralBlock   NodeKind = "literal_block"
	KindBulletList     NodeKind = "bullet_list"
	KindEnumeratedList NodeKind = "enumerated_list"
	KindListItem       NodeKind = "list_item"
	KindTable          NodeKind = "table"
	KindTableRow       NodeKind = "table_row"
	KindTableCell      NodeKind = "table_cell"
	KindBlockQuote     NodeKind = "block_quote"
	KindRaw            NodeKind = "raw"
	KindTransition     NodeKind = "transition"
	KindMathBlock      NodeKind = "math_block"
	KindComment        NodeKind = "comment"
)

// Inline kinds.
const (
	KindEmphasis  NodeKind = "emphasis"
	KindStrong    NodeKind = "strong"
	KindLiteral   NodeKind = "literal"
	KindReference NodeKind = "reference"
	KindMath      NodeKind = "math"
	KindText      NodeKind = "text"
)

// KindUnknown is the zero value; any unrecognized tag maps here.
const KindUnknown NodeKind = ""

var knownKinds = map[NodeKind]bool{
	KindDocument: true, KindSection: true, KindTitle: true,
	KindParagraph: true, KindLiteralBlock: true, KindBulletList: true,
	KindEnumeratedList: true, KindListItem: true, KindTable: true,
	KindTableRow: true, KindTableCell: true, KindBlockQuote: true,
	KindRaw: true, KindTransition: true, KindMathBlock: true,
	KindComment: true, KindEmphasis: true, KindStrong: true,
	KindLiteral: true, KindReference: true, KindMath: true,
	KindText: true,
}

// Known reports whether k belongs to the closed kind set.
func (k NodeKind) Known() bool { return knownKinds[k] }

// Node is one element of a parsed document tree. The host owns the tree;
// the converter only reads it. JSON tags define the interchange format the
// CLI accepts (.doctree.json files).
type Node struct {
	Kind     NodeKind `json:"kind"`
	Children []*Node  `json:"children,omitempty"`

	// Text carries the content of text nodes, inline literals, literal
	// blocks, raw blocks, math nodes, and comments.
	Text string `json:"text,omitempty"`

	// Language is the language tag of a literal_block ("" = plain).
	Language string `json:"language,omitempty"`

	// Format is the target output format of a raw block.
	Format string `json:"format,omitempty"`

	// Reference attributes: exactly one of RefURI (external) or RefDoc
	// (internal docname target) is normally set. RefAnchor is an optional
	// in-document fragment for internal references.
	RefURI    string `json:"refuri,omitempty"`
	RefDoc    string `json:"refdoc,omitempty"`
	RefAnchor string `json:"refanchor,omitempty"`

	// Line is the 1-based source line, 0 when unknown. Used only for
	// warning locations.
	Line int `json:"line,omitempty"`
}

// NewNode creates a Node of the given kind with the given children.
func NewNode(kind NodeKind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// TextNode creates a text leaf.
func TextNode(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// CodeBlock creates a literal_block carrying source text and a language tag.
func CodeBlock(text, language string) *Node {
	return &Node{Kind: KindLiteralBlock, Text: text, Language: language}
}
