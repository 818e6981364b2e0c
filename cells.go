package doc2nb

import "strings"

// CellType discriminates the Cell variants.
type CellType string

const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
)

// Cell is one unit of notebook content: prose (markdown) or executable
// source (code). Source follows the notebook line convention: every line
// keeps its trailing newline except the last. Cells are immutable once
// appended to a sequence.
type Cell struct {
	Type     CellType
	Source   []string
	Language string // code cells only, "" = plain
}

// cellAssembler owns the ordered cell list and the markdown accumulation
// buffer for one conversion.
type cellAssembler struct {
	buf   strings.Builder
	cells []Cell
}

// appendMarkdown adds rendered markdown to the current accumulation.
func (a *cellAssembler) appendMarkdown(text string) {
	a.buf.WriteString(text)
}

// flushMarkdown emits the accumulated markdown as one cell. A buffer that
// holds nothing but whitespace is dropped, never emitted as an empty cell.
func (a *cellAssembler) flushMarkdown() {
	text := strings.TrimRight(a.buf.String(), "\n")
	a.buf.Reset()
	if strings.TrimSpace(text) == "" {
		return
	}
	a.cells = append(a.cells, Cell{Type: CellMarkdown, Source: sourceLines(text)})
}

// appendCode flushes the markdown accumulation and emits one code cell.
// A code block with no content still acts as a flush boundary but emits
// no cell.
func (a *cellAssembler) appendCode(source, language string) {
	a.flushMarkdown()
	text := strings.TrimRight(source, "\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	a.cells = append(a.cells, Cell{Type: CellCode, Source: sourceLines(text), Language: language})
}

// finish flushes trailing markdown and returns the completed sequence.
func (a *cellAssembler) finish() []Cell {
	a.flushMarkdown()
	return a.cells
}

// sourceLines splits text into notebook source lines: each line ends with
// "\n" except the last.
func sourceLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
