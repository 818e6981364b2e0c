package doc2nb

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pinned nbformat version. Consumers check both fields against their
// supported range; 4.4 is the newest minor without mandatory cell ids,
// which keeps serialization fully deterministic.
const (
	NBFormat      = 4
	NBFormatMinor = 4
)

// Notebook is the in-memory output document: an immutable cell sequence
// plus document-level metadata.
type Notebook struct {
	Cells    []Cell
	Metadata map[string]any
}

// notebookJSON mirrors the nbformat top-level object. Field order is the
// serialized key order and matches nbformat's alphabetical layout.
type notebookJSON struct {
	Cells         []any          `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

type markdownCellJSON struct {
	CellType string         `json:"cell_type"`
	Metadata map[string]any `json:"metadata"`
	Source   []string       `json:"source"`
}

type codeCellJSON struct {
	CellType       string         `json:"cell_type"`
	ExecutionCount *int           `json:"execution_count"`
	Metadata       map[string]any `json:"metadata"`
	Outputs        []any          `json:"outputs"`
	Source         []string       `json:"source"`
}

// Bytes serializes the notebook as UTF-8 nbformat JSON. Identical
// notebooks serialize to byte-identical output: struct fields emit in
// declared order and encoding/json sorts map keys. Returns an error
// wrapping ErrSerialization only on an internal invariant violation.
func (nb *Notebook) Bytes() ([]byte, error) {
	doc := notebookJSON{
		Cells:         make([]any, 0, len(nb.Cells)),
		Metadata:      nb.Metadata,
		NBFormat:      NBFormat,
		NBFormatMinor: NBFormatMinor,
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]any{}
	}

	for i, cell := range nb.Cells {
		if len(cell.Source) == 0 {
			return nil, fmt.Errorf("%w: cell %d has no content", ErrSerialization, i)
		}
		switch cell.Type {
		case CellMarkdown:
			doc.Cells = append(doc.Cells, markdownCellJSON{
				CellType: string(CellMarkdown),
				Metadata: map[string]any{},
				Source:   cell.Source,
			})
		case CellCode:
			meta := map[string]any{}
			if cell.Language != "" {
				meta["language"] = cell.Language
			}
			doc.Cells = append(doc.Cells, codeCellJSON{
				CellType: string(CellCode),
				Metadata: meta,
				Outputs:  []any{},
				Source:   cell.Source,
			})
		default:
			return nil, fmt.Errorf("%w: cell %d has unknown type %q", ErrSerialization, i, cell.Type)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return buf.Bytes(), nil
}
