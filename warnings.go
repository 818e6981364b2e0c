package doc2nb

import "fmt"

// WarningKind categorizes non-fatal conversion issues.
type WarningKind string

const (
	// WarningUnresolvedLink means a reference target could not be
	// resolved; a placeholder link was emitted instead.
	WarningUnresolvedLink WarningKind = "unresolved_link"

	// WarningUnsupportedNode means a node kind outside the handled set
	// was encountered; its children were rendered (or it was dropped).
	WarningUnsupportedNode WarningKind = "unsupported_node"
)

// Warning is a non-fatal issue found during one conversion. Warnings are
// collected and returned with the result, never logged by the library.
type Warning struct {
	Kind    WarningKind
	Message string
	DocName string
	Line    int
}

// String formats the warning for host-side logging.
func (w Warning) String() string {
	loc := w.DocName
	if w.Line > 0 {
		loc = fmt.Sprintf("%s:%d", w.DocName, w.Line)
	}
	if loc == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", loc, w.Kind, w.Message)
}
