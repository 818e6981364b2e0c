package doc2nb

// linkResolver rewrites reference targets for one conversion. External URIs
// pass through untouched; internal docname targets go through the link
// transform. Self-references are not special-cased: a link to the current
// document still runs through the transform, so same-document and
// cross-document links share one addressing scheme.
type linkResolver struct {
	docname   string
	transform Transform
}

// resolve returns the link target for a reference node. ok is false when
// the node carries neither an external URI nor a docname target, or when
// the transform maps the target to nothing.
func (r *linkResolver) resolve(n *Node) (target string, ok bool) {
	if n.RefURI != "" {
		return n.RefURI, true
	}
	if n.RefDoc == "" {
		return "", false
	}
	target = r.transform(n.RefDoc)
	if target == "" {
		return "", false
	}
	if n.RefAnchor != "" {
		target += "#" + n.RefAnchor
	}
	return target, true
}

// suffixTransform returns the default transform: docname + suffix.
func suffixTransform(suffix string) Transform {
	return func(docname string) string {
		return docname + suffix
	}
}
