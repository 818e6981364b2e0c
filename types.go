package doc2nb

import (
	"strings"
)

// DefaultFileSuffix is the output filename suffix when none is configured.
const DefaultFileSuffix = ".ipynb"

// DefaultKernel is the kernel assumed when none is configured.
const DefaultKernel = "python"

// Transform maps a docname to an output filename or link target. Transforms
// must be pure: the Service calls them from concurrent conversions.
type Transform func(docname string) string

// Input contains conversion parameters for one document.
type Input struct {
	Tree    *Node          // Parsed document tree (required)
	DocName string         // Logical document identifier (required)
	Meta    map[string]any // Extra notebook metadata, merged over defaults (optional)
}

// Result holds the output of one conversion.
type Result struct {
	Notebook *Notebook
	Warnings []Warning
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	fileSuffix    string
	linkSuffix    string
	fileTransform Transform
	linkTransform Transform
	kernel        string
	metadata      map[string]any
}

// WithFileSuffix sets the output filename suffix (default ".ipynb").
// Panics on a suffix without a leading dot (programmer error).
func WithFileSuffix(suffix string) Option {
	if !strings.HasPrefix(suffix, ".") {
		panic("doc2nb: WithFileSuffix requires a leading dot")
	}
	return func(s *Service) {
		s.cfg.fileSuffix = suffix
	}
}

// WithLinkSuffix sets the suffix appended by the default link transform.
// When unset, the file suffix is used.
func WithLinkSuffix(suffix string) Option {
	return func(s *Service) {
		s.cfg.linkSuffix = suffix
		s.linkSuffixSet = true
	}
}

// WithFileTransform replaces the default docname→filename mapping
// (docname + file suffix).
func WithFileTransform(fn Transform) Option {
	if fn == nil {
		panic("doc2nb: WithFileTransform requires a non-nil function")
	}
	return func(s *Service) {
		s.cfg.fileTransform = fn
	}
}

// WithLinkTransform replaces the default docname→link mapping
// (docname + link suffix).
func WithLinkTransform(fn Transform) Option {
	if fn == nil {
		panic("doc2nb: WithLinkTransform requires a non-nil function")
	}
	return func(s *Service) {
		s.cfg.linkTransform = fn
	}
}

// WithKernel sets the kernel language used for notebook-level metadata
// (default "python"). The tag is canonicalized through the lexer registry.
func WithKernel(kernel string) Option {
	return func(s *Service) {
		s.cfg.kernel = kernel
	}
}

// WithMetadata sets base notebook-level metadata. Keys from Input.Meta are
// merged over it per conversion. The map is not copied; callers must not
// mutate it after New.
func WithMetadata(meta map[string]any) Option {
	return func(s *Service) {
		s.cfg.metadata = meta
	}
}
