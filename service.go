package doc2nb

// Service converts document trees to notebooks. All configuration is fixed
// at New; a Service is safe for concurrent Convert calls because every
// conversion gets its own render state.
type Service struct {
	cfg           serviceConfig
	linkSuffixSet bool
}

// New creates a Service with default configuration. Use options to
// customize behavior (e.g., WithFileSuffix, WithLinkTransform, WithKernel).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			fileSuffix: DefaultFileSuffix,
			kernel:     DefaultKernel,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// The link suffix follows the file suffix unless set explicitly.
	if !s.linkSuffixSet {
		s.cfg.linkSuffix = s.cfg.fileSuffix
	}
	if s.cfg.fileTransform == nil {
		s.cfg.fileTransform = suffixTransform(s.cfg.fileSuffix)
	}
	if s.cfg.linkTransform == nil {
		s.cfg.linkTransform = suffixTransform(s.cfg.linkSuffix)
	}

	return s
}

// Convert runs one tree→notebook conversion. Warnings collected along the
// way come back in the Result; they never abort the conversion. The input
// tree is only read, never mutated.
func (s *Service) Convert(input Input) (*Result, error) {
	if input.Tree == nil {
		return nil, ErrNilTree
	}
	if input.DocName == "" {
		return nil, ErrEmptyDocName
	}

	var warnings []Warning
	warn := func(kind WarningKind, message string, line int) {
		warnings = append(warnings, Warning{
			Kind:    kind,
			Message: message,
			DocName: input.DocName,
			Line:    line,
		})
	}

	resolver := &linkResolver{docname: input.DocName, transform: s.cfg.linkTransform}
	asm := &cellAssembler{}
	seg := &segmenter{
		asm:    asm,
		inline: &inlineRenderer{resolver: resolver, warn: warn},
		warn:   warn,
	}
	seg.walk(input.Tree)

	nb := &Notebook{
		Cells:    asm.finish(),
		Metadata: s.metadata(input.Meta),
	}
	return &Result{Notebook: nb, Warnings: warnings}, nil
}

// OutputName applies the file transform: the filename the host should
// write this document's notebook to.
func (s *Service) OutputName(docname string) string {
	return s.cfg.fileTransform(docname)
}

// metadata layers the per-call metadata over the configured base over the
// kernel defaults. Later layers win per key.
func (s *Service) metadata(extra map[string]any) map[string]any {
	merged := kernelMetadata(s.cfg.kernel)
	for k, v := range s.cfg.metadata {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
