package doc2nb

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// kernelMetadata builds the notebook-level kernelspec and language_info
// for a kernel tag. The chroma lexer registry supplies the canonical name,
// file extension, and mime type; an unknown tag falls back to a minimal
// kernelspec carrying the raw string.
func kernelMetadata(kernel string) map[string]any {
	lexer := lexers.Get(kernel)
	if lexer == nil {
		return map[string]any{
			"kernelspec": map[string]any{
				"display_name": kernel,
				"language":     kernel,
				"name":         kernel,
			},
		}
	}

	cfg := lexer.Config()
	lang := canonicalName(cfg)
	info := map[string]any{"name": lang}
	if ext := extensionFromGlobs(cfg.Filenames); ext != "" {
		info["file_extension"] = ext
	}
	if len(cfg.MimeTypes) > 0 {
		info["mimetype"] = cfg.MimeTypes[0]
	}

	return map[string]any{
		"kernelspec": map[string]any{
			"display_name": cfg.Name,
			"language":     lang,
			"name":         lang,
		},
		"language_info": info,
	}
}

// canonicalLanguage normalizes a language tag through the lexer registry:
// "py" and "Python" both map to "python". Tags without a lexer pass
// through unchanged.
func canonicalLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	lexer := lexers.Get(tag)
	if lexer == nil {
		return tag
	}
	return canonicalName(lexer.Config())
}

func canonicalName(cfg *chroma.Config) string {
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}

// extensionFromGlobs derives a file extension from lexer filename globs,
// e.g. "*.py" yields ".py". Globs with wildcards past the dot are skipped.
func extensionFromGlobs(globs []string) string {
	for _, g := range globs {
		rest, ok := strings.CutPrefix(g, "*.")
		if !ok || rest == "" || strings.ContainsAny(rest, "*?[") {
			continue
		}
		return "." + rest
	}
	return ""
}
