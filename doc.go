// Package doc2nb converts parsed document trees to Jupyter notebooks.
//
// # Quick Start
//
// Create a service and convert a tree:
//
//	svc := doc2nb.New()
//	result, err := svc.Convert(doc2nb.Input{
//	    Tree:    tree,
//	    DocName: "guide/intro",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := result.Notebook.Bytes()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(svc.OutputName("guide/intro"), data, 0644)
//
// # Conversion Pipeline
//
// One conversion is a single depth-first pass over the tree:
//
//  1. Block segmentation: prose blocks (paragraphs, headings, lists,
//     tables, quotes) accumulate into the current markdown cell; each
//     literal block flushes the accumulation and becomes a code cell.
//  2. Inline rendering: emphasis, strong, inline literals, and links
//     become markdown fragments with plain text escaped.
//  3. Link resolution: cross-document references rewrite through a
//     configurable docname→target transform (default: docname + suffix).
//  4. Serialization: the cell sequence becomes deterministic nbformat 4.4
//     JSON via Notebook.Bytes.
//
// Unknown node kinds and unresolvable links degrade safely and surface as
// Result.Warnings; only a broken cell sequence reaching the serializer is
// an error.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := doc2nb.New(
//	    doc2nb.WithKernel("julia"),
//	    doc2nb.WithLinkSuffix(".html"),
//	    doc2nb.WithLinkTransform(func(docname string) string {
//	        return "notebooks/" + docname
//	    }),
//	)
//
// # Parallel Conversion
//
// A Service carries no per-conversion state, so one Service may convert
// many documents concurrently (one goroutine per document). Transform
// functions must be pure for the same reason.
package doc2nb
