package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-doc2nb/internal/fileutil"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2nb [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert parsed document trees ("+fileutil.DoctreeSuffix+" files) to Jupyter notebooks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Doctree file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to input)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notebook:")
	fmt.Fprintln(w, "      --kernel <s>          Kernel language tag (default: python)")
	fmt.Fprintln(w, "      --file-suffix <s>     Notebook filename suffix (default: .ipynb)")
	fmt.Fprintln(w, "      --link-suffix <s>     Cross-document link suffix (default: file suffix)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Behavior:")
	fmt.Fprintln(w, "      --strict              Treat conversion warnings as errors (exit 5)")
	fmt.Fprintln(w, "  -q, --quiet               Suppress warnings and progress")
	fmt.Fprintln(w, "  -v, --verbose             Verbose progress output")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Print this help and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOC2NB_CONFIG, DOC2NB_OUTPUT_DIR, DOC2NB_KERNEL, DOC2NB_WORKERS")
}
