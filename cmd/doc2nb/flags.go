package main

import (
	"bytes"
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every flag doc2nb accepts. Precedence when building the
// effective configuration: flags > environment > config file > defaults.
type cliFlags struct {
	output      string
	configPath  string
	kernel      string
	fileSuffix  string
	linkSuffix  string
	workers     int
	strict      bool
	quiet       bool
	verbose     bool
	showVersion bool
	showHelp    bool

	// set tracks explicitly passed flags so zero values don't clobber
	// config-file settings during merge.
	set map[string]bool
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags plus positional inputs.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet("doc2nb", flag.ContinueOnError)
	var buf bytes.Buffer
	fs.SetOutput(&buf)

	fs.StringVarP(&flags.output, "output", "o", "", "output directory")
	fs.StringVarP(&flags.configPath, "config", "c", "", "config file name or path")
	fs.StringVar(&flags.kernel, "kernel", "", "kernel language tag")
	fs.StringVar(&flags.fileSuffix, "file-suffix", "", "notebook filename suffix")
	fs.StringVar(&flags.linkSuffix, "link-suffix", "", "cross-document link suffix")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&flags.strict, "strict", false, "treat conversion warnings as errors")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress warnings and progress")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&flags.showVersion, "version", false, "print version and exit")
	fs.BoolVarP(&flags.showHelp, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	if flags.quiet && flags.verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	flags.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		flags.set[f.Name] = true
	})

	return flags, fs.Args(), nil
}
