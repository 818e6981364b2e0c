package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	doc2nb "github.com/alnah/go-doc2nb"
	"github.com/alnah/go-doc2nb/internal/config"
	"github.com/alnah/go-doc2nb/internal/fileutil"
)

// Sentinel errors for the conversion run.
var (
	ErrReadDoctree   = errors.New("failed to read doctree file")
	ErrDecodeDoctree = errors.New("failed to decode doctree file")
	ErrConversion    = errors.New("conversion failed")
	ErrWriteNotebook = errors.New("failed to write notebook")
	ErrWarnings      = errors.New("conversion produced warnings (strict mode)")
)

// runSettings is the effective configuration after merging flags over
// environment over config file over defaults.
type runSettings struct {
	inputs     []string
	outputDir  string
	kernel     string
	fileSuffix string
	linkSuffix string
	metadata   map[string]any
	workers    int
	strict     bool
	quiet      bool
	verbose    bool
}

// run executes one batch conversion.
func run(ctx context.Context, stderr io.Writer, flags *cliFlags, inputs []string) error {
	env := loadEnvConfig(stderr)

	cfg, err := loadConfigLayer(flags, env)
	if err != nil {
		return err
	}

	settings, err := mergeSettings(cfg, env, flags, inputs)
	if err != nil {
		return err
	}

	opts := []doc2nb.Option{
		doc2nb.WithFileSuffix(settings.fileSuffix),
		doc2nb.WithKernel(settings.kernel),
	}
	if settings.linkSuffix != "" {
		opts = append(opts, doc2nb.WithLinkSuffix(settings.linkSuffix))
	}
	if len(settings.metadata) > 0 {
		opts = append(opts, doc2nb.WithMetadata(settings.metadata))
	}
	svc := doc2nb.New(opts...)

	var files []fileToConvert
	for _, input := range settings.inputs {
		discovered, err := discoverFiles(input)
		if err != nil {
			return err
		}
		files = append(files, discovered...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found under %v", fileutil.DoctreeSuffix, settings.inputs)
	}
	if settings.verbose {
		fmt.Fprintf(stderr, "Converting %d documents with %d workers\n", len(files), settings.workers)
	}

	var mu sync.Mutex
	warned := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			warnings, err := convertFile(svc, file, settings.outputDir)
			if err != nil {
				return err
			}

			mu.Lock()
			warned += len(warnings)
			if !settings.quiet {
				for _, w := range warnings {
					fmt.Fprintln(stderr, "warning:", w.String())
				}
				if settings.verbose {
					fmt.Fprintf(stderr, "converted %s\n", file.DocName)
				}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if settings.strict && warned > 0 {
		return fmt.Errorf("%w: %d warnings", ErrWarnings, warned)
	}
	return nil
}

// convertFile converts one doctree file and writes the notebook.
func convertFile(svc *doc2nb.Service, file fileToConvert, outputDir string) ([]doc2nb.Warning, error) {
	data, err := os.ReadFile(file.InputPath) // #nosec G304 -- path comes from user-directed discovery
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadDoctree, file.InputPath, err)
	}

	var tree doc2nb.Node
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeDoctree, file.InputPath, err)
	}

	result, err := svc.Convert(doc2nb.Input{Tree: &tree, DocName: file.DocName})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConversion, file.DocName, err)
	}

	out, err := result.Notebook.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConversion, file.DocName, err)
	}

	outPath := resolveOutputPath(svc, file, outputDir)
	if err := fileutil.WriteFileAtomic(outPath, out, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteNotebook, err)
	}
	return result.Warnings, nil
}

// resolveOutputPath places the notebook under outputDir (mirroring the
// docname hierarchy), or next to the input when no output dir is set.
func resolveOutputPath(svc *doc2nb.Service, file fileToConvert, outputDir string) string {
	name := filepath.FromSlash(svc.OutputName(file.DocName))
	if outputDir == "" {
		return filepath.Join(filepath.Dir(file.InputPath), filepath.Base(name))
	}
	return filepath.Join(outputDir, name)
}

// loadConfigLayer loads the config file named by flags or environment.
// Without either, defaults apply and no file is required.
func loadConfigLayer(flags *cliFlags, env *envConfig) (*config.Config, error) {
	switch {
	case flags.configPath != "":
		return config.LoadConfig(flags.configPath)
	case env.ConfigPath != "":
		return config.LoadConfig(env.ConfigPath)
	default:
		return config.DefaultConfig(), nil
	}
}

// mergeSettings layers flags over environment over config file.
func mergeSettings(cfg *config.Config, env *envConfig, flags *cliFlags, inputs []string) (*runSettings, error) {
	s := &runSettings{
		inputs:     inputs,
		outputDir:  firstNonEmpty(flags.output, env.OutputDir, cfg.Output.DefaultDir),
		kernel:     firstNonEmpty(flags.kernel, env.Kernel, cfg.Notebook.Kernel, "python"),
		fileSuffix: firstNonEmpty(flags.fileSuffix, cfg.Output.FileSuffix, ".ipynb"),
		linkSuffix: firstNonEmpty(flags.linkSuffix, cfg.Notebook.LinkSuffix),
		metadata:   cfg.Notebook.Metadata,
		strict:     flags.strict || cfg.Convert.Strict,
		quiet:      flags.quiet,
		verbose:    flags.verbose,
	}

	if len(s.inputs) == 0 {
		if cfg.Input.DefaultDir == "" {
			return nil, ErrNoInput
		}
		s.inputs = []string{cfg.Input.DefaultDir}
	}

	s.workers = cfg.Convert.Workers
	if env.Workers > 0 {
		s.workers = env.Workers
	}
	if flags.set["workers"] {
		s.workers = flags.workers
	}
	if s.workers < 1 {
		s.workers = runtime.NumCPU()
	}
	if s.workers > config.MaxWorkers {
		s.workers = config.MaxWorkers
	}

	return s, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
