package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-doc2nb/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension = errors.New("file must have " + fileutil.DoctreeSuffix + " extension")
	ErrNoInput          = errors.New("no input file or directory given (flag, argument, or input.defaultDir)")
)

// fileToConvert represents a single document tree file to process.
type fileToConvert struct {
	InputPath string
	DocName   string
}

// discoverFiles finds all doctree files under inputPath (a file or a
// directory). Docnames derive from the path relative to the directory, so
// the output tree mirrors the input tree.
func discoverFiles(inputPath string) ([]fileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsDoctreeFile(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		docname, err := fileutil.DocNameFromPath(inputPath, filepath.Dir(inputPath))
		if err != nil {
			return nil, err
		}
		return []fileToConvert{{InputPath: inputPath, DocName: docname}}, nil
	}

	var files []fileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsDoctreeFile(path) {
			return nil
		}
		docname, err := fileutil.DocNameFromPath(path, inputPath)
		if err != nil {
			return err
		}
		files = append(files, fileToConvert{InputPath: path, DocName: docname})
		return nil
	})
	return files, err
}
