// Package fileutil provides file and path utility functions for the CLI.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DoctreeSuffix is the extension of JSON-encoded document tree files.
const DoctreeSuffix = ".doctree.json"

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsDoctreeFile reports whether path carries the doctree suffix.
func IsDoctreeFile(path string) bool {
	return strings.HasSuffix(path, DoctreeSuffix)
}

// DocNameFromPath derives the logical docname for a doctree file relative
// to a base directory: "src/guide/intro.doctree.json" under "src" becomes
// "guide/intro". Docnames always use forward slashes.
func DocNameFromPath(path, baseDir string) (string, error) {
	rel := path
	if baseDir != "" {
		r, err := filepath.Rel(baseDir, path)
		if err != nil {
			return "", fmt.Errorf("deriving docname for %s: %w", path, err)
		}
		rel = r
	}
	name := strings.TrimSuffix(filepath.ToSlash(rel), DoctreeSuffix)
	if name == "" || name == rel {
		return "", fmt.Errorf("not a doctree file: %s", path)
	}
	return name, nil
}

// WriteFileAtomic writes data to path via a temporary file in the same
// directory, so readers never observe a half-written notebook.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
