// Package source discovers and reads journal documents from disk.
//
// A source root is either a single markdown file or a directory scanned
// recursively. Discovery order is deterministic path order so repeated
// runs over the same export produce byte-identical output.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the file extension journal documents are matched by.
const Extension = ".md"

// ErrNotFound is returned when the source root does not exist.
var ErrNotFound = errors.New("source not found")

// ErrNoDocuments is returned when the root exists but holds no documents.
var ErrNoDocuments = errors.New("no journal documents found")

// Discover returns the document paths under root in sorted path order.
// Root may be a single document or a directory to walk recursively.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	if !info.IsDir() {
		if !isDocument(root) {
			return nil, fmt.Errorf("%w under %s", ErrNoDocuments, root)
		}
		return []string{root}, nil
	}

	var paths []string
	// WalkDir visits entries in lexical order, which gives the
	// deterministic discovery order downstream merging relies on.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && isDocument(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoDocuments, root)
	}
	return paths, nil
}

// isDocument reports whether the path carries the journal extension,
// case-insensitively (Notion exports occasionally produce .MD).
func isDocument(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// ReadLines reads a document and splits it into lines without
// terminators. CRLF endings are reduced to the bare line; a trailing
// newline does not produce a phantom empty last line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
