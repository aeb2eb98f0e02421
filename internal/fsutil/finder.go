// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Discovery is the outcome of resolving a set of paths to files.
type Discovery struct {
	// Files ending with the extension, each once, in first-seen order.
	Files []string
	// Missing holds paths that do not exist.
	Missing []string
	// Ignored holds explicitly named files without the extension.
	Ignored []string
}

// FindFilesByExtension resolves each of paths to the files ending with
// extension. Directories are walked recursively in lexical order and files
// without the extension are skipped silently there. A file path given
// directly is taken if it carries the extension and reported in Ignored
// otherwise.
//
// Paths that do not exist are reported in Missing rather than as an error.
func FindFilesByExtension(paths []string, extension string) (*Discovery, error) {
	if extension == "" {
		return nil, errors.New("extension must not be empty")
	}

	d := &Discovery{}
	seen := make(map[string]struct{})
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		d.Files = append(d.Files, p)
	}

	for _, root := range paths {
		info, statErr := os.Stat(root)
		if statErr != nil {
			if errors.Is(statErr, fs.ErrNotExist) {
				d.Missing = append(d.Missing, root)
				continue
			}
			return nil, statErr
		}

		if !info.IsDir() {
			if strings.HasSuffix(info.Name(), extension) {
				add(root)
			} else {
				d.Ignored = append(d.Ignored, root)
			}
			continue
		}

		walkErr := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), extension) {
				add(p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	return d, nil
}
