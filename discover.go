package cambium

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Discover walks the directory tree under root and returns every file
// whose base name matches the glob pattern. Traversal order is
// filesystem-dependent. A missing or unreadable root is an error.
func Discover(root, pattern string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		if matched {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}
