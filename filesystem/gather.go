package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GatherFiles lists the regular files directly inside root whose extension
// matches one of extensions, case-insensitively. Paths are absolute and
// sorted by name.
func GatherFiles(root string, extensions ...string) ([]string, error) {
	hasExtension := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range extensions {
			if strings.ToLower(e) == ext {
				return true
			}
		}
		return false
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string

	for _, entry := range entries {
		if !entry.Type().IsRegular() || !hasExtension(entry.Name()) {
			continue
		}

		paths = append(paths, filepath.Join(root, entry.Name()))
	}

	sort.Strings(paths)

	return paths, nil
}
