package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects the log files of a directory.
const DefaultPattern = "*.log"

// ResolveInputs returns the files to process: file alone when dir is empty,
// otherwise every regular file in dir matching pattern, in lexical order.
// Patterns such as "**/*.log" descend into subdirectories.
func ResolveInputs(file, dir, pattern string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		if strings.TrimSpace(file) == "" {
			return nil, fmt.Errorf("no input file given")
		}
		return []string{file}, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open log directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log directory %s is not a directory", dir)
	}

	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("match %q in %s: %w", pattern, dir, err)
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(match)))
	}
	return paths, nil
}
