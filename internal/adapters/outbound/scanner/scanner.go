package scanner

import (
	"fmt"
	"os"
	"strings"

	"github.com/wflint/wflint/internal/domain"
)

// DirScanner implements domain.WorkflowScanner over a flat directory.
type DirScanner struct{}

func New() *DirScanner {
	return &DirScanner{}
}

// Scan lists the entries of dir whose name ends with extension, in
// lexicographic order. The suffix check is a literal comparison, not a
// glob: "foo.yaml" does not match extension ".yml". A missing directory
// is domain.ErrDirectoryNotFound.
func (s *DirScanner) Scan(dir, extension string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by name already; the filter
	// preserves that order.
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), extension) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}
