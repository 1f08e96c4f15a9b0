// Package fs provides filesystem-based implementations of the carnet
// document collaborators, for working against a local content checkout.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aduverger/carnet"
)

// Ensure interface compliance at compile time.
var (
	_ carnet.Fetcher        = (*Fetcher)(nil)
	_ carnet.DocumentLister = (*Lister)(nil)
)

// Fetcher reads raw documents from a content directory.
type Fetcher struct {
	baseDir string
}

// NewFetcher creates a Fetcher rooted at baseDir.
func NewFetcher(baseDir string) *Fetcher {
	return &Fetcher{baseDir: baseDir}
}

// Fetch reads the document at path relative to the content root.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	b, err := os.ReadFile(filepath.Join(f.baseDir, filepath.FromSlash(path)))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Lister lists a section's documents straight from its directory: every
// .md file, sorted by name. This matches what the index-generation
// tooling would emit for the same directory, so local and hosted setups
// see identical identifier lists.
type Lister struct {
	baseDir string
}

// NewLister creates a Lister rooted at baseDir.
func NewLister(baseDir string) *Lister {
	return &Lister{baseDir: baseDir}
}

// ListDocuments returns the sorted .md filenames under the section's
// directory. A missing directory yields an empty list, not an error: an
// unavailable section must not affect the others.
func (l *Lister) ListDocuments(ctx context.Context, section *carnet.Section) ([]string, error) {
	if section == nil {
		return nil, nil
	}

	dir := filepath.Join(l.baseDir, filepath.FromSlash(section.Path))
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var identifiers []string
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			continue
		}
		identifiers = append(identifiers, d.Name())
	}
	sort.Strings(identifiers)
	return identifiers, nil
}
