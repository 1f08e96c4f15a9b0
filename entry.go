package carnet

import "context"

// FallbackContent is the body served in place of a document that could not
// be fetched. Readers see a short notice instead of a transport error.
const FallbackContent = "# Erreur\n\nLe contenu demandé est introuvable."

// Entry represents one document's position and metadata within a section's
// hierarchy. Entries are immutable after catalog construction; Children is
// owned exclusively by the parent entry and is never shared.
type Entry struct {
	// Slug is the document identifier stripped of extension and
	// directory prefix. It is the stable lookup key within a section.
	Slug string `json:"slug"`

	// Title comes from front matter, falling back to Slug.
	Title string `json:"title"`

	// Path is the fully qualified identifier including the section
	// prefix (e.g., "Python/21-01-openai-api.md").
	Path string `json:"path"`

	// Category is derived from SortKey via the section's range table.
	Category string `json:"category"`

	// SortOrder is the folded numeric value of SortKey. It defines
	// sibling ordering.
	SortOrder int `json:"sortOrder"`

	// SortKey is the raw numeric prefix ("21-01"), or "999" when the
	// identifier carries none.
	SortKey string `json:"sortKey"`

	// Parent is the raw parent identifier from front matter, empty when
	// the entry is a root.
	Parent string `json:"parent,omitempty"`

	// ParentSlug is Parent stripped of extension and directories.
	ParentSlug string `json:"parentSlug,omitempty"`

	// Children holds the entry's direct descendants in sort order.
	Children []*Entry `json:"children,omitempty"`

	// Tags is the ordered tag list from front matter.
	Tags []string `json:"tags,omitempty"`

	// Level is 0 for roots, parent.Level+1 otherwise.
	Level int `json:"level"`
}

// Summary returns a copy of the entry without its subtree, suitable for
// persisting alongside cached content.
func (e *Entry) Summary() *Entry {
	s := *e
	s.Children = nil
	return &s
}

// CatalogService builds and serves the per-section entry hierarchy.
type CatalogService interface {
	// Build assembles (or returns the cached) tree for a section.
	// An empty identifier list yields an empty tree without error.
	Build(ctx context.Context, sectionID string) ([]*Entry, error)

	// Flat returns the tree in pre-order: each entry, then its children
	// recursively, left to right. This is the canonical ordering
	// consumed by search and suggestions.
	Flat(ctx context.Context, sectionID string) ([]*Entry, error)

	// BySlug retrieves a single entry by slug.
	// Returns ENOTFOUND if no entry carries the slug.
	BySlug(ctx context.Context, sectionID, slug string) (*Entry, error)

	// ByCategory buckets the full tree (all levels) by category,
	// preserving pre-order within each bucket.
	ByCategory(ctx context.Context, sectionID string) (map[string][]*Entry, error)

	// Content returns a document's raw body. Any fetch failure yields
	// FallbackContent rather than an error.
	Content(ctx context.Context, path string) string

	// Invalidate drops any cached tree.
	Invalidate()
}

// DocumentLister provides the ordered identifier list for a section.
// Identifiers are bare filenames or "Section/filename" compound paths.
type DocumentLister interface {
	ListDocuments(ctx context.Context, section *Section) ([]string, error)
}

// Fetcher retrieves the raw text of a document by qualified path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}
