// Package catalog assembles the per-section document hierarchy.
// It coordinates identifier listing, concurrent content fetching, front
// matter parsing and two-pass tree construction, and owns the per-section
// tree cache.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aduverger/carnet"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight document fetches
// during a build.
const DefaultConcurrency = 10

// Compile-time interface verification.
var _ carnet.CatalogService = (*Service)(nil)

// Service implements carnet.CatalogService. It caches one built tree for
// the most recently requested section; switching sections invalidates the
// cache wholesale. The cached tree is only ever replaced atomically, so
// readers never observe a partially built hierarchy.
type Service struct {
	Sections carnet.SectionService
	Lister   carnet.DocumentLister
	Fetcher  carnet.Fetcher

	// Concurrency bounds parallel fetches. Defaults to DefaultConcurrency.
	Concurrency int

	mu      sync.Mutex
	section string
	tree    []*carnet.Entry
}

// NewService creates a Service over the given collaborators.
func NewService(sections carnet.SectionService, lister carnet.DocumentLister, fetcher carnet.Fetcher) *Service {
	return &Service{Sections: sections, Lister: lister, Fetcher: fetcher}
}

// Build assembles the section's tree, or returns the cached one.
//
// Failure of an individual document never blocks the rest: fetch and parse
// failures degrade to a fallback entry (title = slug, category "Autres",
// no parent, no tags). An unknown section or an empty identifier list
// yields an empty tree without error.
func (s *Service) Build(ctx context.Context, sectionID string) ([]*carnet.Entry, error) {
	s.mu.Lock()
	if s.tree != nil && s.section == sectionID {
		tree := s.tree
		s.mu.Unlock()
		return tree, nil
	}
	s.mu.Unlock()

	section, err := s.Sections.FindSectionByID(ctx, sectionID)
	if err != nil {
		if carnet.ErrorCode(err) == carnet.ENOTFOUND {
			return []*carnet.Entry{}, nil
		}
		return nil, err
	}

	identifiers, err := s.Lister.ListDocuments(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("list documents for section %q: %w", sectionID, err)
	}

	entries := make([]*carnet.Entry, len(identifiers))

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, identifier := range identifiers {
		g.Go(func() error {
			entries[i] = s.loadEntry(gctx, section, identifier)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; individual documents degrade

	// A canceled build would cache a fully degraded tree.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree := assemble(entries)

	s.mu.Lock()
	s.section = sectionID
	s.tree = tree
	s.mu.Unlock()

	return tree, nil
}

// Flat returns the section's tree as a pre-order sequence: each entry,
// then its children recursively, left to right.
func (s *Service) Flat(ctx context.Context, sectionID string) ([]*carnet.Entry, error) {
	tree, err := s.Build(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	var flat []*carnet.Entry
	walk(tree, func(e *carnet.Entry) {
		flat = append(flat, e)
	})
	return flat, nil
}

// BySlug retrieves a single entry by slug.
// Returns ENOTFOUND if no entry carries the slug.
func (s *Service) BySlug(ctx context.Context, sectionID, slug string) (*carnet.Entry, error) {
	flat, err := s.Flat(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	for _, e := range flat {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, carnet.Errorf(carnet.ENOTFOUND, "entry %q not found", slug)
}

// ByCategory buckets the full tree, all levels included, by category.
// Pre-order is preserved within each bucket.
func (s *Service) ByCategory(ctx context.Context, sectionID string) (map[string][]*carnet.Entry, error) {
	flat, err := s.Flat(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*carnet.Entry)
	for _, e := range flat {
		grouped[e.Category] = append(grouped[e.Category], e)
	}
	return grouped, nil
}

// Content returns a document's raw body by qualified path. Any fetch
// failure yields the fixed fallback body, never an error.
func (s *Service) Content(ctx context.Context, path string) string {
	content, err := s.Fetcher.Fetch(ctx, path)
	if err != nil {
		return carnet.FallbackContent
	}
	return content
}

// Invalidate drops the cached tree. The next Build rebuilds from scratch.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.section = ""
	s.tree = nil
	s.mu.Unlock()
}

// loadEntry fetches and parses one document into an entry. Edges and
// levels are wired later by assemble.
func (s *Service) loadEntry(ctx context.Context, section *carnet.Section, identifier string) *carnet.Entry {
	slug := carnet.SlugFromIdentifier(identifier)
	sortKey := carnet.ExtractSortKey(identifier)

	entry := &carnet.Entry{
		Slug:      slug,
		Title:     slug,
		Path:      section.Qualify(identifier),
		Category:  carnet.OtherCategory,
		SortOrder: carnet.SortKeyToNumber(sortKey),
		SortKey:   sortKey,
	}

	content, err := s.Fetcher.Fetch(ctx, entry.Path)
	if err != nil {
		return entry
	}

	md, _ := carnet.ParseFrontMatter(content)
	if md == nil {
		return entry
	}

	if md.Title != "" {
		entry.Title = md.Title
	}
	entry.Category = section.CategoryFor(sortKey)
	entry.Tags = md.Tags
	if md.Parent != "" {
		entry.Parent = md.Parent
		entry.ParentSlug = carnet.SlugFromIdentifier(md.Parent)
	}
	return entry
}

// assemble wires parent/child edges and levels over a flat entry list,
// then sorts every sibling list. Two passes: the lookup map is completed
// before any edge is created, so construction never chases half-built
// references.
func assemble(entries []*carnet.Entry) []*carnet.Entry {
	bySlug := make(map[string]*carnet.Entry, len(entries))
	for _, e := range entries {
		bySlug[e.Slug] = e
	}

	roots := make([]*carnet.Entry, 0, len(entries))
	for _, e := range entries {
		parent, ok := bySlug[e.ParentSlug]
		if e.ParentSlug != "" && ok {
			parent.Children = append(parent.Children, e)
			continue
		}
		// Dangling parent references demote the entry to root. This is
		// a documented contract, not incidental recovery.
		roots = append(roots, e)
	}

	setLevels(roots, 0)
	sortSiblings(roots)
	return roots
}

// setLevels assigns depths top-down once every edge exists. Levels cannot
// be set while wiring: a grandchild may be visited before its parent's own
// depth is known.
func setLevels(entries []*carnet.Entry, level int) {
	for _, e := range entries {
		e.Level = level
		setLevels(e.Children, level+1)
	}
}

// sortSiblings orders a sibling list by ascending SortOrder, recursively.
// The sort is stable: fetch order is the tiebreak.
func sortSiblings(entries []*carnet.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortOrder < entries[j].SortOrder
	})
	for _, e := range entries {
		if len(e.Children) > 0 {
			sortSiblings(e.Children)
		}
	}
}

// walk visits the tree in pre-order.
func walk(entries []*carnet.Entry, fn func(*carnet.Entry)) {
	for _, e := range entries {
		fn(e)
		walk(e.Children, fn)
	}
}
