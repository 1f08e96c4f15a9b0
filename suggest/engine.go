// Package suggest scores documents against each other by shared tags,
// category and section.
package suggest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aduverger/carnet"
)

// Similarity score contributions.
const (
	sharedTagScore    = 10
	sameCategoryScore = 15
	sameSectionScore  = 10
)

// Compile-time interface verification.
var _ carnet.SuggestionService = (*Engine)(nil)

// Engine implements carnet.SuggestionService over a built catalog.
type Engine struct {
	Catalog carnet.CatalogService
}

// NewEngine creates an Engine over the catalog.
func NewEngine(catalog carnet.CatalogService) *Engine {
	return &Engine{Catalog: catalog}
}

// Similar scores every other entry against the target: +10 per shared
// tag (exact, case-sensitive), +15 for an equal category, +10 for an
// equal top-level path segment. Zero scores are dropped; the rest sort
// by descending score (stable) and truncate to limit. An unknown slug
// yields an empty result.
func (e *Engine) Similar(ctx context.Context, sectionID, slug string, limit int) ([]carnet.Suggestion, error) {
	flat, err := e.Catalog.Flat(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	var target *carnet.Entry
	for _, entry := range flat {
		if entry.Slug == slug {
			target = entry
			break
		}
	}
	if target == nil {
		return []carnet.Suggestion{}, nil
	}

	var suggestions []carnet.Suggestion
	for _, entry := range flat {
		if entry.Slug == slug {
			continue
		}

		var score int
		var reasons []string

		if shared := sharedTags(target.Tags, entry.Tags); shared > 0 {
			score += shared * sharedTagScore
			reasons = append(reasons, fmt.Sprintf("%d tag(s) commun(s)", shared))
		}
		if entry.Category == target.Category {
			score += sameCategoryScore
			reasons = append(reasons, "Même catégorie")
		}
		if topSegment(entry.Path) == topSegment(target.Path) {
			score += sameSectionScore
			reasons = append(reasons, "Même section")
		}

		if score > 0 {
			suggestions = append(suggestions, carnet.Suggestion{
				Entry:   entry,
				Reasons: reasons,
				Score:   score,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// Popular returns the first limit root-level entries in catalog order.
// This is a stand-in for a usage-telemetry-driven ranking; no real
// popularity signal exists yet.
func (e *Engine) Popular(ctx context.Context, sectionID string, limit int) ([]*carnet.Entry, error) {
	flat, err := e.Catalog.Flat(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	var roots []*carnet.Entry
	for _, entry := range flat {
		if entry.Level == 0 {
			roots = append(roots, entry)
		}
		if limit > 0 && len(roots) == limit {
			break
		}
	}
	return roots, nil
}

// Trending returns the same entries as Popular today. It stays a separate
// entry point because its data source is expected to diverge once recent
// consultation data exists.
func (e *Engine) Trending(ctx context.Context, sectionID string, limit int) ([]*carnet.Entry, error) {
	return e.Popular(ctx, sectionID, limit)
}

// Recommended aliases Similar.
func (e *Engine) Recommended(ctx context.Context, sectionID, slug string, limit int) ([]carnet.Suggestion, error) {
	return e.Similar(ctx, sectionID, slug, limit)
}

// sharedTags counts exact tag matches between two tag lists.
func sharedTags(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, tag := range b {
		set[tag] = struct{}{}
	}
	var n int
	for _, tag := range a {
		if _, ok := set[tag]; ok {
			n++
		}
	}
	return n
}

// topSegment returns the path's first segment, the section prefix.
func topSegment(path string) string {
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}
