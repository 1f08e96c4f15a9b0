// Package search ranks catalog entries against multi-criteria filters
// with an additive relevance score.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/aduverger/carnet"
)

// Relevance contributions per matched field.
const (
	titleScore      = 20
	slugScore       = 10
	tagsScore       = 15
	categoryScore   = 10
	difficultyScore = 5
)

// Reading-time estimation constants. The word count is a proxy derived
// from the title, not the content; the estimate is deliberately crude.
const (
	wordsPerTitleWord = 50
	wordsPerMinute    = 200
)

// Compile-time interface verification.
var _ carnet.SearchService = (*Engine)(nil)

// Engine implements carnet.SearchService over a built catalog. It is
// synchronous, pure and re-entrant: all state lives in the catalog.
type Engine struct {
	Catalog carnet.CatalogService
}

// NewEngine creates an Engine over the catalog.
func NewEngine(catalog carnet.CatalogService) *Engine {
	return &Engine{Catalog: catalog}
}

// Search filters and scores the flattened catalog. Results are ordered by
// descending relevance; ties keep their relative pre-order position. An
// empty filter returns every entry with relevance 0.
func (e *Engine) Search(ctx context.Context, sectionID string, filter carnet.SearchFilter) ([]carnet.SearchResult, error) {
	flat, err := e.Catalog.Flat(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	unfiltered := filter.Query == "" && len(filter.Tags) == 0 &&
		filter.Category == "" && filter.Difficulty == ""

	results := make([]carnet.SearchResult, 0, len(flat))
	for _, entry := range flat {
		result, ok := score(entry, filter)
		if !ok {
			continue
		}
		if result.Relevance > 0 || unfiltered {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	return results, nil
}

// score evaluates one entry against the filter. ok is false when a hard
// filter excludes the entry.
func score(entry *carnet.Entry, filter carnet.SearchFilter) (carnet.SearchResult, bool) {
	var relevance int
	var matched []string

	// Section is a hard filter with no relevance contribution.
	if filter.Section != "" && !strings.Contains(entry.Path, filter.Section) {
		return carnet.SearchResult{}, false
	}

	if filter.Query != "" {
		query := strings.ToLower(filter.Query)
		if strings.Contains(strings.ToLower(entry.Title), query) {
			relevance += titleScore
			matched = append(matched, "title")
		}
		if strings.Contains(strings.ToLower(entry.Slug), query) {
			relevance += slugScore
			matched = append(matched, "slug")
		}
	}

	if len(filter.Tags) > 0 {
		if !anyTagMatches(filter.Tags, entry.Tags) {
			return carnet.SearchResult{}, false
		}
		relevance += tagsScore
		matched = append(matched, "tags")
	}

	if filter.Category != "" {
		if entry.Category != filter.Category {
			return carnet.SearchResult{}, false
		}
		relevance += categoryScore
		matched = append(matched, "category")
	}

	if filter.Difficulty != "" {
		if !difficultyMatches(filter.Difficulty, entry.Category) {
			return carnet.SearchResult{}, false
		}
		relevance += difficultyScore
		matched = append(matched, "difficulty")
	}

	if filter.MinReadingMinutes > 0 || filter.MaxReadingMinutes > 0 {
		minutes := ReadingMinutes(entry)
		if filter.MinReadingMinutes > 0 && minutes < filter.MinReadingMinutes {
			return carnet.SearchResult{}, false
		}
		if filter.MaxReadingMinutes > 0 && minutes > filter.MaxReadingMinutes {
			return carnet.SearchResult{}, false
		}
		matched = append(matched, "readingTime")
	}

	return carnet.SearchResult{Entry: entry, Relevance: relevance, MatchedFields: matched}, true
}

// anyTagMatches reports whether at least one requested tag is a
// case-insensitive substring of at least one entry tag.
func anyTagMatches(requested, entryTags []string) bool {
	for _, want := range requested {
		want = strings.ToLower(want)
		for _, tag := range entryTags {
			if strings.Contains(strings.ToLower(tag), want) {
				return true
			}
		}
	}
	return false
}

// difficultyMatches applies the keyword heuristic binding difficulty
// levels to category text.
func difficultyMatches(d carnet.Difficulty, category string) bool {
	category = strings.ToLower(category)
	switch d {
	case carnet.DifficultyBeginner:
		return strings.Contains(category, "bases")
	case carnet.DifficultyIntermediate:
		return strings.Contains(category, "intermédiaire")
	case carnet.DifficultyAdvanced:
		return strings.Contains(category, "avancé") || strings.Contains(category, "projets")
	}
	return false
}

// ReadingMinutes estimates reading time from the title word count,
// rounded up to a whole minute.
func ReadingMinutes(entry *carnet.Entry) int {
	words := len(strings.Fields(entry.Title)) * wordsPerTitleWord
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Tags returns the catalog's distinct tags, alphabetically sorted.
func (e *Engine) Tags(ctx context.Context, sectionID string) ([]string, error) {
	flat, err := e.Catalog.Flat(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return collect(flat, func(entry *carnet.Entry) []string {
		return entry.Tags
	}), nil
}

// Categories returns the catalog's distinct categories, alphabetically
// sorted.
func (e *Engine) Categories(ctx context.Context, sectionID string) ([]string, error) {
	flat, err := e.Catalog.Flat(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return collect(flat, func(entry *carnet.Entry) []string {
		return []string{entry.Category}
	}), nil
}

// collect gathers distinct values across the catalog, sorted.
func collect(entries []*carnet.Entry, fn func(*carnet.Entry) []string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, entry := range entries {
		for _, v := range fn(entry) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
