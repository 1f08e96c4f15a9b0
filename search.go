package carnet

import "context"

// Difficulty is a closed set of levels heuristically matched against
// category labels.
type Difficulty string

// Difficulty levels.
const (
	DifficultyBeginner     Difficulty = "débutant"
	DifficultyIntermediate Difficulty = "intermédiaire"
	DifficultyAdvanced     Difficulty = "avancé"
)

// SearchFilter selects and scores catalog entries. Every field is
// optional; an empty filter returns the whole catalog with relevance 0.
type SearchFilter struct {
	// Query is matched case-insensitively against titles and slugs.
	Query string `json:"query,omitempty"`

	// Tags are OR-matched: an entry qualifies when at least one
	// requested tag is a case-insensitive substring of one of its tags.
	Tags []string `json:"tags,omitempty"`

	// Category must match an entry's category exactly.
	Category string `json:"category,omitempty"`

	// Section is substring-matched against the entry's qualified path.
	// It is a hard filter and contributes no relevance.
	Section string `json:"section,omitempty"`

	// Difficulty is matched against category text by keyword heuristic.
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// Reading-time bounds in minutes. The estimate is a crude proxy
	// derived from the title word count, not real content length.
	MinReadingMinutes int `json:"minReadingMinutes,omitempty"`
	MaxReadingMinutes int `json:"maxReadingMinutes,omitempty"`

	// DateFrom/DateTo are reserved for a future content-date signal and
	// are ignored by the scoring logic.
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
}

// SearchResult pairs an entry with its additive relevance score and the
// fields that matched. Built fresh per query, never persisted.
type SearchResult struct {
	Entry         *Entry   `json:"entry"`
	Relevance     int      `json:"relevance"`
	MatchedFields []string `json:"matchedFields"`
}

// SearchService ranks catalog entries against multi-criteria filters.
type SearchService interface {
	// Search returns matching entries in descending relevance order.
	// Ties keep their relative pre-order position.
	Search(ctx context.Context, sectionID string, filter SearchFilter) ([]SearchResult, error)

	// Tags returns the catalog's distinct tags, alphabetically sorted.
	Tags(ctx context.Context, sectionID string) ([]string, error)

	// Categories returns the catalog's distinct categories,
	// alphabetically sorted.
	Categories(ctx context.Context, sectionID string) ([]string, error)
}
