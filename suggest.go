package carnet

import "context"

// Suggestion pairs an entry with its similarity score against a target
// and the human-readable reasons behind the score.
type Suggestion struct {
	Entry   *Entry   `json:"entry"`
	Reasons []string `json:"reasons"`
	Score   int      `json:"score"`
}

// SuggestionService scores documents against each other.
type SuggestionService interface {
	// Similar scores every other entry against the target by shared
	// tags, category and section, dropping zero scores. An unknown slug
	// yields an empty result, never an error.
	Similar(ctx context.Context, sectionID, slug string, limit int) ([]Suggestion, error)

	// Popular returns the first limit root-level entries in catalog
	// order. Placeholder for a usage-telemetry-driven ranking.
	Popular(ctx context.Context, sectionID string, limit int) ([]*Entry, error)

	// Trending returns the same entries as Popular today. Kept as a
	// separate entry point because its data source is expected to
	// diverge.
	Trending(ctx context.Context, sectionID string, limit int) ([]*Entry, error)

	// Recommended aliases Similar ("you might also like").
	Recommended(ctx context.Context, sectionID, slug string, limit int) ([]Suggestion, error)
}
