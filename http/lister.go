package http

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aduverger/carnet"
)

// Ensure Lister implements carnet.DocumentLister at compile time.
var _ carnet.DocumentLister = (*Lister)(nil)

// Lister provides a section's ordered identifier list. Sections with an
// index file load it as a side-channel JSON array (generated by an
// offline tooling step that lists the available document files); sections
// without one return their static configuration list.
type Lister struct {
	fetcher *Fetcher

	// index responses are cached per section for the process lifetime;
	// the tooling regenerates the file out of band.
	cache map[string][]string
}

// NewLister creates a Lister sharing the fetcher's base URL and limits.
func NewLister(fetcher *Fetcher) *Lister {
	return &Lister{
		fetcher: fetcher,
		cache:   make(map[string][]string),
	}
}

// ListDocuments returns the section's identifiers in order. An empty list
// is a valid result, not an error.
func (l *Lister) ListDocuments(ctx context.Context, section *carnet.Section) ([]string, error) {
	if section == nil {
		return nil, nil
	}
	if section.IndexFile == "" {
		return section.Files, nil
	}

	if cached, ok := l.cache[section.ID]; ok {
		return cached, nil
	}

	body, err := l.fetcher.Fetch(ctx, section.Qualify(section.IndexFile))
	if err != nil {
		return nil, fmt.Errorf("fetch index for section %q: %w", section.ID, err)
	}

	var identifiers []string
	if err := json.Unmarshal([]byte(body), &identifiers); err != nil {
		return nil, fmt.Errorf("parse index for section %q: %w", section.ID, err)
	}

	l.cache[section.ID] = identifiers
	return identifiers, nil
}
