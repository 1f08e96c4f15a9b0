package main

import (
	"fmt"
	"strings"

	"github.com/aduverger/carnet"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filter := carnet.SearchFilter{
		Query:             c.Query,
		Tags:              c.Tag,
		Category:          c.Category,
		Section:           c.SectionPath,
		Difficulty:        carnet.Difficulty(c.Difficulty),
		MinReadingMinutes: c.MinMinutes,
		MaxReadingMinutes: c.MaxMinutes,
	}

	results, err := deps.Search.Search(deps.Ctx, c.Section, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carnet.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	for _, r := range results {
		fields := ""
		if len(r.MatchedFields) > 0 {
			fields = "  [" + strings.Join(r.MatchedFields, ", ") + "]"
		}
		fmt.Fprintf(deps.Stdout, "%3d  %-40s %s%s\n", r.Relevance, r.Entry.Slug, r.Entry.Title, fields)
	}

	return nil
}
