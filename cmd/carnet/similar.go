package main

import (
	"fmt"
	"strings"

	"github.com/aduverger/carnet"
)

// Run executes the similar command.
func (c *SimilarCmd) Run(deps *Dependencies) error {
	suggestions, err := deps.Suggest.Similar(deps.Ctx, c.Section, c.Slug, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carnet.ErrorMessage(err))
		return err
	}

	if len(suggestions) == 0 {
		fmt.Fprintf(deps.Stdout, "No similar documents for %q.\n", c.Slug)
		return nil
	}

	for _, s := range suggestions {
		fmt.Fprintf(deps.Stdout, "%3d  %-40s %s  (%s)\n",
			s.Score, s.Entry.Slug, s.Entry.Title, strings.Join(s.Reasons, ", "))
	}

	return nil
}
