package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aduverger/carnet"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	if c.Categories {
		return c.runCategories(deps)
	}

	tree, err := deps.Catalog.Build(deps.Ctx, c.Section)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carnet.ErrorMessage(err))
		return err
	}

	if len(tree) == 0 {
		fmt.Fprintf(deps.Stdout, "Section %q has no documents.\n", c.Section)
		return nil
	}

	printTree(deps, tree)
	return nil
}

func (c *TreeCmd) runCategories(deps *Dependencies) error {
	grouped, err := deps.Catalog.ByCategory(deps.Ctx, c.Section)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carnet.ErrorMessage(err))
		return err
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(deps.Stdout, "%s\n", category)
		for _, e := range grouped[category] {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", e.Slug, e.Title)
		}
	}
	return nil
}

func printTree(deps *Dependencies, entries []*carnet.Entry) {
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Level)
		fmt.Fprintf(deps.Stdout, "%s%s  %s\n", indent, e.Slug, e.Title)
		printTree(deps, e.Children)
	}
}
