package main

import (
	"fmt"

	"github.com/aduverger/carnet"
)

// Run executes the read command. Reads go through the offline cache:
// a fresh cached copy is served as-is; otherwise the document is fetched
// and, on success, cached for later offline reading.
func (c *ReadCmd) Run(deps *Dependencies) error {
	entry, err := deps.Catalog.BySlug(deps.Ctx, c.Section, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carnet.ErrorMessage(err))
		return err
	}

	if content, ok := deps.Cache.Get(deps.Ctx, entry.Slug); ok {
		fmt.Fprintln(deps.Stdout, content)
		return nil
	}

	if !deps.Monitor.Refresh(deps.Ctx) {
		fmt.Fprintf(deps.Stderr, "offline and %q is not cached\n", entry.Slug)
		fmt.Fprintln(deps.Stdout, carnet.FallbackContent)
		return nil
	}

	content := deps.Catalog.Content(deps.Ctx, entry.Path)
	if content != carnet.FallbackContent {
		deps.Cache.Put(deps.Ctx, entry, content)
	}
	fmt.Fprintln(deps.Stdout, content)
	return nil
}
