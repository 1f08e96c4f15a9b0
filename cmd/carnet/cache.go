package main

import (
	"fmt"

	"github.com/aduverger/carnet"
)

// Run executes the "cache status" command.
func (c *CacheStatusCmd) Run(deps *Dependencies) error {
	entries := deps.Cache.Entries(deps.Ctx)
	online := deps.Monitor.Refresh(deps.Ctx)

	status := "offline"
	if online {
		status = "online"
	}

	fmt.Fprintf(deps.Stdout, "Status:   %s\n", status)
	fmt.Fprintf(deps.Stdout, "Entries:  %d\n", len(entries))
	fmt.Fprintf(deps.Stdout, "Size:     %.2f MB\n", deps.Cache.SizeMB(deps.Ctx))

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "  %s  %s\n", e.Slug, e.Title)
	}

	return nil
}

// Run executes the "cache purge" command.
func (c *CachePurgeCmd) Run(deps *Dependencies) error {
	purged := deps.Cache.PurgeExpired(deps.Ctx)
	fmt.Fprintf(deps.Stdout, "Purged %d expired entr%s\n", purged, plural(purged, "y", "ies"))
	return nil
}

// Run executes the "cache clear" command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return carnet.Errorf(carnet.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Cache.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carnet.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cache cleared")
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
