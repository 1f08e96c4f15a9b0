package main

import (
	"fmt"

	"github.com/aduverger/carnet"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	sections, err := deps.Sections.Sections(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carnet.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No sections configured.")
		return nil
	}

	for _, s := range sections {
		fmt.Fprintf(deps.Stdout, "%-16s %s %s\n", s.ID, s.Icon, s.Name)
		if s.Description != "" {
			fmt.Fprintf(deps.Stdout, "                 %s\n", s.Description)
		}
	}

	return nil
}
