package main

import (
	"context"
	"io"

	"github.com/aduverger/carnet"
	"github.com/aduverger/carnet/offline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Sections carnet.SectionService
	Catalog  carnet.CatalogService
	Search   carnet.SearchService
	Suggest  carnet.SuggestionService
	Cache    *offline.Cache
	Monitor  *offline.Monitor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sections SectionsCmd `cmd:"" help:"List available sections"`
	Tree     TreeCmd     `cmd:"" help:"Print a section's document hierarchy"`
	Search   SearchCmd   `cmd:"" help:"Search a section's catalog"`
	Similar  SimilarCmd  `cmd:"" help:"Show documents similar to one document"`
	Read     ReadCmd     `cmd:"" help:"Read a document, offline cache first"`
	Cache    CacheCmd    `cmd:"" help:"Inspect and maintain the offline cache"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct {
	Section    string `arg:"" help:"Section id (e.g. python)"`
	Categories bool   `short:"c" help:"Group entries by category instead of hierarchy"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Section     string   `arg:"" help:"Section id"`
	Query       string   `arg:"" optional:"" help:"Free-text query against titles and slugs"`
	Tag         []string `short:"t" help:"Filter by tag (repeatable, OR-matched)"`
	Category    string   `help:"Filter by exact category"`
	Difficulty  string   `help:"Filter by difficulty (débutant, intermédiaire, avancé)"`
	MinMinutes  int      `help:"Minimum estimated reading minutes"`
	MaxMinutes  int      `help:"Maximum estimated reading minutes"`
	SectionPath string   `help:"Filter by path substring"`
}

// SimilarCmd is the "similar" subcommand.
type SimilarCmd struct {
	Section string `arg:"" help:"Section id"`
	Slug    string `arg:"" help:"Document slug"`
	Limit   int    `short:"n" default:"5" help:"Maximum suggestions"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Section string `arg:"" help:"Section id"`
	Slug    string `arg:"" help:"Document slug"`
}

// CacheCmd groups the offline cache subcommands.
type CacheCmd struct {
	Status CacheStatusCmd `cmd:"" help:"Show cache size, entry count and connectivity"`
	Purge  CachePurgeCmd  `cmd:"" help:"Delete expired cache entries"`
	Clear  CacheClearCmd  `cmd:"" help:"Drop the entire cache"`
}

// CacheStatusCmd is the "cache status" subcommand.
type CacheStatusCmd struct{}

// CachePurgeCmd is the "cache purge" subcommand.
type CachePurgeCmd struct{}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct {
	Force bool `help:"Confirm deletion"`
}
