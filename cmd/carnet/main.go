package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aduverger/carnet"
	"github.com/aduverger/carnet/catalog"
	"github.com/aduverger/carnet/fs"
	carnethttp "github.com/aduverger/carnet/http"
	"github.com/aduverger/carnet/offline"
	"github.com/aduverger/carnet/search"
	carnetslog "github.com/aduverger/carnet/slog"
	"github.com/aduverger/carnet/sqlite"
	"github.com/aduverger/carnet/suggest"
	"github.com/aduverger/carnet/yaml"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for the offline cache. Set before calling Run().
	DBPath string

	// BaseURL of the hosted content tree. When empty, ContentDir is
	// used instead.
	BaseURL string

	// ContentDir is a local content checkout.
	ContentDir string

	// SectionsPath optionally overrides the embedded section registry.
	SectionsPath string

	// SQLite database backing the offline cache.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CatalogService carnet.CatalogService
	CacheService   *offline.Cache
}

// NewMain returns a new instance of Main with defaults from the
// environment.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		BaseURL:      os.Getenv("CARNET_BASE_URL"),
		ContentDir:   defaultContentDir(),
		SectionsPath: os.Getenv("CARNET_SECTIONS"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("carnet"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'carnet --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr)

	// Section registry
	var sections carnet.SectionService
	if m.SectionsPath != "" {
		sections, err = yaml.NewRegistryFromFile(m.SectionsPath)
	} else {
		sections, err = yaml.NewRegistry()
	}
	if err != nil {
		return fmt.Errorf("failed to load section registry: %w", err)
	}
	deps.Sections = sections

	// Document source: hosted content when a base URL is configured,
	// a local checkout otherwise.
	var (
		fetcher carnet.Fetcher
		lister  carnet.DocumentLister
		prober  carnet.Prober
	)
	if m.BaseURL != "" {
		httpFetcher := carnethttp.NewFetcher(m.BaseURL, carnethttp.WithRateLimit(20))
		fetcher = httpFetcher
		lister = carnethttp.NewLister(httpFetcher)
		prober = carnethttp.NewProber(m.BaseURL)
	} else {
		fetcher = fs.NewFetcher(m.ContentDir)
		lister = fs.NewLister(m.ContentDir)
		prober = localProber{}
	}
	fetcher = carnetslog.NewLoggingFetcher(fetcher, logger)
	lister = carnetslog.NewLoggingLister(lister, logger)

	m.CatalogService = catalog.NewService(sections, lister, fetcher)
	deps.Catalog = m.CatalogService
	deps.Search = search.NewEngine(deps.Catalog)
	deps.Suggest = suggest.NewEngine(deps.Catalog)

	// Offline cache
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CARNET_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CacheService = offline.NewCache(sqlite.NewBlobStore(m.DB))
	deps.Cache = m.CacheService
	deps.Monitor = offline.NewMonitor(prober)

	return kongCtx.Run(deps)
}

// localProber reports a local checkout as always reachable.
type localProber struct{}

func (localProber) Probe(ctx context.Context) bool { return true }

// newLogger builds the diagnostic logger. Quiet by default so command
// output stays clean; CARNET_DEBUG=1 enables fetch/list tracing.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("CARNET_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("CARNET_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "carnet.db"
	}
	dir := filepath.Join(home, ".carnet")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "carnet.db")
}

func defaultContentDir() string {
	if dir := os.Getenv("CARNET_CONTENT_DIR"); dir != "" {
		return dir
	}
	return "content"
}
