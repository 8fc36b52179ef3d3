package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/fs"
	tmslog "github.com/fwojciec/templatemaker/slog"
	"github.com/fwojciec/templatemaker/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	TemplateService templatemaker.TemplateService
	SampleService   templatemaker.SampleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("templatemaker"),
		kong.Description("Learn text templates from samples and extract the variable parts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'templatemaker --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TEMPLATEMAKER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.TemplateService = sqlite.NewTemplateService(m.DB)
	m.SampleService = sqlite.NewSampleService(m.DB)
	deps.DB = m.DB
	deps.Templates = m.TemplateService
	deps.Samples = m.SampleService
	if deps.Logger != nil {
		deps.Templates = tmslog.NewLoggingTemplateService(m.TemplateService, deps.Logger)
	}

	// Learn flags configure how the sample directory is read
	deps.Source = &fs.DirSource{
		Recursive: cli.Learn.Recursive,
		Glob:      cli.Learn.Glob,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("TEMPLATEMAKER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "templatemaker.db"
	}
	return filepath.Join(home, ".templatemaker", "templatemaker.db")
}
