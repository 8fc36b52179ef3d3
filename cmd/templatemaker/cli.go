package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/templatemaker"
	"github.com/fwojciec/templatemaker/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Templates templatemaker.TemplateService
	Samples   templatemaker.SampleService
	Source    templatemaker.SampleSource
	// Logger is set when --verbose is given.
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log cleaning and storage calls to stderr"`

	Learn   LearnCmd   `cmd:"" help:"Learn a template from a directory of samples"`
	Show    ShowCmd    `cmd:"" help:"Show a learned template"`
	Extract ExtractCmd `cmd:"" help:"Extract hole contents from files"`
	Import  ImportCmd  `cmd:"" help:"Import a template from a JSON or XML export"`
	List    ListCmd    `cmd:"" help:"List all templates"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a template and its sample history"`
}

// LearnCmd is the "learn" subcommand.
type LearnCmd struct {
	Name      string `arg:"" help:"Template name"`
	Dir       string `arg:"" help:"Directory of samples"`
	Tolerance int    `short:"t" default:"0" help:"Absorb literals of at most this many characters between holes (new templates only)"`
	Clean     string `help:"Sample cleaning: raw, html, markdown or text (new templates default to raw, existing ones keep theirs)"`
	Recursive bool   `short:"r" help:"Read samples from subdirectories too"`
	Glob      string `short:"g" help:"Only read files whose name matches this pattern"`
	MaxCells  int    `name:"max-cells" default:"25000000" help:"Skip samples whose alignment needs more table cells (0 for no limit)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name   string `arg:"" help:"Template name"`
	Marker string `short:"m" default:"{{ HOLE }}" help:"Text printed in place of each hole"`
	Format string `short:"f" enum:"text,json,xml" default:"text" help:"Output format: text, json or xml"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Name        string   `arg:"" help:"Template name"`
	Files       []string `arg:"" help:"Files to extract from"`
	Field       []string `short:"F" name:"field" help:"Name the holes in order (repeatable; empty skips a hole)"`
	Clean       string   `help:"Override the sample cleaning stored with the template"`
	Out         string   `short:"o" type:"path" help:"Write one JSON record per file into this directory"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent extraction limit"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name      string `arg:"" help:"Template name"`
	File      string `arg:"" type:"existingfile" help:"JSON or XML template export"`
	Tolerance int    `short:"t" default:"-1" help:"Override the exported tolerance"`
	Clean     string `help:"Override the exported sample cleaning"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Template name"`
	Force bool   `help:"Confirm deletion"`
}

// Validate rejects unknown clean modes at parse time.
func (c *LearnCmd) Validate() error { return validateCleanMode(c.Clean) }

// Validate rejects unknown clean modes at parse time.
func (c *ExtractCmd) Validate() error { return validateCleanMode(c.Clean) }

// Validate rejects unknown clean modes at parse time.
func (c *ImportCmd) Validate() error { return validateCleanMode(c.Clean) }
