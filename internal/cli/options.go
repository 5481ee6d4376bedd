// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"strings"

	"parablast/internal/align"
	"parablast/internal/errs"
	"parablast/internal/version"
)

// Options holds all CLI flags and arguments. Values may be filled in from
// a YAML run config after parsing; Explicit records which flags were set on
// the command line so config values never override them.
type Options struct {
	// Inputs
	Database string
	Query    string

	// Partitioning / scheduling
	DBBatches    int
	QueryBatches int
	Workers      int

	// External tool
	Tool     string
	ToolOpts []string

	// Output
	OutFmt       string
	Out          string
	SingleHeader bool
	Keep         bool
	Workdir      string

	ConfigPath string
	Quiet      bool
	Version    bool

	Explicit map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: batched parallel driver for an external pairwise aligner

Splits the database and query FASTA collections into batches, aligns every
batch pair under a bounded worker budget, and merges the results into one
artifact in job order.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Required-field validation is deferred to Validate so a --config file can
// still supply values.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Database, "database", "", "database FASTA file (or '-') [*]")
	fs.StringVar(&opt.Query, "query", "", "query FASTA file (or '-') [*]")

	fs.IntVar(&opt.DBBatches, "db-batches", 1, "number of database batches [1]")
	fs.IntVar(&opt.QueryBatches, "query-batches", 1, "number of query batches [1]")
	fs.IntVar(&opt.Workers, "workers", 0, "max concurrent aligner processes (0 = all CPUs) [0]")

	fs.StringVar(&opt.Tool, "tool", "", "path to the aligner executable [*]")
	var toolOpts stringSlice
	fs.Var(&toolOpts, "tool-opt", "extra option passed to every aligner call (repeatable)")

	fs.StringVar(&opt.OutFmt, "outfmt", "tsv", "output format: "+strings.Join(align.FormatNames(), " | ")+" [tsv]")
	fs.StringVar(&opt.Out, "out", "parablast_results", "final artifact base name [parablast_results]")
	fs.BoolVar(&opt.SingleHeader, "single-header", false, "keep only the first job's header line in the merged output [false]")
	fs.BoolVar(&opt.Keep, "keep", false, "keep batch and per-job files after the merge [false]")
	fs.StringVar(&opt.Workdir, "workdir", "", "parent directory for the run's working area (default: system temp)")

	fs.StringVar(&opt.ConfigPath, "config", "", "YAML run config; command-line flags take precedence")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and warning logs [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	opt.ToolOpts = toolOpts
	opt.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.Explicit[f.Name] = true })
	return opt, nil
}

// Validate checks the merged option set. Errors are validation-kinded so
// the app maps them to exit code 2.
func (o *Options) Validate() error {
	switch {
	case o.Database == "":
		return errs.Validationf("--database is required")
	case o.Query == "":
		return errs.Validationf("--query is required")
	case o.Tool == "":
		return errs.Validationf("--tool is required")
	}
	if o.DBBatches < 1 {
		return errs.Validationf("--db-batches must be >= 1, got %d", o.DBBatches)
	}
	if o.QueryBatches < 1 {
		return errs.Validationf("--query-batches must be >= 1, got %d", o.QueryBatches)
	}
	if o.Workers < 0 {
		return errs.Validationf("--workers must be >= 0, got %d", o.Workers)
	}
	if _, ok := align.LookupFormat(o.OutFmt); !ok {
		return errs.Validationf("invalid --outfmt %q (known: %s)", o.OutFmt, strings.Join(align.FormatNames(), ", "))
	}
	if o.Out == "" {
		return errs.Validationf("--out must not be empty")
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
