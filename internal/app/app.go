// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"parablast-core/partition"
	"parablast/internal/align"
	"parablast/internal/cli"
	"parablast/internal/config"
	"parablast/internal/errs"
	"parablast/internal/jobgraph"
	"parablast/internal/merge"
	"parablast/internal/scheduler"
	"parablast/internal/version"
	"parablast/internal/workdir"
)

// RunContext drives one full run: parse → partition → job graph → schedule
// → merge → summary. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("parablast")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "parablast version %s\n", version.Version)
		return 0
	}

	level := slog.LevelInfo
	if opts.Quiet {
		level = slog.LevelError
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.ConfigPath != "" {
		f, err := config.Load(opts.ConfigPath)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return errs.ExitCode(err)
		}
		config.Apply(f, &opts)
	}
	if err := opts.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	format, _ := align.LookupFormat(opts.OutFmt) // validated above
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	dir, err := workdir.New(opts.Workdir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, errs.IO("create working directory", err))
		return 3
	}
	defer workdir.Cleanup(log, dir, opts.Keep)

	dbBatches, err := partition.Split(parent, opts.Database, opts.DBBatches, dir, "db")
	if err != nil {
		return fatal(stderr, classifyPartition(err))
	}
	queryBatches, err := partition.Split(parent, opts.Query, opts.QueryBatches, dir, "query")
	if err != nil {
		return fatal(stderr, classifyPartition(err))
	}

	jobs := jobgraph.Build(dbBatches, queryBatches, dir, format.Extension)
	log.Info("job graph built",
		"db_batches", len(dbBatches),
		"query_batches", len(queryBatches),
		"jobs", len(jobs),
		"workers", workers,
	)

	resolve := scheduler.HeaderResolver(opts.ToolOpts, format, opts.SingleHeader)
	res, err := scheduler.Run(parent, log, jobs, workers, align.Tool{Path: opts.Tool}, resolve)
	if err != nil {
		return fatal(stderr, err)
	}

	final := opts.Out + "." + format.Extension
	if err := merge.Concat(jobs, final); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return errs.ExitCode(err)
	}

	failed := res.Attempted - res.Succeeded
	log.Info("run complete",
		"attempted", res.Attempted,
		"succeeded", res.Succeeded,
		"failed", failed,
		"packages", res.Packages,
		"output", final,
	)
	_, _ = fmt.Fprintf(outw, "jobs attempted:\t%d\njobs succeeded:\t%d\njobs failed:\t%d\npackages:\t%d\noutput:\t%s\n",
		res.Attempted, res.Succeeded, failed, res.Packages, final)

	if res.Attempted > 0 && res.Succeeded == 0 {
		_, _ = fmt.Fprintln(stderr, "error: every job failed; the merged output holds no results")
		return 1
	}
	return 0
}

// fatal prints err and maps it to an exit code: 130 for cancellation,
// otherwise the errs kind mapping.
func fatal(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 130
	}
	return errs.ExitCode(err)
}

// classifyPartition attaches an error kind to a partitioner failure: bad
// batch counts and empty inputs are validation, everything else is I/O.
// Cancellation passes through untouched.
func classifyPartition(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, partition.ErrBatchCount), errors.Is(err, partition.ErrNoRecords):
		return errs.Validationf("%v", err)
	}
	return errs.IO("partition", err)
}

// Run is the context-free wrapper used by main and tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
