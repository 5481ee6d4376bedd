// internal/scheduler/scheduler.go
// Package scheduler executes the job graph in consecutive packages of at
// most the worker budget, with a full join barrier between packages. Peak
// concurrency therefore never exceeds the budget for the whole run.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"parablast/internal/align"
	"parablast/internal/errs"
	"parablast/internal/jobgraph"
)

// Runner is the external invocation a worker performs for one job.
type Runner interface {
	Run(ctx context.Context, dbPath, queryPath string, opts []string, outPath string) error
}

// OptionResolver returns the tool options for the job with the given global
// index. Resolution happens just before launch, once per job.
type OptionResolver func(jobIndex int) []string

// Outcome records how one job's worker terminated. Err is nil on success
// and an errs.ErrExternalTool-kinded error otherwise.
type Outcome struct {
	Job jobgraph.Job
	Err error
}

// Result summarizes a whole run. Outcomes is in job-index order.
type Result struct {
	Attempted int
	Succeeded int
	Packages  int
	Outcomes  []Outcome
}

// HeaderResolver builds the single built-in option policy: when single is
// set and the format carries a header, every job except job 0 gets the
// format's suppress-header option appended, so the merged artifact keeps
// exactly one header line.
func HeaderResolver(base []string, format align.Format, single bool) OptionResolver {
	return func(jobIndex int) []string {
		if !single || !format.Headered || jobIndex == 0 {
			return base
		}
		opts := make([]string, len(base), len(base)+1)
		copy(opts, base)
		return append(opts, format.SuppressHeaderOpt)
	}
}

// Run drives all jobs through runner, budget at a time. A failing worker is
// logged and recorded but never cancels its siblings or later packages; the
// run is fail-open on purpose, partial results still merge. Run returns a
// non-nil error only when ctx is cancelled.
func Run(
	ctx context.Context,
	log *slog.Logger,
	jobs []jobgraph.Job,
	budget int,
	runner Runner,
	resolve OptionResolver,
) (Result, error) {
	if budget < 1 {
		budget = 1
	}

	res := Result{
		Attempted: len(jobs),
		Outcomes:  make([]Outcome, len(jobs)),
	}

	for start := 0; start < len(jobs); start += budget {
		end := start + budget
		if end > len(jobs) {
			end = len(jobs)
		}
		pkg := jobs[start:end]

		var wg sync.WaitGroup
		wg.Add(len(pkg))
		for _, jb := range pkg {
			jb := jb
			go func() {
				defer wg.Done()
				err := runner.Run(ctx, jb.DB.Path, jb.Query.Path, resolve(jb.Index), jb.OutputPath)
				if err != nil {
					err = errs.Tool(jb.ID(), err)
				}
				// Each worker owns exactly one slot; no lock needed.
				res.Outcomes[jb.Index] = Outcome{Job: jb, Err: err}
			}()
		}
		wg.Wait() // package barrier
		res.Packages++

		for _, oc := range res.Outcomes[start:end] {
			if oc.Err != nil {
				log.Warn("job failed", "job", oc.Job.ID(), "err", oc.Err)
				continue
			}
			res.Succeeded++
		}
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
	}
	return res, nil
}
