// internal/jobgraph/jobgraph.go
// Package jobgraph turns two batch lists into the ordered cross product of
// alignment jobs. The index order fixed here is load-bearing: it is both
// the scheduling order and the merge order.
package jobgraph

import (
	"fmt"
	"path/filepath"
	"strings"

	"parablast-core/partition"
)

// Job pairs one database batch with one query batch. Index is 0-based
// creation order.
type Job struct {
	Index      int
	DB         partition.Batch
	Query      partition.Batch
	OutputPath string
}

// ID labels the job in logs and warnings.
func (j Job) ID() string {
	return fmt.Sprintf("%d (%s vs %s)", j.Index, filepath.Base(j.DB.Path), filepath.Base(j.Query.Path))
}

// Build pairs every database batch with every query batch, database-major
// (db outer, query inner), assigning indices 0..D*Q-1 in that order. The
// output path embeds the job index, so paths stay unique even when batch
// names collide.
func Build(dbBatches, queryBatches []partition.Batch, dir, ext string) []Job {
	jobs := make([]Job, 0, len(dbBatches)*len(queryBatches))
	for _, db := range dbBatches {
		for _, q := range queryBatches {
			idx := len(jobs)
			name := fmt.Sprintf("job_%d_%s_vs_%s.%s", idx, stem(db.Path), stem(q.Path), ext)
			jobs = append(jobs, Job{
				Index:      idx,
				DB:         db,
				Query:      q,
				OutputPath: filepath.Join(dir, name),
			})
		}
	}
	return jobs
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
