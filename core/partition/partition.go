// core/partition/partition.go
// Package partition splits a FASTA collection into a fixed number of
// near-equal batches, preserving record order.
package partition

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"parablast-core/fasta"
)

var (
	// ErrBatchCount is returned when the requested batch count is < 1.
	ErrBatchCount = errors.New("batch count must be >= 1")
	// ErrNoRecords is returned when the source collection holds no records.
	ErrNoRecords = errors.New("no FASTA records in input")
)

// Batch is one contiguous slice of a collection, materialized as a file.
type Batch struct {
	Path    string
	Index   int // 1-based, in record order
	Records int
}

// Size returns the fixed per-batch record count for total records split n
// ways: round-half-to-even of total/n, clamped to at least 1. The last
// batch absorbs any remainder.
func Size(total, n int) int {
	s := int(math.RoundToEven(float64(total) / float64(n)))
	if s < 1 {
		s = 1
	}
	return s
}

// Split partitions the collection at src into at most batchCount batches
// written under dir as <prefix>_<index>.fa. With batchCount == 1 the source
// file itself is returned as the single batch and nothing is written.
//
// Records beyond the batchCount-th boundary keep appending to the last
// batch, so every batch but the last holds exactly Size(total, batchCount)
// records.
func Split(ctx context.Context, src string, batchCount int, dir, prefix string) ([]Batch, error) {
	if batchCount < 1 {
		return nil, fmt.Errorf("partition %s: %w", src, ErrBatchCount)
	}

	total, err := fasta.Count(src)
	if err != nil {
		return nil, fmt.Errorf("partition %s: %w", src, err)
	}
	if total == 0 {
		return nil, fmt.Errorf("partition %s: %w", src, ErrNoRecords)
	}

	if batchCount == 1 {
		return []Batch{{Path: src, Index: 1, Records: total}}, nil
	}

	size := Size(total, batchCount)

	var (
		batches []Batch
		fh      *os.File
		w       *fasta.Writer
	)
	closeCurrent := func() error {
		if fh == nil {
			return nil
		}
		if err := w.Flush(); err != nil {
			fh.Close()
			return err
		}
		err := fh.Close()
		fh, w = nil, nil
		return err
	}
	open := func(idx int) error {
		p := filepath.Join(dir, fmt.Sprintf("%s_%d.fa", prefix, idx))
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		fh, w = f, fasta.NewWriter(f)
		batches = append(batches, Batch{Path: p, Index: idx})
		return nil
	}

	err = fasta.EachRecord(ctx, src, func(rec fasta.Record) error {
		last := len(batches) - 1
		if fh == nil || (batches[last].Records == size && len(batches) < batchCount) {
			if err := closeCurrent(); err != nil {
				return err
			}
			if err := open(len(batches) + 1); err != nil {
				return err
			}
			last = len(batches) - 1
		}
		if err := w.Write(rec); err != nil {
			return err
		}
		batches[last].Records++
		return nil
	})
	if cerr := closeCurrent(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("partition %s: %w", src, err)
	}
	return batches, nil
}
