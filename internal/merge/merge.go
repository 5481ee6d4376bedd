// internal/merge/merge.go
// Package merge assembles the final artifact from per-job outputs.
package merge

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"parablast/internal/errs"
	"parablast/internal/jobgraph"
)

// Concat writes the byte concatenation of every job's output artifact, in
// ascending job-index order, to dst. Completion order never influenced the
// artifact paths, so the result is deterministic.
//
// Failed jobs are not skipped: whatever their worker left behind is
// concatenated as-is. A job that produced no file at all contributes zero
// bytes; any other read failure is fatal.
func Concat(jobs []jobgraph.Job, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return errs.IO("create "+dst, err)
	}
	for _, jb := range jobs {
		in, err := os.Open(jb.OutputPath)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			out.Close()
			return errs.IO("open "+jb.OutputPath, err)
		}
		_, err = io.Copy(out, in)
		in.Close()
		if err != nil {
			out.Close()
			return errs.IO("append "+jb.OutputPath, err)
		}
	}
	if err := out.Close(); err != nil {
		return errs.IO("close "+dst, err)
	}
	return nil
}
