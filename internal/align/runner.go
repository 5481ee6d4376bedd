// internal/align/runner.go
// Package align wraps the external pairwise aligner. The tree treats the
// tool as opaque: the only contracts are its exit status and the output
// file it writes.
package align

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Tool invokes an aligner executable. Path is resolved by the caller and
// threaded in as a plain value.
type Tool struct {
	Path string
}

// Run executes one alignment:
//
//	<tool> <dbPath> <queryPath> [opts...] <outPath>
//
// A non-zero exit returns an error that includes the first line of the
// tool's stderr; the tool's stdout is ignored.
func (t Tool) Run(ctx context.Context, dbPath, queryPath string, opts []string, outPath string) error {
	args := make([]string, 0, len(opts)+3)
	args = append(args, dbPath, queryPath)
	args = append(args, opts...)
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, t.Path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := firstLine(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %v: %s", t.Path, err, msg)
		}
		return fmt.Errorf("%s: %v", t.Path, err)
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
