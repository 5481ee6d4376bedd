// core/fasta/fasta.go
// Package fasta streams FASTA records from plain, gzipped, or stdin sources
// and writes them back out. It is the only sequence I/O layer in the tree.
package fasta

import "bytes"

// Record is one FASTA entry. Desc is everything after the first whitespace
// in the header line (may be empty).
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// parseHeader splits a '>' header line (without the '>') into ID and
// description.
func parseHeader(line []byte) (id, desc string) {
	line = bytes.TrimSpace(line)
	if i := bytes.IndexAny(line, " \t"); i >= 0 {
		return string(line[:i]), string(bytes.TrimSpace(line[i+1:]))
	}
	return string(line), ""
}
