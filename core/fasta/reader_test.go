// core/fasta/reader_test.go
package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNNN
`

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func collect(t *testing.T, path string) []Record {
	t.Helper()
	var recs []Record
	if err := EachRecord(context.Background(), path, func(r Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("EachRecord: %v", err)
	}
	return recs
}

func TestEachRecordPlain(t *testing.T) {
	fa := writeTemp(t, "in.fa", plain)
	recs := collect(t, fa)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" || recs[0].Desc != "first record" {
		t.Fatalf("bad header parse: %+v", recs[0])
	}
	if string(recs[0].Seq) != "ACGTacgt" {
		t.Fatalf("multi-line sequence not joined: %q", recs[0].Seq)
	}
	if recs[1].ID != "seq2" || recs[1].Desc != "" {
		t.Fatalf("bad second record: %+v", recs[1])
	}
}

func TestEachRecordGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.fa.gz")
	fh, err := os.Create(p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(plain)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()

	recs := collect(t, p)
	if len(recs) != 2 || recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestEachRecordMissingFile(t *testing.T) {
	err := EachRecord(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), func(Record) error { return nil })
	if err == nil {
		t.Fatal("expected open error")
	}
}

func TestEachRecordCancel(t *testing.T) {
	fa := writeTemp(t, "in.fa", plain)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := EachRecord(ctx, fa, func(Record) error { return nil })
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCount(t *testing.T) {
	fa := writeTemp(t, "in.fa", plain)
	n, err := Count(fa)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	long := bytes.Repeat([]byte("ACGT"), 40) // 160 bp, forces wrapping
	if err := w.Write(Record{ID: "chr1", Desc: "test", Seq: long}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	fa := writeTemp(t, "rt.fa", buf.String())
	recs := collect(t, fa)
	if len(recs) != 1 || recs[0].ID != "chr1" || recs[0].Desc != "test" {
		t.Fatalf("round trip header: %+v", recs)
	}
	if !bytes.Equal(recs[0].Seq, long) {
		t.Fatalf("round trip sequence mismatch: %d vs %d bp", len(recs[0].Seq), len(long))
	}
	// 160 bp at 60 cols = 3 sequence lines.
	if lines := bytes.Count(buf.Bytes(), []byte{'\n'}); lines != 4 {
		t.Fatalf("expected 4 lines (header + 3 wrapped), got %d", lines)
	}
}
