// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

const wrapWidth = 60

// Writer emits FASTA records with 60-column sequence wrapping.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one record.
func (fw *Writer) Write(rec Record) error {
	if err := fw.w.WriteByte('>'); err != nil {
		return err
	}
	if _, err := fw.w.WriteString(rec.ID); err != nil {
		return err
	}
	if rec.Desc != "" {
		if err := fw.w.WriteByte(' '); err != nil {
			return err
		}
		if _, err := fw.w.WriteString(rec.Desc); err != nil {
			return err
		}
	}
	if err := fw.w.WriteByte('\n'); err != nil {
		return err
	}
	for off := 0; off < len(rec.Seq); off += wrapWidth {
		end := off + wrapWidth
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := fw.w.Write(rec.Seq[off:end]); err != nil {
			return err
		}
		if err := fw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush commits buffered output to the underlying writer.
func (fw *Writer) Flush() error { return fw.w.Flush() }
