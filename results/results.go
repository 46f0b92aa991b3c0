// Package results persists trial records as an append-only CSV table.
//
// The first line is always the header from trial.Columns. Every Append
// writes and flushes one complete row, so an interrupted batch leaves a
// file whose last complete row is the recovery point.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/pathbench/trial"
)

// Sentinel errors.
var (
	// ErrHeader indicates a table whose header differs from trial.Columns.
	ErrHeader = errors.New("results: unexpected header")

	// ErrClosed indicates an Append after Close.
	ErrClosed = errors.New("results: writer closed")
)

// Sink receives records one by one.
type Sink interface {
	Append(r trial.Record) error
	Flush() error
}

// Writer streams records to CSV.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
	rows   int
	closed bool
}

// NewWriter writes the header to w and returns a Writer over it.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(trial.Columns); err != nil {
		return nil, fmt.Errorf("results: write header: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("results: write header: %w", err)
	}
	out := &Writer{csv: cw}
	if c, ok := w.(io.Closer); ok {
		out.closer = c
	}
	return out, nil
}

// Create makes path (and its parent directories) and opens a Writer on it.
// An existing file is truncated.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("results: create dir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("results: create %s: %w", path, err)
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// Append writes r and flushes it.
func (w *Writer) Append(r trial.Record) error {
	if w.closed {
		return ErrClosed
	}
	if err := w.csv.Write(r.Row()); err != nil {
		return fmt.Errorf("results: append: %w", err)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Flush pushes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("results: flush: %w", err)
	}
	return nil
}

// Rows returns the number of records appended so far.
func (w *Writer) Rows() int { return w.rows }

// Close flushes and closes the underlying writer when it is an io.Closer.
// Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	ferr := w.Flush()
	if w.closer != nil {
		if err := w.closer.Close(); err != nil && ferr == nil {
			ferr = fmt.Errorf("results: close: %w", err)
		}
	}
	return ferr
}

// Table is an in-memory Sink.
type Table struct {
	Records []trial.Record
}

// Append stores r.
func (t *Table) Append(r trial.Record) error {
	t.Records = append(t.Records, r)
	return nil
}

// Flush is a no-op.
func (t *Table) Flush() error { return nil }

// Read decodes a table from r. The header must equal trial.Columns.
func Read(r io.Reader) ([]trial.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("results: empty table: %w", ErrHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("results: read header: %w", err)
	}
	if err = checkHeader(header); err != nil {
		return nil, err
	}

	var out []trial.Record
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("results: line %d: %w", line, err)
		}
		rec, err := trial.ParseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("results: line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}

// Load reads the table at path.
func Load(path string) ([]trial.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

func checkHeader(h []string) error {
	if len(h) != len(trial.Columns) {
		return fmt.Errorf("results: %d columns, want %d: %w", len(h), len(trial.Columns), ErrHeader)
	}
	for i, name := range trial.Columns {
		if h[i] != name {
			return fmt.Errorf("results: column %d is %q, want %q: %w", i, h[i], name, ErrHeader)
		}
	}
	return nil
}
