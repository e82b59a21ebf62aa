// SPDX-License-Identifier: MIT

package profile

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Compression selects the codec applied by Write / stripped by Load.
type Compression int

const (
	// None writes plain CSV.
	None Compression = iota

	// Gzip wraps the CSV stream in a gzip writer.
	Gzip
)

// WriteOptions configures profile output.
//
// Fields:
//   - Compression — None or Gzip.
//   - FloatFormat — fmt verb applied to numeric cells, e.g. "%.4g".
//     Empty means strconv.FormatFloat with the shortest round-trip form.
type WriteOptions struct {
	Compression Compression
	FloatFormat string
}

// DefaultWriteOptions returns plain CSV output with round-trip floats.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Compression: None, FloatFormat: ""}
}

// Load reads a profile table from a CSV file. A ".gz" suffix on the path
// enables transparent gzip decompression. Cells that parse as floats become
// float64, everything else stays a string.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: load %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("profile: load %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return LoadCSV(r)
}

// LoadCSV reads a profile table from CSV text: one header record naming the
// columns, then one record per row. Row identifiers are assigned in file
// order starting at 0.
//
// Errors: ErrEmptyHeader, ErrDuplicateColumn, csv parse errors.
func LoadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF || (err == nil && len(header) == 0) {
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, fmt.Errorf("profile: read header: %w", err)
	}

	cols := make([][]any, len(header))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("profile: read record: %w", err)
		}
		for j, cell := range rec {
			if f, err := strconv.ParseFloat(cell, 64); err == nil {
				cols[j] = append(cols[j], f)
			} else {
				cols[j] = append(cols[j], cell)
			}
		}
	}
	return FromColumns(header, cols, nil)
}

// Write persists a table to path using the given options. A Gzip option is
// honored regardless of the path suffix.
func Write(t *Table, path string, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profile: write %s: %w", path, err)
	}
	if err := WriteCSV(t, f, opts); err != nil {
		f.Close()
		return fmt.Errorf("profile: write %s: %w", path, err)
	}
	return f.Close()
}

// WriteCSV streams a table as CSV: header first, then rows in table order.
// Numeric cells are rendered with opts.FloatFormat when set.
func WriteCSV(t *Table, w io.Writer, opts WriteOptions) error {
	var zw *gzip.Writer
	if opts.Compression == Gzip {
		zw = gzip.NewWriter(w)
		w = zw
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return err
	}
	rec := make([]string, len(t.names))
	for i := 0; i < t.NumRows(); i++ {
		for j := range t.names {
			rec[j] = formatCell(t.cols[j][i], opts.FloatFormat)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if zw != nil {
		return zw.Close()
	}
	return nil
}

// formatCell renders one cell. floatFormat applies to float64 cells only.
func formatCell(v any, floatFormat string) string {
	switch c := v.(type) {
	case float64:
		if floatFormat != "" {
			return fmt.Sprintf(floatFormat, c)
		}
		return strconv.FormatFloat(c, 'g', -1, 64)
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}
