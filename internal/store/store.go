// Package store persists angle labels as a flat CSV file: a header row
// followed by one `filename,angle` row per labeled item, angles formatted to
// two decimal places, rows in the canonical item sort order. The file is
// always rewritten whole so it can never hold duplicate or stale rows.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header columns of the label store.
var Header = []string{"filename", "angle"}

// CorruptError reports a store file that could not be parsed. Startup must
// not proceed on a partial load, so callers treat this as fatal.
type CorruptError struct {
	Path string
	Line int // 1-based line number of the bad record
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("label store %s: bad record at line %d: %v", e.Path, e.Line, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Load parses the label store at path into a filename→angle mapping.
// A missing file is not an error: the session simply starts with no labels.
func Load(path string) (map[string]float64, error) {
	labels := make(map[string]float64)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return labels, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // length checked per record for a precise error

	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &CorruptError{Path: path, Line: line, Err: err}
		}
		if line == 1 {
			// Header row. Tolerate stores written without one.
			if len(record) >= 1 && record[0] == Header[0] {
				continue
			}
		}
		if len(record) < 2 {
			return nil, &CorruptError{Path: path, Line: line, Err: fmt.Errorf("want 2 fields, got %d", len(record))}
		}
		a, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, &CorruptError{Path: path, Line: line, Err: err}
		}
		labels[record[0]] = a
	}

	return labels, nil
}

// Save rewrites the whole store: header first, then one row per item in
// canonical order for every item present in labels. The new content is
// written to a temp file and renamed over the target, so a failed write
// leaves the previous store untouched.
func Save(path string, order []string, labels map[string]float64) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once the rename has happened

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		tmp.Close()
		return err
	}
	for _, name := range order {
		a, ok := labels[name]
		if !ok {
			continue
		}
		if err := w.Write([]string{name, strconv.FormatFloat(a, 'f', 2, 64)}); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
