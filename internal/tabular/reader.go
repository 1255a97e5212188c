// internal/tabular/reader.go

// Package tabular turns exported borehole tables (CSV/TSV) and manual
// layer specs into engine-ready site records.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Table is one parsed sheet: a header row plus data rows. Rows may be
// ragged; lookup is positional against Headers.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string
}

// ReadFile loads a CSV table; .tsv/.tab extensions switch the
// delimiter to tab.
func ReadFile(path string) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		r.Comma = '\t'
	}

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("%s: empty table", path)
	}
	return Table{Path: path, Headers: records[0], Rows: records[1:]}, nil
}
