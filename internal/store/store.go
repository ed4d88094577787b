// Package store loads bibliographic CSV exports and persists screening
// decisions back to disk. The screened file doubles as the decision
// ledger: every decision rewrites it atomically, and resuming a session
// reads it back.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/papersift-io/papersift/internal/models"
)

// LoadOptions controls CSV parsing and identity assignment.
type LoadOptions struct {
	// KeyColumn names the column whose values identify records across
	// runs. Empty selects 1-based row numbers.
	KeyColumn string

	// RequiredColumns must all be present in the header. The screening
	// session passes its display columns; subcommands leave it nil.
	RequiredColumns []string

	// Encoding names the file encoding. Empty means UTF-8.
	Encoding string
}

// Load reads a CSV export into an ordered record set. Column order and
// cell values are preserved verbatim; only identities are derived.
func Load(path string, opts LoadOptions) (*models.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	r, err := decodingReader(f, opts.Encoding)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Path: path, Err: errors.New("file is empty, expected a header row")}
	}

	header := rows[0]
	records := make([]models.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		vals := make([]string, len(header))
		copy(vals, row)
		records = append(records, models.Record{Row: i + 1, Values: vals})
	}

	rs := models.NewRecordSet(path, header, records)
	rs.KeyColumn = strings.TrimSpace(opts.KeyColumn)

	if missing := missingColumns(rs, opts.RequiredColumns); len(missing) > 0 {
		return nil, &ParseError{Path: path, Err: fmt.Errorf(
			"missing required column(s): %s (found: %s)",
			strings.Join(missing, ", "), strings.Join(header, ", "))}
	}

	if err := assignIdentities(rs); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return rs, nil
}

func missingColumns(rs *models.RecordSet, required []string) []string {
	var missing []string
	for _, c := range required {
		if !rs.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// assignIdentities fills each record's identity from the key column, or
// from its row number when no key column is configured. Key values must
// be non-blank and unique.
func assignIdentities(rs *models.RecordSet) error {
	if rs.KeyColumn == "" {
		for i := range rs.Records {
			rs.Records[i].Identity = models.RowIdentity(rs.Records[i].Row)
		}
		return nil
	}

	idx := rs.ColumnIndex(rs.KeyColumn)
	if idx < 0 {
		return fmt.Errorf("key column %q not found in header", rs.KeyColumn)
	}
	seen := make(map[string]int, len(rs.Records))
	for i := range rs.Records {
		rec := &rs.Records[i]
		id := strings.TrimSpace(rec.Value(idx))
		if id == "" {
			return fmt.Errorf("key column %q is blank at data row %d", rs.KeyColumn, rec.Row)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("key column %q has duplicate value %q at data rows %d and %d", rs.KeyColumn, id, prev, rec.Row)
		}
		seen[id] = rec.Row
		rec.Identity = id
	}
	return nil
}
