package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/papersift-io/papersift/internal/models"
)

// DeriveOutputPath returns the default screened file location for an
// input: the input path with ".screened.csv" in place of its extension.
func DeriveOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".screened.csv"
}

// outputColumns returns the screened header: every input column in its
// original position, with decision columns appended unless the input
// already carries them.
func outputColumns(set *models.RecordSet) []string {
	cols := make([]string, len(set.Columns))
	copy(cols, set.Columns)
	for _, c := range models.DecisionColumns() {
		if !set.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Write persists the set merged with decisions to path. The write is
// atomic: a temp file in the same directory is fully written, synced,
// then renamed over path, so a failure leaves any prior file intact.
func Write(set *models.RecordSet, decisions map[string]models.Decision, path, encName string) error {
	header := outputColumns(set)

	// Resolve where each decision column lands in the output row.
	type colRef struct {
		column string
		idx    int
	}
	refs := make([]colRef, 0, 4)
	for _, c := range models.DecisionColumns() {
		idx := set.ColumnIndex(c)
		if idx < 0 {
			for i := len(set.Columns); i < len(header); i++ {
				if header[i] == c {
					idx = i
					break
				}
			}
		}
		refs = append(refs, colRef{c, idx})
	}

	rows := make([][]string, 0, len(set.Records))
	for _, rec := range set.Records {
		row := make([]string, len(header))
		copy(row, rec.Values)
		if d, ok := decisions[rec.Identity]; ok && d.Decided() {
			for _, ref := range refs {
				row[ref.idx] = decisionValue(d, ref.column)
			}
		}
		rows = append(rows, row)
	}

	return writeAtomic(path, encName, header, rows)
}

func decisionValue(d models.Decision, column string) string {
	switch column {
	case models.ColumnInclude:
		return string(d.Verdict)
	case models.ColumnReason:
		return d.Reason
	case models.ColumnNote:
		return d.Note
	case models.ColumnDecidedAt:
		return d.DecidedAt
	default:
		return ""
	}
}

func writeAtomic(path, encName string, header []string, rows [][]string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	fail := func(err error) error {
		f.Close()
		os.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}

	ew, err := encodingWriter(f, encName)
	if err != nil {
		return fail(err)
	}
	w := csv.NewWriter(ew)
	if err := w.Write(header); err != nil {
		return fail(err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fail(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail(err)
	}
	if err := ew.Close(); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Filter returns a copy of set holding only records the predicate keeps,
// preserving original order. Used by the export subcommand.
func Filter(set *models.RecordSet, keep func(models.Record) bool) *models.RecordSet {
	var kept []models.Record
	for _, rec := range set.Records {
		if keep(rec) {
			kept = append(kept, rec)
		}
	}
	out := models.NewRecordSet(set.Path, set.Columns, kept)
	out.KeyColumn = set.KeyColumn
	return out
}
