// Package models contains shared data structures used across the application.
package models

import (
	"strconv"
	"strings"
)

// Record is a single bibliographic entry read from the input CSV.
// Values are kept verbatim and aligned with the owning set's Columns.
type Record struct {
	Identity string
	Row      int // 1-based data row number, header excluded
	Values   []string
}

// Value returns the cell at the given column index, or "" when the
// source row was shorter than the header.
func (r Record) Value(idx int) string {
	if idx < 0 || idx >= len(r.Values) {
		return ""
	}
	return r.Values[idx]
}

// RecordSet is an ordered collection of records sharing one header.
type RecordSet struct {
	Path      string
	Columns   []string
	Records   []Record
	KeyColumn string // "" means row-number identity

	byName map[string]int
}

// NewRecordSet builds a set and indexes its columns for lookup.
func NewRecordSet(path string, columns []string, records []Record) *RecordSet {
	rs := &RecordSet{
		Path:    path,
		Columns: columns,
		Records: records,
		byName:  make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		name := CleanColumn(c)
		if _, ok := rs.byName[name]; !ok {
			rs.byName[name] = i
		}
	}
	return rs
}

// ColumnIndex resolves a column by cleaned name. Returns -1 when absent.
func (rs *RecordSet) ColumnIndex(name string) int {
	if idx, ok := rs.byName[CleanColumn(name)]; ok {
		return idx
	}
	return -1
}

// HasColumn reports whether the header contains the given column.
func (rs *RecordSet) HasColumn(name string) bool {
	return rs.ColumnIndex(name) >= 0
}

// Value returns the named cell of a record, or "" when the column is absent.
func (rs *RecordSet) Value(rec Record, column string) string {
	return rec.Value(rs.ColumnIndex(column))
}

// Identities returns record identities in original row order.
func (rs *RecordSet) Identities() []string {
	ids := make([]string, len(rs.Records))
	for i, rec := range rs.Records {
		ids[i] = rec.Identity
	}
	return ids
}

// Len returns the number of data records.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

// RowIdentity is the fallback identity for files without a key column.
func RowIdentity(row int) string {
	return strconv.Itoa(row)
}

// CleanColumn normalizes a header cell for matching: strips a UTF-8 BOM
// and surrounding whitespace. The stored header keeps its original bytes.
func CleanColumn(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
}
