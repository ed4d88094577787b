package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papersift-io/papersift/internal/models"
)

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"csv extension", "papers.csv", "papers.screened.csv"},
		{"nested path", filepath.Join("a", "b", "export.csv"), filepath.Join("a", "b", "export.screened.csv")},
		{"no extension", "export", "export.screened.csv"},
		{"other extension", "dump.tsv", "dump.screened.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveOutputPath(tt.input); got != tt.want {
				t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteAppendsDecisionColumns(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", "Title,Year\nA,2020\nB,2021\n")
	out := filepath.Join(dir, "out.csv")
	rs := loadSet(t, input, LoadOptions{})

	decisions := map[string]models.Decision{
		"1": {Verdict: models.VerdictInclude, DecidedAt: "2026-01-01T00:00:00Z"},
	}
	if err := Write(rs, decisions, out, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := loadSet(t, out, LoadOptions{})
	wantHeader := []string{"Title", "Year", "include", "reason", "note", "decided_at"}
	if len(got.Columns) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", got.Columns, wantHeader)
	}
	for i := range wantHeader {
		if got.Columns[i] != wantHeader[i] {
			t.Errorf("header[%d] = %q, want %q", i, got.Columns[i], wantHeader[i])
		}
	}
	if v := got.Value(got.Records[0], "include"); v != "yes" {
		t.Errorf("decided row include = %q, want yes", v)
	}
	if v := got.Value(got.Records[1], "include"); v != "" {
		t.Errorf("undecided row include = %q, want empty", v)
	}
	if v := got.Value(got.Records[0], "Year"); v != "2020" {
		t.Errorf("original cell = %q, want 2020", v)
	}
}

func TestWriteReusesExistingColumns(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv",
		"Title,include,reason,note,decided_at\n"+
			"A,maybe,stale,keep me,old\n"+
			"B,,,,\n")
	out := filepath.Join(dir, "out.csv")
	rs := loadSet(t, input, LoadOptions{})

	decisions := map[string]models.Decision{
		"2": {Verdict: models.VerdictExclude, Reason: "off-topic", DecidedAt: "2026-01-01T00:00:00Z"},
	}
	if err := Write(rs, decisions, out, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := loadSet(t, out, LoadOptions{})
	if len(got.Columns) != 5 {
		t.Fatalf("header = %v, decision columns must not be duplicated", got.Columns)
	}
	if v := got.Value(got.Records[0], "include"); v != "maybe" {
		t.Errorf("unrecognized verdict rewritten to %q, want kept verbatim", v)
	}
	if v := got.Value(got.Records[0], "note"); v != "keep me" {
		t.Errorf("undecided note = %q, want kept verbatim", v)
	}
	if v := got.Value(got.Records[1], "reason"); v != "off-topic" {
		t.Errorf("decided reason = %q, want off-topic", v)
	}
}

func TestRoundTripPreservesOriginalData(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv",
		"Title,Notes\n"+
			"\"comma, inside\",\"multi\nline\"\n"+
			"  spaced  ,plain\n")
	out := filepath.Join(dir, "out.csv")
	rs := loadSet(t, input, LoadOptions{})

	if err := Write(rs, nil, out, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := loadSet(t, out, LoadOptions{})
	for i, rec := range rs.Records {
		for j := range rs.Columns {
			if want, have := rec.Value(j), got.Records[i].Value(j); want != have {
				t.Errorf("row %d col %d = %q, want %q", i+1, j, have, want)
			}
		}
	}
}

func TestExportIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", "Title\nA\nB\n")
	out := filepath.Join(dir, "out.csv")
	rs := loadSet(t, input, LoadOptions{})

	decisions := map[string]models.Decision{
		"1": {Verdict: models.VerdictInclude, DecidedAt: "2026-01-01T00:00:00Z"},
	}
	if err := Write(rs, decisions, out, ""); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(rs, decisions, out, ""); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("re-export with unchanged decisions should be byte-identical")
	}
}

func TestWriteFailureLeavesPriorFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", "Title\n→ arrow\n")
	out := writeFile(t, dir, "out.csv", "prior content\n")
	rs := loadSet(t, input, LoadOptions{})

	// The arrow has no latin-1 form, so encoding fails mid-write.
	err := Write(rs, nil, out, "latin-1")
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
	content, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(content) != "prior content\n" {
		t.Errorf("prior file changed on failed write: %q", content)
	}
	if _, statErr := os.Stat(out + ".tmp"); !os.IsNotExist(statErr) {
		t.Error("temp file should be cleaned up after a failed write")
	}
}

func TestWriteToUnusableDirectory(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", "Title\nA\n")
	blocker := writeFile(t, dir, "blocker", "not a directory")
	rs := loadSet(t, input, LoadOptions{})

	err := Write(rs, nil, filepath.Join(blocker, "out.csv"), "")
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
	if !strings.Contains(we.Error(), "out.csv") {
		t.Errorf("error should name the target file: %v", we)
	}
}

func TestWriteEncodingRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		prefix   []byte
	}{
		{"latin-1", "latin-1", nil},
		{"utf-8 bom", "utf-8-bom", []byte{0xEF, 0xBB, 0xBF}},
		{"utf-16", "utf-16", []byte{0xFF, 0xFE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := writeFile(t, dir, "in.csv", "Title\ncafé\n")
			out := filepath.Join(dir, "out.csv")
			rs := loadSet(t, input, LoadOptions{})

			if err := Write(rs, nil, out, tt.encoding); err != nil {
				t.Fatalf("Write: %v", err)
			}
			raw, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if tt.prefix != nil && !bytes.HasPrefix(raw, tt.prefix) {
				t.Errorf("output lacks expected byte order mark %x", tt.prefix)
			}

			back := loadSet(t, out, LoadOptions{Encoding: tt.encoding})
			if got := back.Value(back.Records[0], "Title"); got != "café" {
				t.Errorf("round-tripped cell = %q, want café", got)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	rs := models.NewRecordSet("x.csv", []string{"Title"}, []models.Record{
		{Identity: "1", Row: 1, Values: []string{"A"}},
		{Identity: "2", Row: 2, Values: []string{"B"}},
		{Identity: "3", Row: 3, Values: []string{"C"}},
	})

	got := Filter(rs, func(r models.Record) bool { return r.Identity != "2" })
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}
	if got.Records[0].Identity != "1" || got.Records[1].Identity != "3" {
		t.Errorf("filtered order = %q, %q", got.Records[0].Identity, got.Records[1].Identity)
	}
	if rs.Len() != 3 {
		t.Error("Filter must not mutate the source set")
	}
}
