package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papersift-io/papersift/internal/store"
)

func writeScreenedFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "papers.screened.csv")
	content := "Title,include,reason,note,decided_at\n" +
		"Keep me,yes,,,2026-01-01T00:00:00Z\n" +
		"Drop me,no,off-topic,,2026-01-01T00:01:00Z\n" +
		"Undecided,,,,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func resetExportFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagDest = ""
		flagOnlyIncluded = false
		flagOnlyExcluded = false
	})
}

func TestRunExportIncludedOnly(t *testing.T) {
	resetExportFlags(t)
	dir := t.TempDir()
	in := writeScreenedFile(t, dir)

	flagOnlyIncluded = true
	flagDest = filepath.Join(dir, "kept.csv")
	if err := runExport(exportCmd, []string{in}); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	got, err := store.Load(flagDest, store.LoadOptions{})
	if err != nil {
		t.Fatalf("loading export: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("export kept %d rows, want 1", got.Len())
	}
	if v := got.Value(got.Records[0], "Title"); v != "Keep me" {
		t.Errorf("kept row = %q, want the included record", v)
	}
	if v := got.Value(got.Records[0], "include"); v != "yes" {
		t.Errorf("decision column = %q, want carried along", v)
	}
}

func TestRunExportExcludedDerivesDest(t *testing.T) {
	resetExportFlags(t)
	dir := t.TempDir()
	in := writeScreenedFile(t, dir)

	flagOnlyExcluded = true
	if err := runExport(exportCmd, []string{in}); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	dest := strings.TrimSuffix(in, ".csv") + ".excluded.csv"
	got, err := store.Load(dest, store.LoadOptions{})
	if err != nil {
		t.Fatalf("loading derived export %s: %v", dest, err)
	}
	if got.Len() != 1 {
		t.Fatalf("export kept %d rows, want 1", got.Len())
	}
	if v := got.Value(got.Records[0], "reason"); v != "off-topic" {
		t.Errorf("excluded row reason = %q", v)
	}
}

func TestRunExportRejectsCombinedFilters(t *testing.T) {
	resetExportFlags(t)
	flagOnlyIncluded = true
	flagOnlyExcluded = true

	err := runExport(exportCmd, []string{"whatever.csv"})
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Fatalf("err = %v, want the combined-filters rejection", err)
	}
}

func TestDeriveExportPath(t *testing.T) {
	tests := []struct {
		name     string
		included bool
		excluded bool
		want     string
	}{
		{"included", true, false, "papers.included.csv"},
		{"excluded", false, true, "papers.excluded.csv"},
		{"plain copy", false, false, "papers.copy.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetExportFlags(t)
			flagOnlyIncluded = tt.included
			flagOnlyExcluded = tt.excluded
			if got := deriveExportPath("papers.csv"); got != tt.want {
				t.Errorf("deriveExportPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunStatusRequiresDecisionColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.csv")
	if err := os.WriteFile(path, []byte("Title\nA\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runStatus(statusCmd, []string{path})
	var pe *store.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *store.ParseError for a file without decisions", err)
	}
}

func TestRunStatusReadsScreenedFile(t *testing.T) {
	dir := t.TempDir()
	in := writeScreenedFile(t, dir)

	if err := runStatus(statusCmd, []string{in}); err != nil {
		t.Fatalf("runStatus: %v", err)
	}
}
