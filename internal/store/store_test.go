package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "papers.csv",
		"Document Type,Article Title,Abstract\n"+
			"Article,\"Fuzzing, explained\",An overview\n"+
			"Proceedings Paper,Another title,\n")

	rs, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rs.Len() != 2 {
		t.Fatalf("Len = %d, want 2", rs.Len())
	}
	if got := rs.Columns[1]; got != "Article Title" {
		t.Errorf("Columns[1] = %q", got)
	}
	if got := rs.Value(rs.Records[0], "Article Title"); got != "Fuzzing, explained" {
		t.Errorf("quoted cell = %q", got)
	}
	if rs.Records[0].Identity != "1" || rs.Records[1].Identity != "2" {
		t.Errorf("row identities = %q, %q, want 1, 2", rs.Records[0].Identity, rs.Records[1].Identity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), LoadOptions{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if !strings.Contains(pe.Error(), "absent.csv") {
		t.Errorf("error should name the file: %v", pe)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.csv", "")
	_, err := Load(path, LoadOptions{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv", "Article Title\n\"unterminated")
	_, err := Load(path, LoadOptions{})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestLoadMissingRequiredColumns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "papers.csv", "Title,Year\nA,2020\n")
	_, err := Load(path, LoadOptions{RequiredColumns: []string{"Article Title", "Abstract"}})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	msg := pe.Error()
	for _, want := range []string{"Article Title", "Abstract", "Title, Year"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestLoadRaggedRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ragged.csv",
		"a,b,c\n"+
			"1\n"+
			"1,2,3,4\n")

	rs, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(rs.Records[0].Values); got != 3 {
		t.Errorf("short row padded to %d cells, want 3", got)
	}
	if got := rs.Records[0].Value(1); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
	if got := len(rs.Records[1].Values); got != 3 {
		t.Errorf("long row kept %d cells, want 3", got)
	}
}

func TestLoadBOMHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bom.csv", "\uFEFFDocument Type,Abstract\nArticle,text\n")

	rs, err := Load(path, LoadOptions{RequiredColumns: []string{"Document Type"}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.HasPrefix(rs.Columns[0], "\uFEFF") {
		t.Error("stored header should keep the BOM verbatim")
	}
	if got := rs.Value(rs.Records[0], "Document Type"); got != "Article" {
		t.Errorf("lookup through BOM = %q, want Article", got)
	}
}

func TestLoadKeyColumn(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		wantIDs []string
	}{
		{
			name:    "unique keys",
			content: "DOI,Title\n10.1/a,A\n10.1/b,B\n",
			wantIDs: []string{"10.1/a", "10.1/b"},
		},
		{
			name:    "trimmed keys",
			content: "DOI,Title\n 10.1/a ,A\n",
			wantIDs: []string{"10.1/a"},
		},
		{
			name:    "duplicate key",
			content: "DOI,Title\n10.1/a,A\n10.1/a,B\n",
			wantErr: "duplicate",
		},
		{
			name:    "blank key",
			content: "DOI,Title\n,A\n",
			wantErr: "blank",
		},
		{
			name:    "key column absent",
			content: "Title\nA\n",
			wantErr: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "keyed.csv", tt.content)
			rs, err := Load(path, LoadOptions{KeyColumn: "DOI"})
			if tt.wantErr != "" {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("err = %v, want *ParseError", err)
				}
				if !strings.Contains(pe.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", pe.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			for i, want := range tt.wantIDs {
				if rs.Records[i].Identity != want {
					t.Errorf("identity[%d] = %q, want %q", i, rs.Records[i].Identity, want)
				}
			}
		})
	}
}

func TestLoadLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin.csv")
	content := append([]byte("Title\ncaf"), 0xE9, '\n')
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	rs, err := Load(path, LoadOptions{Encoding: "latin-1"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := rs.Records[0].Value(0); got != "café" {
		t.Errorf("decoded cell = %q, want café", got)
	}
}

func TestLoadUTF16(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "utf16.csv")
	text := "Title\nhello\n"
	raw := []byte{0xFF, 0xFE}
	for _, r := range text {
		raw = append(raw, byte(r), byte(r>>8))
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	rs, err := Load(path, LoadOptions{Encoding: "utf-16"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := rs.Records[0].Value(0); got != "hello" {
		t.Errorf("decoded cell = %q, want hello", got)
	}
}

func TestLoadUnsupportedEncoding(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.csv", "a\n1\n")
	_, err := Load(path, LoadOptions{Encoding: "koi8-r"})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if !strings.Contains(pe.Error(), "koi8-r") {
		t.Errorf("error should name the encoding: %v", pe)
	}
}

func TestLoadVerbatimValues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "verbatim.csv",
		"Title,Notes\n\"  padded  \",\"line\nbreak\"\n")

	rs, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := rs.Records[0].Value(0); got != "  padded  " {
		t.Errorf("cell whitespace altered: %q", got)
	}
	if got := rs.Records[0].Value(1); got != "line\nbreak" {
		t.Errorf("embedded newline altered: %q", got)
	}
}
