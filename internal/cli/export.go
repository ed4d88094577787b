package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papersift-io/papersift/internal/models"
	"github.com/papersift-io/papersift/internal/store"
)

var (
	flagDest         string
	flagOnlyIncluded bool
	flagOnlyExcluded bool
)

var exportCmd = &cobra.Command{
	Use:   "export <screened.csv>",
	Short: "Write a filtered copy of a screening file",
	Long: `Export re-reads a screening file and writes a copy, optionally keeping
only the included or only the excluded records. Decision columns travel
with the rows, so the copy stays a valid screening file.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagDest, "dest", "", "destination file (default: <input>.included.csv or similar)")
	exportCmd.Flags().BoolVar(&flagOnlyIncluded, "included", false, "keep only included records")
	exportCmd.Flags().BoolVar(&flagOnlyExcluded, "excluded", false, "keep only excluded records")
}

func runExport(cmd *cobra.Command, args []string) error {
	if flagOnlyIncluded && flagOnlyExcluded {
		return fmt.Errorf("--included and --excluded cannot be combined")
	}

	set, err := store.Load(args[0], store.LoadOptions{
		KeyColumn:       flagKeyColumn,
		RequiredColumns: []string{models.ColumnInclude},
		Encoding:        flagEncoding,
	})
	if err != nil {
		return err
	}
	decisions := store.DecisionsFrom(set)

	filtered := set
	switch {
	case flagOnlyIncluded:
		filtered = store.Filter(set, func(r models.Record) bool {
			return decisions[r.Identity].Verdict == models.VerdictInclude
		})
	case flagOnlyExcluded:
		filtered = store.Filter(set, func(r models.Record) bool {
			return decisions[r.Identity].Verdict == models.VerdictExclude
		})
	}

	dest := flagDest
	if dest == "" {
		dest = deriveExportPath(args[0])
	}
	if err := store.Write(filtered, decisions, dest, flagEncoding); err != nil {
		return err
	}

	fmt.Printf("%s %d of %d records to %s\n",
		styleSuccess.Render("Wrote"), filtered.Len(), set.Len(), styleValue.Render(dest))
	return nil
}

func deriveExportPath(input string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	switch {
	case flagOnlyIncluded:
		return stem + ".included.csv"
	case flagOnlyExcluded:
		return stem + ".excluded.csv"
	}
	return stem + ".copy.csv"
}
