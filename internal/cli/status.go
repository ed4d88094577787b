package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/papersift-io/papersift/internal/models"
	"github.com/papersift-io/papersift/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status <screened.csv>",
	Short: "Show screening progress for a file",
	Long: `Status reads a screening file and summarizes it: how many records
carry a verdict, the split between included and excluded, and the
exclusion reasons seen so far. The file is not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	set, err := store.Load(args[0], store.LoadOptions{
		KeyColumn:       flagKeyColumn,
		RequiredColumns: []string{models.ColumnInclude},
		Encoding:        flagEncoding,
	})
	if err != nil {
		return err
	}

	stats := models.NewStats(set.Len())
	for _, d := range store.DecisionsFrom(set) {
		stats.Add(d)
	}

	fmt.Printf("%s: %d records\n", styleValue.Render(args[0]), stats.Total)
	fmt.Printf("  %s %s\n", styleLabel.Render("included"), styleSuccess.Render(fmt.Sprintf("%6d", stats.Included)))
	fmt.Printf("  %s %s\n", styleLabel.Render("excluded"), styleError.Render(fmt.Sprintf("%6d", stats.Excluded)))
	printReasonBreakdown(stats)
	fmt.Printf("  %s %6d\n", styleLabel.Render("pending "), stats.Pending)
	fmt.Println(styleHint.Render(fmt.Sprintf("%.0f%% complete", stats.Fraction()*100)))
	return nil
}

func printReasonBreakdown(stats *models.Stats) {
	if len(stats.Reasons) == 0 {
		return
	}
	reasons := make([]string, 0, len(stats.Reasons))
	for r := range stats.Reasons {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool {
		if stats.Reasons[reasons[i]] != stats.Reasons[reasons[j]] {
			return stats.Reasons[reasons[i]] > stats.Reasons[reasons[j]]
		}
		return reasons[i] < reasons[j]
	})
	for _, r := range reasons {
		fmt.Printf("    %-18s %4d\n", r, stats.Reasons[r])
	}
}
