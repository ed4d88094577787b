package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papersift-io/papersift/internal/config"
)

var logsCmd = &cobra.Command{
	Use:   "logs [session-id]",
	Short: "List past screening sessions",
	Long: `Logs lists past screening sessions, newest first. Pass a session id to
print that session's full log, including its decision trail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func runLogs(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return showSessionLog(args[0])
	}

	entries, err := config.ListSessionLogs()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	for _, e := range entries {
		badge := styleSuccess.Render("completed  ")
		if e.Status != "completed" {
			badge = styleWarning.Render("interrupted")
		}
		fmt.Printf("%s  %s  %s  %s\n",
			styleValue.Render(e.SessionID),
			badge,
			fmt.Sprintf("%3d decided", e.Decided),
			styleLabel.Render(e.Input))
	}
	return nil
}

func showSessionLog(sessionID string) error {
	entry, trail, err := config.ReadSessionLog(sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleLabel.Render("session:"), styleValue.Render(entry.SessionID))
	fmt.Printf("%s %s\n", styleLabel.Render("input:  "), entry.Input)
	fmt.Printf("%s %s\n", styleLabel.Render("output: "), entry.Output)
	fmt.Printf("%s %s to %s\n", styleLabel.Render("ran:    "), entry.StartedAt, entry.EndedAt)
	fmt.Printf("%s %s\n", styleLabel.Render("status: "), entry.Status)
	fmt.Printf("%s %d included, %d excluded, %d pending\n",
		styleLabel.Render("tally:  "), entry.Included, entry.Excluded, entry.Pending)
	if trail != "" {
		fmt.Println()
		fmt.Println(trail)
	}
	return nil
}
