// Package cli implements the papersift CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/papersift-io/papersift/internal/config"
	"github.com/papersift-io/papersift/internal/keyword"
	"github.com/papersift-io/papersift/internal/logging"
	"github.com/papersift-io/papersift/internal/models"
	"github.com/papersift-io/papersift/internal/screen"
	"github.com/papersift-io/papersift/internal/store"
)

var (
	flagOut         string
	flagFromScratch bool
	flagRedo        bool
	flagKeywords    []string
	flagKeyColumn   string
	flagEncoding    string
	flagTheme       string
	flagNoColor     bool
	flagForceColor  bool
	flagWidth       int
	flagDebug       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "papersift <input.csv>",
	Short: "Screen bibliographic CSV exports record by record",
	Long: `Papersift walks you through a bibliographic CSV export one record at a
time and captures an include/exclude decision for each. Every decision is
written straight back to the output file, so a session can be interrupted
and resumed at any point without losing work.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(flagDebug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runScreen,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("Error:"), err)
	}
	return err
}

func init() {
	rootCmd.Flags().StringVar(&flagOut, "out", "", "output file (default: <input>.screened.csv)")
	rootCmd.Flags().BoolVar(&flagFromScratch, "from-scratch", false, "ignore an existing output file and start over")
	rootCmd.Flags().BoolVar(&flagRedo, "redo-completed", false, "revisit records that already have a decision")
	rootCmd.Flags().StringArrayVarP(&flagKeywords, "keyword", "k", nil, "highlight keyword, * matches within a word (repeatable)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: "+strings.Join(screen.ThemeNames(), ", "))
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colors")
	rootCmd.Flags().BoolVar(&flagForceColor, "force-color", false, "use colors even when stdout is not a terminal")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "cap panel width (0 = full terminal width)")

	rootCmd.PersistentFlags().StringVar(&flagKeyColumn, "key-column", "", "column holding a unique record id (default: row number)")
	rootCmd.PersistentFlags().StringVar(&flagEncoding, "encoding", "", "file encoding: "+strings.Join(store.EncodingNames(), ", "))
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write a debug log under ~/"+config.GlobalDirName)

	// Subcommands (alphabetical)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	input := args[0]

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	theme := settings.Theme
	if cmd.Flags().Changed("theme") {
		theme = flagTheme
	}
	keywords := settings.Keywords
	if cmd.Flags().Changed("keyword") {
		keywords = flagKeywords
	}
	keyColumn := settings.KeyColumn
	if cmd.Flags().Changed("key-column") {
		keyColumn = flagKeyColumn
	}

	styled, err := screen.NewTheme(theme, plainOutput())
	if err != nil {
		return err
	}

	set, err := store.Load(input, store.LoadOptions{
		KeyColumn:       keyColumn,
		RequiredColumns: settings.DisplayColumns,
		Encoding:        flagEncoding,
	})
	if err != nil {
		return err
	}
	logger.Info("input loaded",
		zap.String("path", input),
		zap.Int("records", set.Len()),
		zap.String("key_column", keyColumn))

	out := flagOut
	if out == "" {
		out = store.DeriveOutputPath(input)
	}
	ledger, err := store.OpenLedger(set, out, store.LedgerOptions{
		Encoding:    flagEncoding,
		FromScratch: flagFromScratch,
	})
	if err != nil {
		return err
	}
	logger.Info("ledger opened",
		zap.String("path", out),
		zap.Int("decided", ledger.Count()),
		zap.Int("pending", len(ledger.Pending())))

	startedAt := models.Timestamp()
	outcome, err := screen.Run(screen.Config{
		Set:            set,
		Ledger:         ledger,
		Matcher:        keyword.New(keywords),
		DisplayColumns: settings.DisplayColumns,
		Reasons:        settings.Reasons,
		Theme:          styled,
		WidthCap:       flagWidth,
		RedoCompleted:  flagRedo,
		WatchInput:     filepath.Clean(input) != filepath.Clean(out),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	writeSessionLog(outcome, input, out, startedAt, ledger.Trail())
	printOutcome(outcome, input, out)
	return nil
}

// plainOutput decides whether styling should be dropped entirely.
func plainOutput() bool {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		return true
	}
	if flagForceColor {
		return false
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

func writeSessionLog(outcome *screen.Outcome, input, out, startedAt string, trail []string) {
	entry := &models.SessionLog{
		Input:     input,
		Output:    out,
		StartedAt: startedAt,
		EndedAt:   models.Timestamp(),
		Status:    outcome.Status,
		Decided:   outcome.Stats.Decided(),
		Included:  outcome.Stats.Included,
		Excluded:  outcome.Stats.Excluded,
		Pending:   outcome.Stats.Pending,
	}
	path, err := config.WriteSessionLog(entry, trail)
	if err != nil {
		// The session itself succeeded; a failed log write is not fatal.
		logger.Warn("failed to write session log", zap.Error(err))
		return
	}
	logger.Info("session log written", zap.String("path", path))
}

func printOutcome(outcome *screen.Outcome, input, out string) {
	stats := outcome.Stats
	if outcome.Status == screen.StatusCompleted {
		fmt.Println(styleSuccess.Render("Screening complete."))
	} else {
		fmt.Println(styleWarning.Render("Screening interrupted, progress saved."))
	}
	fmt.Printf("  %s %d included, %d excluded, %d pending of %d\n",
		styleLabel.Render("decisions:"), stats.Included, stats.Excluded, stats.Pending, stats.Total)
	fmt.Printf("  %s %s\n", styleLabel.Render("output:"), styleValue.Render(out))
	if stats.Pending > 0 {
		fmt.Println(styleHint.Render(fmt.Sprintf("  run 'papersift %s' again to pick up where you left off", input)))
	}
}
