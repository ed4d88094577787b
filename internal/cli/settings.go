package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papersift-io/papersift/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show the active settings",
	Long: `Settings prints the active configuration and where it lives. Edit the
file to change defaults; anything missing falls back to built-in values.`,
	RunE: runSettings,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	RunE:  runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	source := path
	if !config.FileExists(path) {
		source = "built-in defaults (run 'papersift settings init' to create the file)"
	}

	fmt.Printf("%s %s\n", styleLabel.Render("settings:      "), styleValue.Render(source))
	fmt.Printf("%s %s\n", styleLabel.Render("theme:         "), settings.Theme)
	fmt.Printf("%s %s\n", styleLabel.Render("key column:    "), orNone(settings.KeyColumn))
	fmt.Printf("%s %s\n", styleLabel.Render("display columns:"), strings.Join(settings.DisplayColumns, ", "))
	fmt.Printf("%s %s\n", styleLabel.Render("keywords:      "), orNone(strings.Join(settings.Keywords, ", ")))
	fmt.Printf("%s %s\n", styleLabel.Render("reasons:       "), strings.Join(settings.Reasons, ", "))
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}
	if config.FileExists(path) {
		return fmt.Errorf("%s already exists", path)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", styleSuccess.Render("Wrote"), styleValue.Render(path))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return styleHint.Render("(none)")
	}
	return s
}
