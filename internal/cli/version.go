package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/papersift-io/papersift/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styleBrand.Render(buildinfo.Short()))
		fmt.Printf("  %s %s/%s\n", styleLabel.Render("os/arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  %s %s\n", styleLabel.Render("go:     "), runtime.Version())
	},
}
