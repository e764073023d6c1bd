package main

import (
	"fmt"
	"os"

	"github.com/phravins/forgeweb/internal/config"
	"github.com/phravins/forgeweb/internal/history"
	"github.com/phravins/forgeweb/internal/output"
	"github.com/phravins/forgeweb/internal/scaffold"
	"github.com/phravins/forgeweb/internal/tui"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "forgeweb",
	Version: config.Version,
	Short:   "Scaffold web application projects",
	Long: `ForgeWeb scaffolds a Dockerized Django project skeleton:
settings package, Dockerfile, docker-compose.yml and README,
from a handful of answers (name, slug, port, database).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(scaffold.NewCmd)
	rootCmd.AddCommand(scaffold.PreviewCmd)
	rootCmd.AddCommand(history.HistoryCmd)
}

func main() {
	// If args were passed (CLI mode), just run once
	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(output.ErrorStyle.Render(err.Error()))
			os.Exit(scaffold.ExitCode(err))
		}
		return
	}
	// Default wizard mode
	if err := tui.RunWizard(); err != nil {
		fmt.Println(output.ErrorStyle.Render(err.Error()))
		os.Exit(scaffold.ExitCode(err))
	}
}
