package history

import (
	"fmt"

	"github.com/phravins/forgeweb/internal/output"
	"github.com/spf13/cobra"
)

var pruneDays int

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously scaffolded projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pruneDays > 0 {
			if err := Prune(pruneDays); err != nil {
				return err
			}
			output.Info("pruned history", "older_than_days", pruneDays)
		}

		entries, err := Load()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No projects scaffolded yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-20s %-12s port %-5d  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Slug, e.Database, e.Port, e.Path)
		}
		return nil
	},
}

func init() {
	HistoryCmd.Flags().IntVar(&pruneDays, "prune", 0, "drop entries older than N days before listing")
}
