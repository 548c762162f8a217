package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbhznb/learnify/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		results, err := st.Results().Recent(cmd.Context(), 20)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		for _, res := range results {
			fmt.Printf("%s  %-22s %-10s %3d%%  (%d/%d)\n",
				res.TakenAt.Local().Format("2006-01-02 15:04"),
				res.Category.DisplayName(),
				res.Style,
				res.Percent(),
				res.Correct,
				res.Total(),
			)
		}
		return nil
	},
}
