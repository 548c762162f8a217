package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nbhznb/learnify/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnify",
	Short: "Exam practice in the terminal",
	Long:  "Learnify — terminal quiz app for 11+ exam practice: maths, English, verbal, non-verbal and spatial reasoning.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Question/auth API base URL (overrides LEARNIFY_API_URL env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNIFY_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveAPIURL returns the API base using --api-url (highest priority),
// then LEARNIFY_API_URL env var, then the hosted default.
func resolveAPIURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		return u
	}
	return os.Getenv("LEARNIFY_API_URL")
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNIFY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
