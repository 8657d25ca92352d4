package cmd

import (
	"github.com/abhisek/tutorkit/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutorkit",
	Short: "Learner knowledge state engine",
	Long:  "Tutorkit tracks per-skill mastery with Bayesian knowledge tracing, schedules reviews, and recommends what to study next.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORKIT_DB env var)")
	rootCmd.PersistentFlags().String("graph", "", "Path to a skill graph JSON document")
	rootCmd.PersistentFlags().String("learner", "default", "Learner id")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(nudgeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TUTORKIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
