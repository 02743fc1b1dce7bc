package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/courseforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "courseforge",
	Short: "AI lesson generator for programming courses",
	Long:  "Courseforge generates complete programming lessons — worked examples, assignments, tests, and scaffolding — from a topic name or config file, with AI content and deterministic fallbacks.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSEFORGE_DB env var)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COURSEFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
