package cmd

import (
	"github.com/spf13/cobra"

	"guessr/internal/config"
	"guessr/internal/engine"
	"guessr/internal/logging"
	"guessr/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "guessr",
	Short: "Numeric-estimation trivia progression engine",
	Long:  "Guessr tracks scoring, experience, skill ratings, and achievements for numeric-estimation trivia sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GUESSR_DB env var)")

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GUESSR_DB from the environment or .env, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg := config.Load(); cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openService opens the durable store and wires up the engine.
func openService(cmd *cobra.Command) (*engine.Service, *store.SQLiteStore, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return engine.New(db, logging.New()), db, nil
}
