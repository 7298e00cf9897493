package cmd

import (
	"fmt"

	"github.com/abhisek/tutorlink/internal/config"
	"github.com/abhisek/tutorlink/internal/logging"
	"github.com/abhisek/tutorlink/internal/store"
	"github.com/spf13/cobra"
)

// cfg is resolved once per invocation in the persistent pre-run.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:               "tutorlink",
	Short:             "Encode, decode and journal tutoring messages",
	Long:              "tutorlink works with the messages exchanged between a tutoring domain, its pedagogical model and the tutor user interface.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Journal database path or DSN (overrides TUTORLINK_DB)")
	pf.String("db-driver", "", "Journal database driver: sqlite or postgres (overrides TUTORLINK_DB_DRIVER)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides TUTORLINK_LOG_LEVEL)")
	pf.String("env-file", ".env", "Environment file to load")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds cfg from the env file, the environment and flags, in
// increasing priority, and configures logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg = config.FromEnv()
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("db-driver"); v != "" {
		cfg.DBDriver = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Setup(cfg.Log, cmd.ErrOrStderr())
	return nil
}

// openStore opens the journal database selected by cfg.
func openStore() (*store.Store, error) {
	dsn := cfg.DBPath
	if cfg.DBDriver == config.DriverSQLite {
		var err error
		if dsn == "" {
			dsn, err = store.DefaultDBPath()
		} else {
			err = store.EnsureDir(dsn)
		}
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	s, err := store.OpenDriver(cfg.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
