package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/confidex/internal/logging"
	"github.com/abhisek/confidex/internal/store"
)

// env carries the global flags and the logger built from them.
type env struct {
	dbPath    string
	logLevel  string
	logFormat string

	log *zap.Logger
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	e := &env{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "confidex",
		Short: "Confidence scoring for answered assessment sessions",
		Long: `Confidex scores how confident a learner is in what they answered.

It combines correctness, timing and self-rated confidence into a per-question
score, aggregates per topic, and builds a four-dimension confidence profile
from how answers were written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			log, err := logging.New(e.logLevel, e.logFormat)
			if err != nil {
				return err
			}
			e.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&e.dbPath, "db", "", "Path to SQLite database file (overrides CONFIDEX_DB env var)")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&e.logFormat, "log-format", logging.FormatConsole, "Log format: console or json")

	root.AddCommand(newScoreCmd(e))
	root.AddCommand(newSessionCmd(e))
	root.AddCommand(newConceptsCmd(e))
	root.AddCommand(newExplainCmd(e))
	root.AddCommand(newLLMCmd(e))
	root.AddCommand(newVersionCmd())
	return root
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CONFIDEX_DB env var, then the default XDG path.
func (e *env) resolveDBPath() (string, error) {
	if e.dbPath != "" {
		return e.dbPath, store.EnsureDir(e.dbPath)
	}
	return store.DefaultDBPath()
}

func (e *env) openStore() (*store.Store, error) {
	dbPath, err := e.resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	e.log.Debug("store opened", zap.String("path", dbPath))
	return s, nil
}
