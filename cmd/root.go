package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/pathwise/internal/app"
	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/store"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Personalized learning path generator",
	Long: "Pathwise turns a learning-style assessment and career goals into an ordered,\n" +
		"time-boxed learning pathway with curated resources for every topic.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger, err = newLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command; Ctrl-C cancels in-flight provider calls.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a .env file (default ./.env when present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(pathwayCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger logs JSON to stderr: warnings by default, everything when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openApp builds the service container for commands that need providers.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	c := cfg
	c.DBPath = dbPath
	return app.New(cmd.Context(), c, logger)
}

// openStore opens only the record store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
