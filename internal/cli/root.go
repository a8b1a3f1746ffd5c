package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/jobfit/internal/config"
	"github.com/vijay-prabhu/jobfit/internal/evaluator"
	"github.com/vijay-prabhu/jobfit/internal/logger"
	"github.com/vijay-prabhu/jobfit/internal/scoring"
	"github.com/vijay-prabhu/jobfit/internal/signals"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	debug      bool
	jsonLog    bool

	log = zap.NewNop()
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "Score job postings and draft tailored resume fragments",
	Long: `jobfit reads a table of job postings, estimates how likely each one is
to be worth applying to, and drafts a resume summary, skills line and
experience bullets for the postings that clear the apply threshold.

It provides:
  - Postings from xlsx, csv or a Google Sheets range
  - A deterministic 0-92 acceptance score with a full breakdown
  - Apply / Apply (Priority) / Skip decisions
  - xlsx, csv, JSON and sqlite outputs`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

// Execute runs the root command
func Execute() error {
	defer func() { _ = log.Sync() }()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/jobfit/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json-log", "j", false,
		"write logs as JSON")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "jobfit", "config.toml")
	}
}

func setupLogger(cmd *cobra.Command, args []string) error {
	l, err := logger.New(jsonLog, debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	log = l
	return nil
}

// loadConfig loads .env, then the config file or defaults. Log settings
// from the file apply on top of the command-line flags.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	if (cfg.Log.JSON && !jsonLog) || (cfg.Log.Debug && !debug) {
		l, err := logger.New(jsonLog || cfg.Log.JSON, debug || cfg.Log.Debug)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		log = l
	}

	return cfg, nil
}

func newEvaluator(cfg *config.Config) *evaluator.Evaluator {
	patterns := signals.NewPatterns(cfg.Signals.FarLocalities)
	return evaluator.New(patterns, scoring.DefaultScorerConfig(), cfg.Profile, log)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jobfit %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", buildTime)
	},
}
