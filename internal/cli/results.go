package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/jobfit/internal/database"
	"github.com/vijay-prabhu/jobfit/internal/output"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List evaluations saved to a sqlite database",
	Long: `List evaluations from a database written by 'jobfit evaluate --db'.

Shows the latest run unless --run is given.

Examples:
  jobfit results --db results.db
  jobfit results --db results.db --min-score 70
  jobfit results --db results.db --runs
  jobfit results --db results.db --delete 3f2a9c1e-...`,
	RunE: runResults,
}

var (
	resultsDB       string
	resultsRun      string
	resultsMinScore int
	resultsDecision string
	resultsLimit    int
	resultsRuns     bool
	resultsDelete   string
)

func init() {
	rootCmd.AddCommand(resultsCmd)

	resultsCmd.Flags().StringVar(&resultsDB, "db", "", "Database path (default: database.path from config)")
	resultsCmd.Flags().StringVar(&resultsRun, "run", "", "Run id (default: latest run)")
	resultsCmd.Flags().IntVar(&resultsMinScore, "min-score", 0, "Only show evaluations scoring at least this")
	resultsCmd.Flags().StringVar(&resultsDecision, "decision", "", "Filter by decision (\"Apply (Priority)\", Apply, Skip)")
	resultsCmd.Flags().IntVarP(&resultsLimit, "limit", "n", 0, "Maximum number of evaluations (0 for all)")
	resultsCmd.Flags().BoolVar(&resultsRuns, "runs", false, "List runs instead of evaluations")
	resultsCmd.Flags().StringVar(&resultsDelete, "delete", "", "Delete the run with this id")
}

func runResults(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path := resultsDB
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path = cfg.Database.Path
	}
	if path == "" {
		return errors.New("no database configured: pass --db or set database.path")
	}

	db, err := database.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if resultsDelete != "" {
		if err := db.DeleteRun(ctx, resultsDelete); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", resultsDelete)
		return nil
	}

	if resultsRuns {
		runs, err := db.ListRuns(ctx, resultsLimit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		return output.Output(outputFmt, runs)
	}

	runID := resultsRun
	if runID == "" {
		run, err := db.LatestRun(ctx)
		if err != nil {
			return fmt.Errorf("failed to get latest run: %w", err)
		}
		if run == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs found.")
			return nil
		}
		runID = run.ID
	}

	opts := database.ListOptions{
		RunID:    &runID,
		MinScore: resultsMinScore,
		Limit:    resultsLimit,
	}
	if resultsDecision != "" {
		opts.Decision = &resultsDecision
	}

	evals, err := db.ListEvaluations(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list evaluations: %w", err)
	}

	if evals == nil {
		evals = []database.Evaluation{}
	}
	return output.Output(outputFmt, evals)
}
