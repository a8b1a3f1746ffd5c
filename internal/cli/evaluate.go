package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/jobfit/internal/config"
	"github.com/vijay-prabhu/jobfit/internal/evaluator"
	"github.com/vijay-prabhu/jobfit/internal/output"
	"github.com/vijay-prabhu/jobfit/internal/sink"
	"github.com/vijay-prabhu/jobfit/internal/source"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a table of job postings and write the results",
	Long: `Load job postings, score every posting and write the sorted results.

Input is taken from Google Sheets when a spreadsheet id is configured,
otherwise from the xlsx file, otherwise from the csv file.

Outputs (relative to the output directory):
  - full results xlsx, sorted by score
  - apply-only xlsx and csv (score 70 and above)
  - optional JSON file and sqlite database

Examples:
  jobfit evaluate
  jobfit evaluate --csv postings.csv --out-dir results
  jobfit evaluate --sheet-id 1AbC... --range "Postings!A1:Z"
  jobfit evaluate --db ~/.local/share/jobfit/results.db -o json`,
	RunE: runEvaluate,
}

var (
	evalInput   string
	evalCSV     string
	evalSheetID string
	evalRange   string
	evalOutDir  string
	evalDB      string
	evalJSONOut string
	evalTop     int
)

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evalInput, "input", "", "Input xlsx file")
	evaluateCmd.Flags().StringVar(&evalCSV, "csv", "", "Input csv file (used when the xlsx file is missing)")
	evaluateCmd.Flags().StringVar(&evalSheetID, "sheet-id", "", "Google Sheets spreadsheet id")
	evaluateCmd.Flags().StringVar(&evalRange, "range", "", "Google Sheets range in A1 notation")
	evaluateCmd.Flags().StringVar(&evalOutDir, "out-dir", "", "Output directory")
	evaluateCmd.Flags().StringVar(&evalDB, "db", "", "Also save the run to this sqlite database")
	evaluateCmd.Flags().StringVar(&evalJSONOut, "json-out", "", "Also write all evaluations to this JSON file")
	evaluateCmd.Flags().IntVar(&evalTop, "top", 10, "Number of postings to print (0 for all)")
}

// evaluateResult is the JSON output of the evaluate command
type evaluateResult struct {
	Source      string                 `json:"source"`
	Stats       evaluator.Stats        `json:"stats"`
	Evaluations []evaluator.Evaluation `json:"evaluations"`
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := applyEvaluateFlags(cmd, cfg); err != nil {
		return err
	}

	src, err := source.Resolve(cfg.Input, cfg.Sheets)
	if err != nil {
		return err
	}

	log.Info("loading postings", zap.String("source", src.Name()))

	// Authenticate before drawing progress; the OAuth flow may prompt
	if sheets, ok := src.(*source.SheetsSource); ok {
		if err := sheets.Authenticate(ctx); err != nil {
			return err
		}
	}

	t := NewTerminal()
	stop := t.Spin(fmt.Sprintf("Loading postings from %s...", src.Name()))
	batch, err := src.Load(ctx)
	stop()
	if err != nil {
		return fmt.Errorf("failed to load postings: %w", err)
	}

	log.Info("postings loaded", zap.Int("count", len(batch.Postings)))

	evals := newEvaluator(cfg).EvaluateBatch(batch.Postings)

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	if err := sink.WriteAll(ctx, sink.Targets(cfg, src.Name()), batch.Columns, evals, log); err != nil {
		return err
	}

	stats := evaluator.GetStats(evals)

	if outputFmt == "json" {
		return output.JSON(evaluateResult{
			Source:      src.Name(),
			Stats:       stats,
			Evaluations: evals,
		})
	}

	shown := evals
	if evalTop > 0 && len(shown) > evalTop {
		shown = shown[:evalTop]
	}

	if err := output.Output(outputFmt, shown); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	if err := output.Output(outputFmt, stats); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, t.Summary(stats))
	return nil
}

// applyEvaluateFlags overrides config values with the flags that were set
func applyEvaluateFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("input") {
		cfg.Input.XLSXPath = evalInput
	}
	if flags.Changed("csv") {
		cfg.Input.CSVPath = evalCSV
	}
	if flags.Changed("sheet-id") {
		cfg.Sheets.SpreadsheetID = evalSheetID
	}
	if flags.Changed("range") {
		cfg.Sheets.Range = evalRange
	}
	if flags.Changed("out-dir") {
		cfg.Output.Dir = evalOutDir
	}
	if flags.Changed("db") {
		cfg.Database.Path = evalDB
	}
	if flags.Changed("json-out") {
		cfg.Output.JSON = evalJSONOut
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
