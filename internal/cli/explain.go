package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/jobfit/internal/output"
	"github.com/vijay-prabhu/jobfit/internal/posting"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Score a single posting and show how the score was reached",
	Long: `Score one posting and print its signals, the score breakdown and the
resume fragment.

The description is read from --description, or from --file ("-" reads stdin).

Examples:
  jobfit explain --title "Product Manager" --company Acme --file jd.txt
  pbpaste | jobfit explain --file - --location "Palo Alto, CA"
  jobfit explain --description "Own the roadmap. SQL required." -o json`,
	RunE: runExplain,
}

var (
	explainDescription string
	explainFile        string
	explainTitle       string
	explainCompany     string
	explainLocation    string
	explainSalary      string
)

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVar(&explainDescription, "description", "", "Posting description")
	explainCmd.Flags().StringVar(&explainFile, "file", "", "Read the description from a file (- for stdin)")
	explainCmd.Flags().StringVar(&explainTitle, "title", "", "Posting title")
	explainCmd.Flags().StringVar(&explainCompany, "company", "", "Company name")
	explainCmd.Flags().StringVar(&explainLocation, "location", "", "Posting location")
	explainCmd.Flags().StringVar(&explainSalary, "salary", "", "Posting salary text")

	explainCmd.MarkFlagsMutuallyExclusive("description", "file")
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	description := explainDescription
	if explainFile != "" {
		description, err = readDescription(cmd.InOrStdin(), explainFile)
		if err != nil {
			return err
		}
	}

	p := posting.Posting{
		Title:       explainTitle,
		Company:     explainCompany,
		Description: description,
		Location:    explainLocation,
		Salary:      explainSalary,
	}

	e := newEvaluator(cfg).Evaluate(p)
	return output.Output(outputFmt, &e)
}

func readDescription(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read description: %w", err)
	}
	return string(data), nil
}
