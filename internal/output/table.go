package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/jobfit/internal/database"
	"github.com/vijay-prabhu/jobfit/internal/evaluator"
	"github.com/vijay-prabhu/jobfit/internal/signals"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []evaluator.Evaluation:
		return evaluationsTable(w, v)
	case *evaluator.Evaluation:
		return evaluationDetail(w, v)
	case evaluator.Stats:
		return statsTable(w, &v)
	case *evaluator.Stats:
		return statsTable(w, v)
	case []database.Evaluation:
		return storedTable(w, v)
	case []database.Run:
		return runsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func evaluationsTable(w io.Writer, evals []evaluator.Evaluation) error {
	if len(evals) == 0 {
		fmt.Fprintln(w, "No postings evaluated.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Score", "Decision", "Company", "Title", "Salary Ceiling")

	for _, e := range evals {
		row := []string{
			strconv.Itoa(e.Result.Score),
			string(e.Decision),
			truncate(e.Posting.Company, 24),
			truncate(e.Posting.Title, 40),
			FormatSalaryK(e.Signals.SalaryCeilingK),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

func evaluationDetail(w io.Writer, e *evaluator.Evaluation) error {
	p := e.Posting
	b := e.Signals
	bd := e.Result.Breakdown

	if p.Title != "" || p.Company != "" {
		fmt.Fprintf(w, "Posting:     %s at %s\n", valueOr(p.Title, "-"), valueOr(p.Company, "-"))
	}
	fmt.Fprintf(w, "Score:       %d\n", e.Result.Score)
	fmt.Fprintf(w, "Decision:    %s\n", e.Decision)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Signals:")
	fmt.Fprintf(w, "  Responsibilities:  %d\n", b.ResponsibilityHits())
	fmt.Fprintf(w, "  Domain:            %d\n", b.Hits[signals.CategoryDomain])
	fmt.Fprintf(w, "  Tools:             %d\n", b.Hits[signals.CategoryTools])
	fmt.Fprintf(w, "  AI:                %s\n", yesNo(b.Has(signals.CategoryAI)))
	fmt.Fprintf(w, "  Bilingual:         %s\n", yesNo(b.Has(signals.CategoryBilingual)))
	fmt.Fprintf(w, "  SQL required:      %s\n", yesNo(b.SQLRequired))
	fmt.Fprintf(w, "  CRM required:      %s\n", yesNo(b.CRMRequired))
	fmt.Fprintf(w, "  Remote:            %s\n", yesNo(b.Remote))
	fmt.Fprintf(w, "  Far on-site:       %s\n", yesNo(b.FarOnSite))
	fmt.Fprintf(w, "  Internship:        %s\n", yesNo(b.Internship))
	fmt.Fprintf(w, "  Full-time:         %s\n", yesNo(b.FullTime))
	fmt.Fprintf(w, "  Salary ceiling:    %s\n", FormatSalaryK(b.SalaryCeilingK))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Breakdown:")
	fmt.Fprintf(w, "  Required score:    %d\n", bd.RequiredScore)
	fmt.Fprintf(w, "  Senior score:      %d\n", bd.SeniorScore)
	fmt.Fprintf(w, "  Responsibility:    %.2f\n", bd.ResponsibilityCoverage)
	fmt.Fprintf(w, "  Domain coverage:   %.2f\n", bd.DomainCoverage)
	fmt.Fprintf(w, "  Tooling coverage:  %.2f\n", bd.ToolingCoverage)
	fmt.Fprintf(w, "  Weighted base:     %.2f\n", bd.WeightedBase)
	fmt.Fprintf(w, "  Bilingual bonus:   %+.0f\n", bd.BilingualBonus)
	fmt.Fprintf(w, "  AI bonus:          %+.0f\n", bd.AIBonus)
	fmt.Fprintf(w, "  Far on-site x0.70: %s\n", yesNo(bd.FarOnSitePenalty))
	fmt.Fprintf(w, "  Internship -> 0:   %s\n", yesNo(bd.InternshipOverride))
	fmt.Fprintf(w, "  Raw:               %.2f\n", bd.Raw)

	if e.Resume.IsEmpty() {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resume:")
	fmt.Fprintln(w, wordWrap(e.Resume.Summary, 76))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Skills: %s\n", e.Resume.Skills)
	fmt.Fprintln(w)
	fmt.Fprintln(w, e.Resume.Bullets)

	return nil
}

func statsTable(w io.Writer, s *evaluator.Stats) error {
	fmt.Fprintln(w, "Evaluation Summary")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Postings evaluated:     %s\n", humanize.Comma(int64(s.Total)))
	fmt.Fprintf(w, "Apply (Priority):       %s\n", humanize.Comma(int64(s.Priority)))
	fmt.Fprintf(w, "Apply:                  %s\n", humanize.Comma(int64(s.Apply)))
	fmt.Fprintf(w, "Skip:                   %s\n", humanize.Comma(int64(s.Skip)))

	if s.Total > 0 {
		fmt.Fprintf(w, "Mean score:             %.1f\n", s.MeanScore)
		fmt.Fprintf(w, "Top score:              %d\n", s.TopScore)
	}

	return nil
}

func storedTable(w io.Writer, evals []database.Evaluation) error {
	if len(evals) == 0 {
		fmt.Fprintln(w, "No evaluations found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Score", "Decision", "Company", "Title", "Location")

	for _, e := range evals {
		row := []string{
			strconv.Itoa(e.AcceptScore),
			e.Decision,
			truncate(e.Company, 24),
			truncate(e.Title, 40),
			truncate(e.Location, 24),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

func runsTable(w io.Writer, runs []database.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Run", "Source", "Postings", "Apply", "Created")

	for _, r := range runs {
		row := []string{
			r.ID[:min(8, len(r.ID))],
			truncate(r.Source, 40),
			humanize.Comma(int64(r.Total)),
			humanize.Comma(int64(r.ApplyCount)),
			humanize.Time(r.CreatedAt),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

// FormatSalaryK formats a salary ceiling in thousands as dollars
func FormatSalaryK(k *int) string {
	if k == nil {
		return "-"
	}
	return "$" + humanize.Comma(int64(*k)*1000)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// truncate shortens s to limit runes, appending an ellipsis when truncated
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// wordWrap wraps text at the specified width
func wordWrap(text string, width int) string {
	var result strings.Builder

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) <= width {
				current += " " + word
				continue
			}
			result.WriteString(current)
			result.WriteString("\n")
			current = word
		}
		result.WriteString(current)
		result.WriteString("\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}
