package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/jobfit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "Config file already exists at %s\n", configPath)
		fmt.Fprintln(out, "Use 'jobfit config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Created config file at %s\n", configPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Point [input] at your postings table (xlsx or csv)")
	fmt.Fprintln(out, "  2. Or set sheets.spreadsheet_id and save Google credentials.json")
	fmt.Fprintln(out, "  3. Edit [profile] with your own summary, skills and bullets")
	fmt.Fprintln(out, "  4. Run 'jobfit evaluate'")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(configPath)
	if err == nil {
		fmt.Fprintf(out, "# Config file: %s\n\n", configPath)
		fmt.Fprintln(out, string(data))
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// No file: show the built-in defaults
	data, err = toml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to encode defaults: %w", err)
	}

	fmt.Fprintln(out, "# No config file found, showing defaults. Run 'jobfit config init' to create one.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, string(data))
	return nil
}

const defaultConfig = `# jobfit configuration

[input]
xlsx_path = "./sample_data/job_descriptions.xlsx"
csv_path = "./sample_data/job_descriptions.csv"   # used when the xlsx file is missing
sheet = ""                                         # xlsx sheet, default: first sheet

[sheets]
# Set spreadsheet_id to read postings from Google Sheets instead of a file
spreadsheet_id = ""
range = "A1:Z"
credentials_path = "~/.config/jobfit/credentials.json"
token_path = "~/.config/jobfit/token.json"

[output]
dir = "."
full_xlsx = "job_descriptions_acceptance.xlsx"
apply_xlsx = "job_descriptions_acceptance_apply_only.xlsx"
apply_csv = "job_descriptions_acceptance_apply_only.csv"
json = ""                                          # empty disables

[database]
path = ""   # e.g. "~/.local/share/jobfit/results.db"

[signals]
# Far on-site localities; empty uses the built-in Bay Area list
far_localities = []

[log]
json = false
debug = false

# [profile] overrides the resume text; omitted fields keep the defaults
# [profile]
# default_title = "Product Manager"
# default_company = "Company"
# skills = ["Product Strategy & Roadmapping", "A/B Testing", "SQL"]
`
