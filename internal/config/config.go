package config

import "github.com/vijay-prabhu/jobfit/internal/resume"

// Config represents the application configuration
type Config struct {
	Input    InputConfig    `toml:"input"`
	Sheets   SheetsConfig   `toml:"sheets"`
	Output   OutputConfig   `toml:"output"`
	Database DatabaseConfig `toml:"database"`
	Signals  SignalsConfig  `toml:"signals"`
	Profile  resume.Profile `toml:"profile"`
	Log      LogConfig      `toml:"log"`
}

// InputConfig contains tabular input settings
type InputConfig struct {
	XLSXPath string `toml:"xlsx_path"`
	CSVPath  string `toml:"csv_path"` // Used when the xlsx file does not exist
	Sheet    string `toml:"sheet"`    // Worksheet name; empty means the first sheet
}

// SheetsConfig contains Google Sheets input settings
type SheetsConfig struct {
	SpreadsheetID   string `toml:"spreadsheet_id"`
	Range           string `toml:"range"`
	CredentialsPath string `toml:"credentials_path"`
	TokenPath       string `toml:"token_path"`
}

// Enabled reports whether postings should be read from Google Sheets
func (s SheetsConfig) Enabled() bool {
	return s.SpreadsheetID != ""
}

// OutputConfig contains output file settings. Empty paths disable a writer.
type OutputConfig struct {
	Dir       string `toml:"dir"`
	FullXLSX  string `toml:"full_xlsx"`
	ApplyXLSX string `toml:"apply_xlsx"`
	ApplyCSV  string `toml:"apply_csv"`
	JSON      string `toml:"json"`
}

// DatabaseConfig contains the optional sqlite output settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Enabled reports whether results are also written to sqlite
func (d DatabaseConfig) Enabled() bool {
	return d.Path != ""
}

// SignalsConfig tunes signal extraction
type SignalsConfig struct {
	FarLocalities []string `toml:"far_localities"`
}

// LogConfig contains logging settings
type LogConfig struct {
	JSON  bool `toml:"json"`
	Debug bool `toml:"debug"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Input: InputConfig{
			XLSXPath: "./sample_data/job_descriptions.xlsx",
			CSVPath:  "./sample_data/job_descriptions.csv",
		},
		Sheets: SheetsConfig{
			Range:           "A1:Z",
			CredentialsPath: "~/.config/jobfit/credentials.json",
			TokenPath:       "~/.config/jobfit/token.json",
		},
		Output: OutputConfig{
			Dir:       ".",
			FullXLSX:  "job_descriptions_acceptance.xlsx",
			ApplyXLSX: "job_descriptions_acceptance_apply_only.xlsx",
			ApplyCSV:  "job_descriptions_acceptance_apply_only.csv",
		},
		Profile: resume.DefaultProfile(),
	}
}
