package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Input.XLSXPath != "./sample_data/job_descriptions.xlsx" {
		t.Errorf("expected default xlsx path, got %s", cfg.Input.XLSXPath)
	}

	if cfg.Output.ApplyCSV != "job_descriptions_acceptance_apply_only.csv" {
		t.Errorf("expected default apply csv, got %s", cfg.Output.ApplyCSV)
	}

	if cfg.Sheets.Enabled() {
		t.Error("expected sheets to be disabled by default")
	}

	if cfg.Database.Enabled() {
		t.Error("expected database output to be disabled by default")
	}

	if len(cfg.Profile.Skills) != 8 {
		t.Errorf("expected 8 profile skills, got %d", len(cfg.Profile.Skills))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "no input",
			modify: func(c *Config) {
				c.Input.XLSXPath = ""
				c.Input.CSVPath = ""
			},
			wantErr: true,
		},
		{
			name: "sheets only",
			modify: func(c *Config) {
				c.Input.XLSXPath = ""
				c.Input.CSVPath = ""
				c.Sheets.SpreadsheetID = "abc123"
			},
			wantErr: false,
		},
		{
			name: "sheets without range",
			modify: func(c *Config) {
				c.Sheets.SpreadsheetID = "abc123"
				c.Sheets.Range = ""
			},
			wantErr: true,
		},
		{
			name: "bad xlsx extension",
			modify: func(c *Config) {
				c.Output.FullXLSX = "results.csv"
			},
			wantErr: true,
		},
		{
			name: "empty locality",
			modify: func(c *Config) {
				c.Signals.FarLocalities = []string{"palo alto", " "}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	data := `
[input]
csv_path = "postings.csv"

[output]
dir = "out"
apply_csv = ""

[signals]
far_localities = ["new york", "boston"]

[profile]
default_title = "Product Lead"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Input.CSVPath != "postings.csv" {
		t.Errorf("CSVPath = %q, want %q", cfg.Input.CSVPath, "postings.csv")
	}
	if cfg.Input.XLSXPath != "./sample_data/job_descriptions.xlsx" {
		t.Errorf("expected default xlsx path to survive, got %q", cfg.Input.XLSXPath)
	}
	if cfg.Output.ApplyCSV != "" {
		t.Errorf("expected apply csv to be disabled, got %q", cfg.Output.ApplyCSV)
	}
	if len(cfg.Signals.FarLocalities) != 2 {
		t.Errorf("expected 2 localities, got %v", cfg.Signals.FarLocalities)
	}
	if cfg.Profile.DefaultTitle != "Product Lead" {
		t.Errorf("DefaultTitle = %q, want %q", cfg.Profile.DefaultTitle, "Product Lead")
	}
	if got := cfg.OutputPath(cfg.Output.FullXLSX); got != filepath.Join("out", "job_descriptions_acceptance.xlsx") {
		t.Errorf("OutputPath() = %q", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	if _, err := Load(path); err == nil {
		t.Error("expected error for missing config file")
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Output.FullXLSX != "job_descriptions_acceptance.xlsx" {
		t.Errorf("expected defaults, got %+v", cfg.Output)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cfg := Default()
	cfg.Output.Dir = "results"

	tests := []struct {
		name     string
		expected string
	}{
		{"", ""},
		{"/abs/out.xlsx", "/abs/out.xlsx"},
		{"out.csv", filepath.Join("results", "out.csv")},
	}

	for _, tt := range tests {
		if got := cfg.OutputPath(tt.name); got != tt.expected {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvSpreadsheetID, "sheet-123")
	t.Setenv(EnvDatabasePath, "/tmp/jobfit.db")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}

	if cfg.Sheets.SpreadsheetID != "sheet-123" {
		t.Errorf("SpreadsheetID = %q, want sheet-123", cfg.Sheets.SpreadsheetID)
	}
	if !cfg.Sheets.Enabled() {
		t.Error("Sheets should be enabled by the environment")
	}
	if cfg.Database.Path != "/tmp/jobfit.db" {
		t.Errorf("Database.Path = %q, want /tmp/jobfit.db", cfg.Database.Path)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	if err := LoadDotEnv(filepath.Join(dir, ".env")); err != nil {
		t.Errorf("LoadDotEnv() on missing file error = %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(EnvSheetsRange+"=Postings!A1:H\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	// Register cleanup for the variable the file sets
	t.Setenv(EnvSheetsRange, "")
	os.Unsetenv(EnvSheetsRange)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(EnvSheetsRange); got != "Postings!A1:H" {
		t.Errorf("%s = %q, want Postings!A1:H", EnvSheetsRange, got)
	}
}
