package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'jobfit config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg.finish()
}

// LoadOrDefault loads the config file, falling back to defaults when it does not exist
func LoadOrDefault(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		return Default().finish()
	}

	return Load(path)
}

func (c *Config) finish() (*Config, error) {
	c.applyEnv()

	// Expand paths in config
	if err := c.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}

// LoadDotEnv loads environment variables from a .env file if it exists.
// Variables already set in the environment are kept.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Environment variables that override config file values
const (
	EnvSpreadsheetID   = "JOBFIT_SPREADSHEET_ID"
	EnvSheetsRange     = "JOBFIT_SHEETS_RANGE"
	EnvCredentialsPath = "JOBFIT_CREDENTIALS_PATH"
	EnvOutputDir       = "JOBFIT_OUTPUT_DIR"
	EnvDatabasePath    = "JOBFIT_DB_PATH"
)

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvSpreadsheetID:   &c.Sheets.SpreadsheetID,
		EnvSheetsRange:     &c.Sheets.Range,
		EnvCredentialsPath: &c.Sheets.CredentialsPath,
		EnvOutputDir:       &c.Output.Dir,
		EnvDatabasePath:    &c.Database.Path,
	}

	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	paths := []*string{
		&c.Input.XLSXPath,
		&c.Input.CSVPath,
		&c.Sheets.CredentialsPath,
		&c.Sheets.TokenPath,
		&c.Output.Dir,
		&c.Database.Path,
	}

	for _, p := range paths {
		expanded, err := expandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Input validation
	if !c.Sheets.Enabled() && c.Input.XLSXPath == "" && c.Input.CSVPath == "" {
		errs = append(errs, errors.New("one of input.xlsx_path, input.csv_path or sheets.spreadsheet_id is required"))
	}

	// Sheets validation
	if c.Sheets.Enabled() {
		if c.Sheets.Range == "" {
			errs = append(errs, errors.New("sheets.range is required when sheets.spreadsheet_id is set"))
		}
		if c.Sheets.CredentialsPath == "" {
			errs = append(errs, errors.New("sheets.credentials_path is required when sheets.spreadsheet_id is set"))
		}
	}

	// Output validation
	for _, name := range []string{c.Output.FullXLSX, c.Output.ApplyXLSX} {
		if name != "" && !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			errs = append(errs, fmt.Errorf("output file %q must have an .xlsx extension", name))
		}
	}

	// Signals validation
	for _, loc := range c.Signals.FarLocalities {
		if strings.TrimSpace(loc) == "" {
			errs = append(errs, errors.New("signals.far_localities must not contain empty entries"))
			break
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// OutputPath resolves an output file name against the output directory.
// Empty names stay empty.
func (c *Config) OutputPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}

// EnsureDirectories creates the output and database directories
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Output.Dir}
	if c.Database.Enabled() {
		dirs = append(dirs, filepath.Dir(c.Database.Path))
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
