// Package config holds the settings shared by every lion command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"lion/internal/logger"
)

// Config is the root configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Documents DocumentsConfig `yaml:"documents"`
	Table     TableConfig     `yaml:"table"`
	Suggest   SuggestConfig   `yaml:"suggest"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"       env:"LION_LOG_LEVEL"       env-default:"info"`
	JSON       bool   `yaml:"json"        env:"LION_LOG_JSON"        env-default:"false"`
	TimeFormat string `yaml:"time_format" env:"LION_LOG_TIME_FORMAT" env-default:"06-01-02 15:04:05"`
}

// DocumentsConfig controls how XML documents are found and written.
type DocumentsConfig struct {
	// Pattern selects documents inside directory inputs.
	Pattern string `yaml:"pattern"    env:"LION_DOCUMENTS_PATTERN" env-default:"**/*.xml"`
	// OutputDir receives injected documents. Empty means "output" beside
	// the first document.
	OutputDir string `yaml:"output_dir" env:"LION_OUTPUT_DIR"`
}

// TableConfig controls workbook export.
type TableConfig struct {
	GroupByFile    bool    `yaml:"group_by_file"    env:"LION_TABLE_GROUP"     env-default:"false"`
	SheetName      string  `yaml:"sheet_name"       env:"LION_TABLE_SHEET"     env-default:"L10N"`
	MaxColumnWidth float64 `yaml:"max_column_width" env:"LION_TABLE_MAX_WIDTH" env-default:"80"`
}

// SuggestConfig tunes attribute suggestion.
type SuggestConfig struct {
	MinScore   float64  `yaml:"min_score"  env:"LION_SUGGEST_MIN_SCORE"  env-default:"0.65"`
	Vocabulary []string `yaml:"vocabulary" env:"LION_SUGGEST_VOCABULARY" env-separator:","`
}

// maxExcelColumnWidth is the widest column Excel allows.
const maxExcelColumnWidth = 255

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      string(logger.InfoLevel),
			TimeFormat: "06-01-02 15:04:05",
		},
		Documents: DocumentsConfig{Pattern: "**/*.xml"},
		Table: TableConfig{
			SheetName:      "L10N",
			MaxColumnWidth: 80,
		},
		Suggest: SuggestConfig{MinScore: 0.65},
	}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	var errs []error

	if !logger.IsValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if !doublestar.ValidatePattern(c.Documents.Pattern) {
		errs = append(errs, fmt.Errorf("documents.pattern: invalid pattern %q", c.Documents.Pattern))
	}

	if c.Table.SheetName == "" {
		errs = append(errs, errors.New("table.sheet_name: must not be empty"))
	}

	if c.Table.MaxColumnWidth <= 0 || c.Table.MaxColumnWidth > maxExcelColumnWidth {
		errs = append(errs, fmt.Errorf("table.max_column_width: %v not in (0, %d]", c.Table.MaxColumnWidth, maxExcelColumnWidth))
	}

	if c.Suggest.MinScore < 0 || c.Suggest.MinScore > 1 {
		errs = append(errs, fmt.Errorf("suggest.min_score: %v not in [0, 1]", c.Suggest.MinScore))
	}

	return errors.Join(errs...)
}

// Logger returns the logger settings for this configuration.
func (c LogConfig) Logger() *logger.Config {
	return &logger.Config{
		Level:      logger.ParseLevel(c.Level),
		Output:     os.Stderr,
		JSON:       c.JSON,
		TimeFormat: c.TimeFormat,
	}
}
