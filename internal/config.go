package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable that overrides the config file.
const EnvPrefix = "EXPENSE_TRACKER_"

type Config struct {
	// DataFile is where expenses are loaded from and saved to
	DataFile string `yaml:"data_file,omitempty" koanf:"EXPENSE_TRACKER_DATA_FILE"`

	// Format forces csv or json; empty means pick by the DataFile extension
	Format string `yaml:"format,omitempty" koanf:"EXPENSE_TRACKER_FORMAT"`

	// ChartsFile is the workbook the charts are written to; "none" disables it
	ChartsFile string `yaml:"charts_file,omitempty" koanf:"EXPENSE_TRACKER_CHARTS_FILE"`

	// Output selects how summaries are printed: text, table or json
	Output string `yaml:"output,omitempty" koanf:"EXPENSE_TRACKER_OUTPUT"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR
	LogLevel string `yaml:"log_level,omitempty" koanf:"EXPENSE_TRACKER_LOG_LEVEL"`

	// LogFormat is text or json
	LogFormat string `yaml:"log_format,omitempty" koanf:"EXPENSE_TRACKER_LOG_FORMAT"`
}

// DefaultConfigPath returns the default config file path (~/.expense-tracker/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".expense-tracker", "config.yaml")
}

// NewDefaultConfig returns the settings used when nothing is configured.
func NewDefaultConfig() *Config {
	return &Config{
		DataFile:   "expenses.csv",
		ChartsFile: "expenses-charts.xlsx",
		Output:     string(OutputTable),
		LogLevel:   "WARN",
		LogFormat:  "text",
	}
}

// LoadConfig reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.merge(fileCfg)

	return cfg, nil
}

// ApplyEnv overrides fields from EXPENSE_TRACKER_* environment variables.
func (c *Config) ApplyEnv() error {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", nil), nil); err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}

	var envCfg Config
	if err := k.UnmarshalWithConf("", &envCfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	c.merge(envCfg)
	return nil
}

// merge copies every non-empty field of other into c
func (c *Config) merge(other Config) {
	if other.DataFile != "" {
		c.DataFile = other.DataFile
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.ChartsFile != "" {
		c.ChartsFile = other.ChartsFile
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
}

// Validate checks the format and output names.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data file must not be empty")
	}
	if _, err := c.DataFormat(); err != nil {
		return err
	}
	if _, err := ParseOutputMode(c.Output); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (available: text, json)", c.LogFormat)
	}
	return nil
}

// LogConfig builds the logging setup from LogLevel and LogFormat.
func (c *Config) LogConfig() LogConfig {
	lc := DefaultLogConfig()
	lc.Level = ParseLogLevel(c.LogLevel)
	lc.JSON = strings.EqualFold(c.LogFormat, "json")
	return lc
}

// DataFormat returns the explicit Format, or the one implied by the DataFile extension.
func (c *Config) DataFormat() (Format, error) {
	if c.Format != "" {
		return ParseFormat(c.Format)
	}
	return FormatFromPath(c.DataFile)
}

// ChartsPath returns the chart workbook path, or "" when charts are disabled
func (c *Config) ChartsPath() string {
	if c.ChartsFile == "none" {
		return ""
	}
	return c.ChartsFile
}

// Save writes the settings as YAML to path, creating its directory.
// The file is readable by the owner only.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing config file: %w", err)
	}
	return nil
}
