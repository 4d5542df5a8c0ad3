package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/expense-tracker/internal"
)

type Params struct {
	File    string `descr:"Path to the expense file (.csv or .json)" optional:"true"`
	Format  string `descr:"Storage format, overrides the file extension" alts:"csv,json" optional:"true"`
	Config  string `descr:"Path to config file (default: ~/.expense-tracker/config.yaml)" optional:"true"`
	Charts  string `descr:"Path of the chart workbook written with each summary, or none" optional:"true"`
	Output  string `descr:"Summary output format" alts:"text,table,json" optional:"true"`
	Verbose bool   `descr:"Enable debug logging" optional:"true"`

	SaveConfig bool `descr:"Write the resolved settings to the config file and exit" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("expense-tracker").
		WithShort("Track personal expenses from an interactive menu").
		WithLong("Records expenses (amount, category, date) in a CSV or JSON file, and summarizes spending per category and per day as text, tables and an xlsx chart workbook.").
		WithRunFunc(func(params *Params) {
			if err := run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params, in io.Reader, out io.Writer) error {
	cfg, err := resolveConfig(params)
	if err != nil {
		return err
	}

	if params.SaveConfig {
		path := configPath(params)
		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Config written to %s\n", path)
		return nil
	}

	logCfg := cfg.LogConfig()
	if params.Verbose {
		logCfg.Level = slog.LevelDebug
	}
	logger := internal.SetupLogging(logCfg)

	format, err := cfg.DataFormat()
	if err != nil {
		return err
	}
	mode, err := internal.ParseOutputMode(cfg.Output)
	if err != nil {
		return err
	}

	shell := internal.NewShell(in, out, internal.ShellOptions{
		DataFile:   cfg.DataFile,
		Format:     format,
		ChartsFile: cfg.ChartsPath(),
		Output:     mode,
		Logger:     logger,
	})
	return shell.Run()
}

// resolveConfig layers defaults, the config file, the environment and the flags, in that order
func resolveConfig(params *Params) (*internal.Config, error) {
	cfg, err := internal.LoadConfig(configPath(params))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if params.File != "" {
		cfg.DataFile = params.File
	}
	if params.Format != "" {
		cfg.Format = params.Format
	}
	if params.Charts != "" {
		cfg.ChartsFile = params.Charts
	}
	if params.Output != "" {
		cfg.Output = params.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func configPath(params *Params) string {
	if params.Config != "" {
		return params.Config
	}
	return internal.DefaultConfigPath()
}
