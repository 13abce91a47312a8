// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "FIRE"

// Interactive display modes.
const (
	InteractiveOff     = "off"
	InteractiveHTML    = "html"
	InteractiveBrowser = "browser"
)

// Clean export formats.
const (
	CleanFormatCSV  = "csv"
	CleanFormatXLSX = "xlsx"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Input struct {
		Dir        string `mapstructure:"dir" yaml:"dir"`
		YearSeries string `mapstructure:"year_series" yaml:"year_series"`
		Regions    string `mapstructure:"regions" yaml:"regions"`
		States     string `mapstructure:"states" yaml:"states"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		Dir        string `mapstructure:"dir" yaml:"dir"`
		BarChart   string `mapstructure:"bar_chart" yaml:"bar_chart"`
		PieChart   string `mapstructure:"pie_chart" yaml:"pie_chart"`
		TimeSeries string `mapstructure:"time_series" yaml:"time_series"`
		Report     string `mapstructure:"report" yaml:"report"`
	} `mapstructure:"output" yaml:"output"`

	Chart struct {
		DPI int `mapstructure:"dpi" yaml:"dpi"`
	} `mapstructure:"chart" yaml:"chart"`

	Report struct {
		Title string `mapstructure:"title" yaml:"title"`
	} `mapstructure:"report" yaml:"report"`

	Interactive struct {
		Mode string `mapstructure:"mode" yaml:"mode"`
		Dir  string `mapstructure:"dir" yaml:"dir"`
	} `mapstructure:"interactive" yaml:"interactive"`

	Clean struct {
		Format string `mapstructure:"format" yaml:"format"`
		Dir    string `mapstructure:"dir" yaml:"dir"`
	} `mapstructure:"clean" yaml:"clean"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"input-dir":   "input.dir",
	"output-dir":  "output.dir",
	"interactive": "interactive.mode",
	"log-level":   "log.level",
	"format":      "clean.format",
}

// InitializeConfig loads configuration from defaults, an optional config
// file, FIRE_* environment variables and the given flags, in increasing
// order of precedence. LOG_LEVEL is honoured when FIRE_LOG_LEVEL is unset.
// flags may be nil.
func InitializeConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if file := configFileFlag(flags); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.fire-report")
		v.AddConfigPath(".fire-report")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// FIRE_LOG_LEVEL wins over the unprefixed LOG_LEVEL.
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func configFileFlag(flags *pflag.FlagSet) string {
	if flags == nil {
		return ""
	}
	f := flags.Lookup("config")
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// setDefaults reproduces the fixed file names of the report.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("input.dir", ".")
	v.SetDefault("input.year_series", "data2000_2024.csv")
	v.SetDefault("input.regions", "region.csv")
	v.SetDefault("input.states", "nrw.csv")

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.bar_chart", "balkendiagramm.png")
	v.SetDefault("output.pie_chart", "tortendiagramm.png")
	v.SetDefault("output.time_series", "zeitdiagramm.png")
	v.SetDefault("output.report", "Bericht_Braende_Deutschland.pdf")

	v.SetDefault("chart.dpi", 100)

	v.SetDefault("report.title", "Bericht über die Anzahl der Brände in deutschen Bundesländern")

	v.SetDefault("interactive.mode", InteractiveOff)
	v.SetDefault("interactive.dir", "interaktiv")

	v.SetDefault("clean.format", CleanFormatCSV)
	v.SetDefault("clean.dir", "bereinigt")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Chart.DPI < 1 || config.Chart.DPI > 1200 {
		return fmt.Errorf("chart.dpi must be between 1 and 1200, got: %d", config.Chart.DPI)
	}

	switch config.Interactive.Mode {
	case InteractiveOff, InteractiveHTML, InteractiveBrowser:
	default:
		return fmt.Errorf("invalid interactive mode: %s (must be 'off', 'html' or 'browser')", config.Interactive.Mode)
	}

	switch config.Clean.Format {
	case CleanFormatCSV, CleanFormatXLSX:
	default:
		return fmt.Errorf("invalid clean format: %s (must be 'csv' or 'xlsx')", config.Clean.Format)
	}

	for key, name := range map[string]string{
		"input.year_series":  config.Input.YearSeries,
		"input.regions":      config.Input.Regions,
		"input.states":       config.Input.States,
		"output.bar_chart":   config.Output.BarChart,
		"output.pie_chart":   config.Output.PieChart,
		"output.time_series": config.Output.TimeSeries,
		"output.report":      config.Output.Report,
	} {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// InputPath resolves an input file name against input.dir.
func (c *Config) InputPath(name string) string {
	return resolve(c.Input.Dir, name)
}

// OutputPath resolves an output file name against output.dir.
func (c *Config) OutputPath(name string) string {
	return resolve(c.Output.Dir, name)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// ConfigureLoggingFromConfig configures a logrus logger based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
