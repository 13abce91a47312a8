// Package root contains the root command for the application
package root

import (
	"errors"
	"sync"

	"fjacquet/fire-report/internal/config"
	"fjacquet/fire-report/internal/container"
	"fjacquet/fire-report/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the effective configuration, set before any command runs
	AppConfig *config.Config

	// AppContainer holds the wired components, set before any command runs
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fire-report",
		Short: "Generate charts and a PDF report on fire incidents in German states.",
		Long: `fire-report reads the fire-incident CSV datasets, removes incomplete and
non-positive rows, renders a bar chart, a pie chart and a time series as PNG
images and assembles them into a three-page PDF report.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
		RunE:              runReport,
	}

	initOnce sync.Once
)

// Init initializes the root command and all flags. Log takes its level from
// the environment until the configuration is read.
func Init() {
	Log = logging.NewLogrusAdapter(config.LogLevelFromEnv(), "text")
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.String("config", "", "Config file (default searches $HOME/.fire-report, .fire-report and .)")
		flags.String("input-dir", "", "Directory holding the input CSV files")
		flags.String("output-dir", "", "Directory receiving the images and the report")
		flags.String("interactive", "", "Interactive charts: off, html or browser")
		flags.String("log-level", "", "Log level: trace, debug, info, warn or error")
	})
}

// initialize loads the configuration and wires the container.
func initialize(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig(cmd.Flags())
	if err != nil {
		return err
	}
	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// runReport runs the complete report pipeline.
func runReport(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return errors.New("container not initialized")
	}

	res, err := AppContainer.GetPipeline().Run(cmd.Context())
	if err != nil {
		Log.WithError(err).Error("Report generation failed")
		return err
	}
	Log.Info("Report generated successfully",
		logging.F(logging.FieldFile, res.Report),
		logging.F(logging.FieldCount, len(res.Images)))
	return nil
}
