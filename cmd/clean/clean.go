// Package clean handles the clean command, which writes the cleaned datasets
package clean

import (
	"errors"
	"fmt"
	"path/filepath"

	"fjacquet/fire-report/cmd/root"
	"fjacquet/fire-report/internal/config"
	"fjacquet/fire-report/internal/loader"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/workbook"

	"github.com/spf13/cobra"
)

// Cmd represents the clean command
var Cmd = &cobra.Command{
	Use:   "clean",
	Short: "Write the cleaned datasets as CSV or Excel",
	Long: `Load the three input datasets, drop incomplete and non-positive rows and
write the result to <output-dir>/bereinigt/ as CSV files, or to
<output-dir>/bereinigt.xlsx with one sheet per dataset when --format xlsx is given.`,
	Args: cobra.NoArgs,
	RunE: cleanFunc,
}

func init() {
	Cmd.Flags().String("format", "", "Output format: csv or xlsx")
}

func cleanFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return errors.New("container not initialized")
	}
	cfg := root.AppContainer.GetConfig()
	log := root.AppContainer.GetLogger()

	ds, stats, err := root.AppContainer.GetPipeline().LoadClean(cmd.Context())
	if err != nil {
		return err
	}
	for _, s := range stats {
		log.Info("Cleaned dataset",
			logging.F(logging.FieldDataset, s.Dataset),
			logging.F(logging.FieldCount, s.Kept),
			logging.F(logging.FieldDropped, s.Dropped()))
	}

	target := root.AppContainer.CleanPath()
	switch cfg.Clean.Format {
	case config.CleanFormatXLSX:
		return workbook.Write(ds, target, log)
	case config.CleanFormatCSV:
		return writeCSV(ds, cfg, target, log)
	default:
		return fmt.Errorf("unsupported clean format: %s", cfg.Clean.Format)
	}
}

// writeCSV keeps the input file names inside dir.
func writeCSV(ds models.Datasets, cfg *config.Config, dir string, log logging.Logger) error {
	delim := cfg.Delimiter()
	if err := loader.WriteCSVFile(ds.Years, filepath.Join(dir, filepath.Base(cfg.Input.YearSeries)), delim, log); err != nil {
		return err
	}
	if err := loader.WriteCSVFile(ds.Regions, filepath.Join(dir, filepath.Base(cfg.Input.Regions)), delim, log); err != nil {
		return err
	}
	return loader.WriteCSVFile(ds.States, filepath.Join(dir, filepath.Base(cfg.Input.States)), delim, log)
}
