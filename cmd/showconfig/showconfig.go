// Package showconfig handles the config command, which prints the effective configuration
package showconfig

import (
	"errors"

	"fjacquet/fire-report/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging defaults, the config file, FIRE_*
environment variables and command-line flags, as YAML.`,
	Args: cobra.NoArgs,
	RunE: showFunc,
}

func showFunc(cmd *cobra.Command, args []string) error {
	if root.AppConfig == nil {
		return errors.New("configuration not initialized")
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(root.AppConfig); err != nil {
		return err
	}
	return enc.Close()
}
