package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use, as YAML, after the search
order and flag overrides are applied. Save the output to
~/.fifteen/configs/fifteen.yaml to customise it.

Examples:
  fifteen config
  fifteen config --speed fast > ~/.fifteen/configs/fifteen.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
