package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/monejava/neptune-demo/cmd/neptune-demo/internal"
	"github.com/monejava/neptune-demo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the resolved configuration",
	Long: `Display the configuration a demo would run with, after applying
environment variables, the config file and defaults. Secrets are redacted.

By default, output is in YAML format. Use --output json for JSON output.
Validation problems are reported on stderr and make the command fail.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewConfigLoader(config.NewValidator())
		cfg, err := loader.Resolve(globalFlags.ConfigFile)
		if err != nil {
			return internal.WrapError(internal.ExitConfigError, "failed to load config", err)
		}

		if err := printConfig(cmd, cfg.Redacted()); err != nil {
			return err
		}

		if err := config.NewValidator().Validate(cfg); err != nil {
			return internal.WrapError(internal.ExitConfigError, "configuration is not valid", err)
		}
		return nil
	},
}

// printConfig writes cfg as YAML or JSON depending on --output.
func printConfig(cmd *cobra.Command, cfg config.Config) error {
	if globalFlags.GetOutputFormat() == internal.FormatJSON {
		return internal.NewJSONFormatter(cmd.OutOrStdout()).PrintJSON(cfg)
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(cfg); err != nil {
		return internal.WrapError(internal.ExitError, "failed to encode config", err)
	}
	return nil
}
