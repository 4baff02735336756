package main

import (
	"github.com/spf13/cobra"

	"github.com/monejava/neptune-demo/cmd/neptune-demo/internal"
	"github.com/monejava/neptune-demo/internal/config"
)

// GlobalFlags holds global flags available to all commands
type GlobalFlags struct {
	Verbose      bool
	Quiet        bool
	OutputFormat string
	ConfigFile   string
	EnvFile      string
}

var globalFlags = &GlobalFlags{}

// RegisterGlobalFlags registers persistent flags on the root command
func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "Only log warnings and errors")
	cmd.PersistentFlags().StringVarP(&globalFlags.OutputFormat, "output", "o", "text", "Report format (text|json)")
	cmd.PersistentFlags().StringVar(&globalFlags.ConfigFile, "config", config.DefaultConfigPath, "Path to properties/YAML/JSON config file")
	cmd.PersistentFlags().StringVar(&globalFlags.EnvFile, "env-file", config.DefaultEnvFile, "Path to dotenv file loaded before resolving configuration")
}

// ParseGlobalFlags parses and validates global flags from the command
func ParseGlobalFlags(cmd *cobra.Command) (*GlobalFlags, error) {
	if _, err := internal.ParseOutputFormat(globalFlags.OutputFormat); err != nil {
		return nil, err
	}

	if globalFlags.Verbose && globalFlags.Quiet {
		return nil, internal.NewCLIError(internal.ExitError, "--verbose and --quiet cannot be used together")
	}

	return globalFlags, nil
}

// GetOutputFormat returns the parsed OutputFormat enum
func (f *GlobalFlags) GetOutputFormat() internal.OutputFormat {
	format, err := internal.ParseOutputFormat(f.OutputFormat)
	if err != nil {
		return internal.FormatText
	}
	return format
}

// LogLevel returns the level forced by -v or -q, or configured when neither is set.
func (f *GlobalFlags) LogLevel(configured string) string {
	switch {
	case f.Verbose:
		return "debug"
	case f.Quiet:
		return "warn"
	default:
		return configured
	}
}
