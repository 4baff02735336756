package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/monejava/neptune-demo/cmd/neptune-demo/internal"
	"github.com/monejava/neptune-demo/internal/config"
	"github.com/monejava/neptune-demo/internal/demo"
)

var rootCmd = &cobra.Command{
	Use:   "neptune-demo <demo-type>",
	Short: "Run sample OpenCypher queries against Amazon Neptune",
	Long: `neptune-demo connects to an Amazon Neptune cluster and runs a fixed sequence
of OpenCypher queries: create sample nodes, query them, query their
relationships and clean up.

Two access paths are available: the Bolt protocol through the Neo4j Go
driver, or the Neptune Data API (REST) through the AWS SDK.

Configuration is read from environment variables, then the config file
(application.properties by default), then built-in defaults.`,
	Example: `  neptune-demo bolt
  neptune-demo data-api
  NEPTUNE_IAM_AUTH=true neptune-demo bolt -o json`,
	PersistentPreRunE: loadEnvironment,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              exactlyOneDemo,
	ValidArgs:         []string{string(demo.KindBolt), string(demo.KindDataAPI)},
	RunE:              runRootCmd,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadEnvironment validates global flags and loads the dotenv file before any command runs.
func loadEnvironment(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	if cmd.Name() == "version" || cmd.Name() == "completion" || cmd.Name() == "help" {
		return nil
	}

	if err := config.LoadEnvFile(flags.EnvFile); err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to load env file", err)
	}
	return nil
}

func init() {
	RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// usage is printed after argument errors.
func usage() string {
	var b strings.Builder
	b.WriteString("Usage: neptune-demo <demo-type> [flags]\n\n")
	b.WriteString("Demo Types:\n")
	for _, k := range demo.Kinds() {
		fmt.Fprintf(&b, "  %-9s - %s\n", k, k.Description())
	}
	b.WriteString("\nExamples:\n")
	for _, k := range demo.Kinds() {
		fmt.Fprintf(&b, "  neptune-demo %s\n", k)
	}
	return b.String()
}

// exactlyOneDemo rejects anything but a single valid demo type.
func exactlyOneDemo(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return internal.NewUsageError("Exactly one argument required.", usage())
	}

	if _, err := demo.ParseKind(args[0]); err != nil {
		valid := make([]string, 0, len(demo.Kinds()))
		for _, k := range demo.Kinds() {
			valid = append(valid, k.String())
		}
		return internal.NewUsageError(
			fmt.Sprintf("Invalid demo type '%s'\nValid options are: %s", strings.ToLower(args[0]), strings.Join(valid, ", ")),
			usage())
	}
	return nil
}

// runRootCmd runs the demo named by the single positional argument.
func runRootCmd(cmd *cobra.Command, args []string) error {
	kind, err := demo.ParseKind(args[0])
	if err != nil {
		return err
	}
	return runDemo(cmd, kind)
}
