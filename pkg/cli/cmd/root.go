// Package cmd wires the fmaa CLI commands.
package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Aff245/fmaa-bdi-v1/pkg/cli/helpers"
	"github.com/Aff245/fmaa-bdi-v1/pkg/cli/ui/errorhandler"
	runtime "github.com/Aff245/fmaa-bdi-v1/pkg/di"
)

// VerboseFlagName is the name of the persistent verbose flag.
const VerboseFlagName = "verbose"

// NewRootCmd creates and returns the root command with version info and
// subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := runtime.NewRuntime()

	cmd := &cobra.Command{
		Use:          "fmaa",
		Short:        "fmaa provisions and maintains FMAA BDI agent workspaces",
		Long:         "fmaa provisions and maintains FMAA BDI agent workspaces on Termux and other POSIX hosts.",
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		helpers.TimingFlagName,
		false,
		"Show per-activity timing output",
	)
	cmd.PersistentFlags().Bool(
		VerboseFlagName,
		false,
		"Enable debug logging",
	)

	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, err := cmd.Flags().GetBool(VerboseFlagName)
		if err == nil && verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	cmd.AddCommand(NewProvisionCmd(runtimeContainer))
	cmd.AddCommand(NewInitCmd(runtimeContainer))
	cmd.AddCommand(NewSchemaCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// wrapHandler adapts an injector-aware handler to Cobra's RunE signature.
func wrapHandler(
	runtimeContainer *runtime.Runtime,
	handler func(cmd *cobra.Command, injector runtime.Injector) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return handler(cmd, runtimeContainer.Injector)
	}
}

// handleRootRunE handles the bare root command by printing help.
func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
