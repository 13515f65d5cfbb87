package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aff245/fmaa-bdi-v1/pkg/cli/helpers"
	runtime "github.com/Aff245/fmaa-bdi-v1/pkg/di"
	"github.com/Aff245/fmaa-bdi-v1/pkg/io/configmanager"
	"github.com/Aff245/fmaa-bdi-v1/pkg/io/scaffolder"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/notify"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

// NewInitCmd wires the init command using the shared runtime container.
func NewInitCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize a new FMAA project",
		Long:         "Initialize a new FMAA project by generating a starter fmaa.yaml manifest.",
		SilenceUsage: true,
	}

	cmd.Flags().String("root", "", "Workspace root directory to write into the manifest")
	cmd.Flags().StringP("output", "o", ".", "Directory to place the generated manifest in")
	cmd.Flags().Bool("force", false, "Overwrite an existing manifest")

	cfgManager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = wrapHandler(runtimeContainer, runtime.WithTimer(curryInit(cfgManager)))

	return cmd
}

func curryInit(
	cfgManager *configmanager.ConfigManager,
) func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
	return func(cmd *cobra.Command, _ runtime.Injector, tmr timer.Timer) error {
		return handleInitRunE(cmd, cfgManager, tmr)
	}
}

func handleInitRunE(
	cmd *cobra.Command,
	cfgManager *configmanager.ConfigManager,
	tmr timer.Timer,
) error {
	tmr.Start()

	out := cmd.OutOrStdout()
	notify.Titlef(out, "✨", "Initialize project...")

	// Existing manifests are ignored here: init always starts from the
	// built-in defaults plus flag overrides.
	config, err := cfgManager.Load(configmanager.LoadOptions{
		Silent:           true,
		IgnoreConfigFile: true,
	})
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to read output flag: %w", err)
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to read force flag: %w", err)
	}

	err = scaffolder.NewScaffolder(config, out).Scaffold(output, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	notify.SuccessWithTimerf(out, helpers.MaybeTimer(cmd, tmr), "project initialized")

	return nil
}
