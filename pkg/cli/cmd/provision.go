package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aff245/fmaa-bdi-v1/pkg/cli/helpers"
	runtime "github.com/Aff245/fmaa-bdi-v1/pkg/di"
	"github.com/Aff245/fmaa-bdi-v1/pkg/io/configmanager"
	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/provisioner"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/notify"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

// NewProvisionCmd wires the provision command using the shared runtime
// container.
func NewProvisionCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "provision",
		Short:        "Provision the workspace",
		Long:         "Provision the FMAA workspace to its desired state. Safe to re-run: satisfied steps are skipped.",
		SilenceUsage: true,
	}

	cmd.Flags().String("root", "", "Workspace root directory (overrides the manifest)")
	cmd.Flags().String("manifest", "", "Path to the workspace manifest file (default: ./fmaa.yaml)")

	cfgManager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = wrapHandler(runtimeContainer, runtime.WithTimer(curryProvision(cfgManager)))

	return cmd
}

func curryProvision(
	cfgManager *configmanager.ConfigManager,
) func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
	return func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
		return handleProvisionRunE(cmd, injector, cfgManager, tmr)
	}
}

func handleProvisionRunE(
	cmd *cobra.Command,
	injector runtime.Injector,
	cfgManager *configmanager.ConfigManager,
	tmr timer.Timer,
) error {
	tmr.Start()

	outputTimer := helpers.MaybeTimer(cmd, tmr)
	out := cmd.OutOrStdout()

	config, err := cfgManager.Load(configmanager.LoadOptions{Timer: outputTimer})
	if err != nil {
		return err
	}

	manager, err := runtime.ResolvePackageManager(injector)
	if err != nil {
		return err
	}

	steps, root, err := provisioner.StepsFromManifest(config, manager)
	if err != nil {
		return err
	}

	factory, err := runtime.ResolveRunnerFactory(injector)
	if err != nil {
		return err
	}

	tmr.NewStage()
	notify.Titlef(out, "🚀", "Provision workspace...")

	results, runErr := factory.Create(out).Run(cmd.Context(), steps)

	// Partial results are still reported so the operator can see how far the
	// run got before the failure.
	provisioner.Summarize(out, root, results)

	if runErr != nil {
		return fmt.Errorf("failed to provision workspace: %w", runErr)
	}

	notify.SuccessWithTimerf(out, outputTimer, "workspace provisioned")

	return nil
}
