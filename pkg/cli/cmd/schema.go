package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aff245/fmaa-bdi-v1/pkg/apis/workspace/v1alpha1"
	runtime "github.com/Aff245/fmaa-bdi-v1/pkg/di"
)

// NewSchemaCmd wires the schema command.
func NewSchemaCmd(_ *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "schema",
		Short:        "Print the manifest JSON schema",
		Long:         "Print the JSON schema for fmaa.yaml manifests, for editor and CI validation.",
		SilenceUsage: true,
		RunE:         handleSchemaRunE,
	}
}

func handleSchemaRunE(cmd *cobra.Command, _ []string) error {
	schema, err := v1alpha1.JSONSchema()
	if err != nil {
		return fmt.Errorf("failed to generate manifest schema: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), schema)
	if err != nil {
		return fmt.Errorf("failed to print manifest schema: %w", err)
	}

	return nil
}
