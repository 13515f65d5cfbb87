package v1alpha1

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchema generates the JSON schema for workspace manifests, used by
// editors and CI to validate fmaa.yaml files.
func JSONSchema() (string, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	schema := reflector.Reflect(&Workspace{})
	schema.ID = "https://raw.githubusercontent.com/Aff245/fmaa-bdi-v1/main/fmaa.schema.json"

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest schema: %w", err)
	}

	return string(out) + "\n", nil
}
