package v1alpha1

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Marshal renders the manifest as YAML.
func (w *Workspace) Marshal() (string, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(w)
	if err != nil {
		return "", fmt.Errorf("failed to marshal workspace manifest: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return "", fmt.Errorf("failed to finalize workspace manifest: %w", err)
	}

	return buf.String(), nil
}

// UnmarshalWorkspace parses a YAML manifest. Unknown fields are rejected so
// typos in manifests fail loudly instead of silently provisioning nothing.
func UnmarshalWorkspace(data []byte) (*Workspace, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	workspace := NewWorkspace()

	err := decoder.Decode(workspace)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("workspace manifest is empty: %w", err)
		}

		return nil, fmt.Errorf("failed to unmarshal workspace manifest: %w", err)
	}

	return workspace, nil
}
