package yamlgenerator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aff245/fmaa-bdi-v1/pkg/apis/workspace/v1alpha1"
	yamlgenerator "github.com/Aff245/fmaa-bdi-v1/pkg/io/generator/yaml"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	snaps.Clean(m, snaps.CleanOpts{Sort: true})

	os.Exit(exitCode)
}

func TestGenerateMarshalsModel(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[map[string]any]()

	result, err := gen.Generate(map[string]any{
		"name":     "fmaa-bdi-enterprise",
		"packages": []string{"python", "git"},
	}, yamlgenerator.Options{})
	require.NoError(t, err)
	snaps.MatchSnapshot(t, result)
}

func TestGenerateDefaultWorkspace(t *testing.T) {
	t.Parallel()

	workspace, err := v1alpha1.DefaultWorkspace()
	require.NoError(t, err)

	gen := yamlgenerator.NewGenerator[*v1alpha1.Workspace]()

	result, err := gen.Generate(workspace, yamlgenerator.Options{})
	require.NoError(t, err)
	assert.Contains(t, result, "apiVersion: fmaa.dev/v1alpha1")
	assert.Contains(t, result, "kind: Workspace")
	snaps.MatchSnapshot(t, result)
}

func TestGenerateWritesOutputFile(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[map[string]any]()
	output := filepath.Join(t.TempDir(), "fmaa.yaml")

	result, err := gen.Generate(map[string]any{"root": "~/fmaa-bdi-enterprise"}, yamlgenerator.Options{
		Output: output,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, result, string(content))
}

func TestGenerateSkipsExistingFileWithoutForce(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[map[string]any]()
	output := filepath.Join(t.TempDir(), "fmaa.yaml")
	require.NoError(t, os.WriteFile(output, []byte("existing content"), 0o600))

	_, err := gen.Generate(map[string]any{"root": "~/other"}, yamlgenerator.Options{Output: output})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "existing content", string(content))
}

func TestGenerateForceOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[map[string]any]()
	output := filepath.Join(t.TempDir(), "fmaa.yaml")
	require.NoError(t, os.WriteFile(output, []byte("existing content"), 0o600))

	result, err := gen.Generate(map[string]any{"root": "~/other"}, yamlgenerator.Options{
		Output: output,
		Force:  true,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, result, string(content))
}
