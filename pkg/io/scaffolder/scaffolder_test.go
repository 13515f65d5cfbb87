package scaffolder_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aff245/fmaa-bdi-v1/pkg/apis/workspace/v1alpha1"
	"github.com/Aff245/fmaa-bdi-v1/pkg/io/scaffolder"
)

func newScaffolder(t *testing.T, out *bytes.Buffer) *scaffolder.Scaffolder {
	t.Helper()

	workspace, err := v1alpha1.DefaultWorkspace()
	require.NoError(t, err)

	return scaffolder.NewScaffolder(workspace, out)
}

func TestScaffoldCreatesManifest(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	dir := t.TempDir()

	err := newScaffolder(t, out).Scaffold(dir, false)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, scaffolder.ManifestFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "apiVersion: fmaa.dev/v1alpha1")
	assert.Contains(t, string(content), "kind: Workspace")
	assert.Contains(t, out.String(), "generating 'fmaa.yaml'")
}

func TestScaffoldSkipsExistingManifest(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	dir := t.TempDir()
	path := filepath.Join(dir, scaffolder.ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	err := newScaffolder(t, out).Scaffold(dir, false)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
	assert.Contains(t, out.String(), "skipping 'fmaa.yaml'")
}

func TestScaffoldForceOverwrites(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	dir := t.TempDir()
	path := filepath.Join(dir, scaffolder.ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	err := newScaffolder(t, out).Scaffold(dir, true)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "kind: Workspace")
	assert.Contains(t, out.String(), "overwriting 'fmaa.yaml'")
}

func TestScaffoldedManifestRoundTrips(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	dir := t.TempDir()

	err := newScaffolder(t, out).Scaffold(dir, false)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, scaffolder.ManifestFile))
	require.NoError(t, err)

	workspace, err := v1alpha1.UnmarshalWorkspace(content)
	require.NoError(t, err)
	require.NoError(t, workspace.Validate())
}
