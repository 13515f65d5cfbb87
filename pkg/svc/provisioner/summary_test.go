package provisioner_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/provisioner"
)

func TestSummarizeCountsOutcomes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.yaml"), bytes.Repeat([]byte("x"), 2048), 0o600))

	results := []provisioner.Result{
		{StepID: "base-packages", Outcome: provisioner.OutcomeSuccess},
		{StepID: "project-tree", Outcome: provisioner.OutcomeSkipped},
		{StepID: "agent-config", Outcome: provisioner.OutcomeSuccess},
	}

	out := &bytes.Buffer{}
	provisioner.Summarize(out, root, results)

	assert.Contains(t, out.String(), "2 applied, 1 already satisfied, 0 failed")
	assert.Contains(t, out.String(), "2.0 KiB")
	assert.Contains(t, out.String(), "next: cd "+root)
}

func TestSummarizeOmitsNextStepsOnFailure(t *testing.T) {
	t.Parallel()

	results := []provisioner.Result{
		{StepID: "base-packages", Outcome: provisioner.OutcomeFailed},
	}

	out := &bytes.Buffer{}
	provisioner.Summarize(out, t.TempDir(), results)

	assert.Contains(t, out.String(), "0 applied, 0 already satisfied, 1 failed")
	assert.NotContains(t, out.String(), "next:")
}
