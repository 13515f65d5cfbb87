package errorhandler_test

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aff245/fmaa-bdi-v1/pkg/cli/ui/errorhandler"
)

var errBoom = errors.New("boom")

func TestExecuteNilCommand(t *testing.T) {
	t.Parallel()

	require.NoError(t, errorhandler.NewExecutor().Execute(nil))
}

func TestExecuteSuccess(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:  "ok",
		RunE: func(*cobra.Command, []string) error { return nil },
	}

	require.NoError(t, errorhandler.NewExecutor().Execute(cmd))
}

func TestExecuteWrapsFailure(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "fail",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(*cobra.Command, []string) error { return errBoom },
	}

	err := errorhandler.NewExecutor().Execute(cmd)
	require.Error(t, err)

	var cmdErr *errorhandler.CommandError

	require.ErrorAs(t, err, &cmdErr)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecuteStripsErrorPrefix(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:          "fail",
		SilenceUsage: true,
		RunE:         func(*cobra.Command, []string) error { return errBoom },
	}

	err := errorhandler.NewExecutor().Execute(cmd)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "Error: ")
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: "  \n ", want: ""},
		{name: "strips error prefix", raw: "Error: boom\n", want: "boom"},
		{name: "keeps usage hint lines", raw: "Error: boom\nUsage:\n  fmaa provision", want: "boom\nUsage:\n  fmaa provision"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := errorhandler.DefaultNormalizer{}.Normalize(test.raw)
			assert.Equal(t, test.want, got)
		})
	}
}
