package helpers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aff245/fmaa-bdi-v1/pkg/cli/helpers"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

func TestTimingEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setupCmd    func() *cobra.Command
		wantEnabled bool
		wantErr     bool
	}{
		{
			name:     "returns error for nil command",
			setupCmd: func() *cobra.Command { return nil },
			wantErr:  true,
		},
		{
			name: "returns false when timing flag is false",
			setupCmd: func() *cobra.Command {
				cmd := &cobra.Command{}
				cmd.Flags().Bool(helpers.TimingFlagName, false, "")

				return cmd
			},
			wantEnabled: false,
		},
		{
			name: "returns true when timing flag is true",
			setupCmd: func() *cobra.Command {
				cmd := &cobra.Command{}
				cmd.Flags().Bool(helpers.TimingFlagName, true, "")

				return cmd
			},
			wantEnabled: true,
		},
		{
			name: "finds timing in inherited flags from parent",
			setupCmd: func() *cobra.Command {
				parent := &cobra.Command{}
				parent.PersistentFlags().Bool(helpers.TimingFlagName, true, "")

				child := &cobra.Command{}
				parent.AddCommand(child)

				return child
			},
			wantEnabled: true,
		},
		{
			name:     "returns error when flag not found",
			setupCmd: func() *cobra.Command { return &cobra.Command{} },
			wantErr:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			enabled, err := helpers.TimingEnabled(test.setupCmd())
			if test.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantEnabled, enabled)
		})
	}
}

func TestMaybeTimer(t *testing.T) {
	t.Parallel()

	tmr := timer.New()

	withTiming := &cobra.Command{}
	withTiming.Flags().Bool(helpers.TimingFlagName, true, "")
	assert.Equal(t, tmr, helpers.MaybeTimer(withTiming, tmr))

	withoutTiming := &cobra.Command{}
	withoutTiming.Flags().Bool(helpers.TimingFlagName, false, "")
	assert.Nil(t, helpers.MaybeTimer(withoutTiming, tmr))

	assert.Nil(t, helpers.MaybeTimer(&cobra.Command{}, tmr))
}
