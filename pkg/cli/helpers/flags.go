// Package helpers provides small shared utilities for CLI commands.
package helpers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

// TimingFlagName is the persistent flag that enables per-activity timing
// output.
const TimingFlagName = "timing"

// ErrNilCommand is returned when a nil command is passed to a helper.
var ErrNilCommand = errors.New("command is nil")

// TimingEnabled reports whether the timing flag is set on the command, its
// persistent flags, or any inherited flags.
func TimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	for _, flags := range []interface {
		GetBool(name string) (bool, error)
	}{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		enabled, err := flags.GetBool(TimingFlagName)
		if err == nil {
			return enabled, nil
		}
	}

	return false, fmt.Errorf("flag %q not found on command", TimingFlagName)
}

// MaybeTimer returns the timer when timing output is enabled on the command,
// nil otherwise. A nil timer suppresses the timing block in notifications.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	enabled, err := TimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}
