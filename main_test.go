package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSafelyReturnsRunnerExitCode(t *testing.T) {
	t.Parallel()

	var errBuf bytes.Buffer

	exitCode := runSafely(nil, func([]string) int { return 3 }, &errBuf)
	assert.Equal(t, 3, exitCode)
	assert.Empty(t, errBuf.String())
}

func TestRunSafelyRecoversPanic(t *testing.T) {
	t.Parallel()

	var errBuf bytes.Buffer

	exitCode := runSafely(nil, func([]string) int { panic("kaboom") }, &errBuf)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, errBuf.String(), "panic recovered: kaboom")
}

func TestRunWithArgsHelp(t *testing.T) {
	t.Parallel()

	exitCode := runWithArgs([]string{"--help"})
	assert.Equal(t, 0, exitCode)
}
