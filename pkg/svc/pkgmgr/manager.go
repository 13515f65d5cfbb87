package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrManagerUnavailable is returned when no package manager binary exists on
// the host.
var ErrManagerUnavailable = errors.New("package manager unavailable")

// ErrInstallFailed is returned when the package manager exits non-zero.
var ErrInstallFailed = errors.New("package installation failed")

// Manager defines the operations the provisioner needs from a package
// backend.
type Manager interface {
	// Name returns the backend name for status lines (e.g. "pkg").
	Name() string

	// Available reports whether the backend binary exists on this host.
	Available() bool

	// Install ensures the named packages are installed. Already-installed
	// packages are plain success, not a distinct outcome.
	Install(ctx context.Context, packages []string) error
}

// TermuxManager installs packages through the Termux pkg wrapper, falling
// back to plain apt when pkg is not on PATH.
type TermuxManager struct {
	binary string
}

var _ Manager = (*TermuxManager)(nil)

// NewTermuxManager probes PATH for a usable backend binary.
func NewTermuxManager() *TermuxManager {
	for _, candidate := range []string{"pkg", "apt"} {
		_, err := exec.LookPath(candidate)
		if err == nil {
			return &TermuxManager{binary: candidate}
		}
	}

	return &TermuxManager{}
}

// Name returns the discovered backend binary name, or "pkg" before discovery.
func (m *TermuxManager) Name() string {
	if m.binary == "" {
		return "pkg"
	}

	return m.binary
}

// Available reports whether a backend binary was found on PATH.
func (m *TermuxManager) Available() bool {
	return m.binary != ""
}

// Install runs `<backend> install -y <packages...>`. The backend treats
// already-installed packages as success, which matches desired-state
// semantics.
func (m *TermuxManager) Install(ctx context.Context, packages []string) error {
	if !m.Available() {
		return fmt.Errorf("%w: no pkg or apt binary on PATH", ErrManagerUnavailable)
	}

	args := append([]string{"install", "-y"}, packages...)

	cmd := exec.CommandContext(ctx, m.binary, args...)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf(
			"%w: %s %s: %w: %s",
			ErrInstallFailed,
			m.binary,
			strings.Join(args, " "),
			err,
			lastOutputLine(output),
		)
	}

	return nil
}

// lastOutputLine extracts the final non-empty line of command output, which
// is where apt puts its actual error message.
func lastOutputLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) == 0 {
		return ""
	}

	return strings.TrimSpace(lines[len(lines)-1])
}
