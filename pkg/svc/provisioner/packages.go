package provisioner

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/pkgmgr"
)

// PackagesStep ensures a set of OS packages is installed via the platform
// package manager. Already-installed packages are plain success; the backend
// handles them without a distinct code path.
type PackagesStep struct {
	StepID     string
	IsOptional bool
	Packages   []string
	Manager    pkgmgr.Manager
}

var _ Step = (*PackagesStep)(nil)

// ID implements Step.
func (s *PackagesStep) ID() string { return s.StepID }

// Optional implements Step.
func (s *PackagesStep) Optional() bool { return s.IsOptional }

// Reconcile invokes the package manager for the full package list. There is
// no automatic retry: transient network failures are the operator's to
// re-run, which idempotence makes safe.
func (s *PackagesStep) Reconcile(ctx context.Context) Result {
	if len(s.Packages) == 0 {
		return skippedResult(s.StepID, "no packages requested")
	}

	if !s.Manager.Available() {
		return failedResult(s.StepID, fmt.Errorf(
			"%w: no %s backend on this host", ErrPackageManager, s.Manager.Name(),
		))
	}

	err := s.Manager.Install(ctx, s.Packages)
	if err != nil {
		return failedResult(s.StepID, fmt.Errorf("%w: %w", ErrPackageManager, err))
	}

	return successResult(s.StepID, fmt.Sprintf(
		"ensured %d packages via %s: %s",
		len(s.Packages), s.Manager.Name(), strings.Join(s.Packages, ", "),
	))
}
