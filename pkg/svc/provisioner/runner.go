package provisioner

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/notify"
)

var logger = log.WithField("package", "provisioner")

// Factory creates runners bound to an output writer. Commands resolve a
// Factory instead of constructing runners so tests can substitute recording
// implementations.
type Factory interface {
	Create(writer io.Writer) *Runner
}

// DefaultFactory creates standard runners.
type DefaultFactory struct{}

// Create implements Factory.
func (DefaultFactory) Create(writer io.Writer) *Runner {
	return NewRunner(writer)
}

// Runner executes steps in declaration order with fail-fast semantics for
// required steps and warn-and-continue semantics for optional ones.
type Runner struct {
	writer io.Writer
}

// NewRunner creates a runner that reports step progress to the writer.
func NewRunner(writer io.Writer) *Runner {
	return &Runner{writer: writer}
}

// Run reconciles each step in order. It stops at the first required-step
// failure and returns the results gathered so far together with the failure
// cause; already-completed step effects are never rolled back. Optional-step
// failures are recorded and reported as warnings without stopping the run.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))

	for _, step := range steps {
		err := ctx.Err()
		if err != nil {
			return results, fmt.Errorf("provisioning aborted: %w", err)
		}

		notify.Activityf(r.writer, "reconciling %s...", step.ID())
		logger.WithField("step", step.ID()).Debug("reconciling step")

		result := step.Reconcile(ctx)
		results = append(results, result)

		switch result.Outcome {
		case OutcomeSuccess:
			notify.Successf(r.writer, "%s: %s", result.StepID, result.Diagnostic)
		case OutcomeSkipped:
			notify.Skipf(r.writer, "%s: %s", result.StepID, result.Diagnostic)
		case OutcomeFailed:
			if step.Optional() {
				notify.Warningf(r.writer, "%s (optional): %s", result.StepID, result.Diagnostic)
				logger.WithField("step", result.StepID).
					WithError(result.Err).
					Warn("optional step failed, continuing")

				continue
			}

			notify.Errorf(r.writer, "%s: %s", result.StepID, result.Diagnostic)

			return results, fmt.Errorf("step %s failed: %w", result.StepID, result.Err)
		}
	}

	return results, nil
}
