package provisioner

// Outcome classifies how a step's reconciliation ended.
type Outcome int

const (
	// OutcomeSuccess means the step applied its action.
	OutcomeSuccess Outcome = iota
	// OutcomeSkipped means the desired state was already satisfied.
	OutcomeSkipped
	// OutcomeFailed means the step could not reconcile.
	OutcomeFailed
)

// String returns the outcome name for logs and status lines.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records the outcome of one step. Results are created per step and
// discarded after reporting; nothing persists across runs.
type Result struct {
	// StepID identifies the step that produced this result.
	StepID string

	// Outcome classifies the reconciliation.
	Outcome Outcome

	// Diagnostic is human-readable detail: what was done, what was already
	// satisfied, or why the step failed.
	Diagnostic string

	// Err holds the failure cause for OutcomeFailed results, wrapping one
	// of the package's sentinel errors.
	Err error
}

func successResult(stepID, diagnostic string) Result {
	return Result{StepID: stepID, Outcome: OutcomeSuccess, Diagnostic: diagnostic}
}

func skippedResult(stepID, diagnostic string) Result {
	return Result{StepID: stepID, Outcome: OutcomeSkipped, Diagnostic: diagnostic}
}

func failedResult(stepID string, err error) Result {
	return Result{StepID: stepID, Outcome: OutcomeFailed, Diagnostic: err.Error(), Err: err}
}
