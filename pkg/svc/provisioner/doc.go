// Package provisioner reconciles a live machine against a workspace
// manifest.
//
// Each step is a precondition-check-then-act unit: it inspects the current
// state, applies the minimal action to reach the desired state, and reports
// a Result. The Runner executes steps strictly in order and stops at the
// first failed required step; optional steps log a warning and the run
// continues. Re-running a completed provisioning is safe: steps either skip
// or rewrite identical state.
package provisioner
