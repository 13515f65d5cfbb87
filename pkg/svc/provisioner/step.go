package provisioner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Aff245/fmaa-bdi-v1/pkg/apis/workspace/v1alpha1"
	"github.com/Aff245/fmaa-bdi-v1/pkg/fileutil"
	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/pkgmgr"
)

// Step is one idempotent desired-state reconciliation unit.
type Step interface {
	// ID identifies the step in results and status lines.
	ID() string

	// Optional reports whether a failure aborts the run (false) or only
	// logs a warning (true).
	Optional() bool

	// Reconcile determines the current state, compares it to the desired
	// state, and applies the minimal action. It never relies on the process
	// working directory: all paths are absolute.
	Reconcile(ctx context.Context) Result
}

// StepsFromManifest compiles a validated manifest into executable steps with
// all paths resolved to absolute form against the manifest root. It returns
// the steps and the expanded root directory.
func StepsFromManifest(
	workspace *v1alpha1.Workspace,
	manager pkgmgr.Manager,
) ([]Step, string, error) {
	err := workspace.Validate()
	if err != nil {
		return nil, "", fmt.Errorf("invalid workspace manifest: %w", err)
	}

	root, err := fileutil.ExpandHomePath(workspace.Spec.Root)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	steps := make([]Step, 0, len(workspace.Spec.Steps))

	for _, manifestStep := range workspace.Spec.Steps {
		step, err := compileStep(manifestStep, root, manager)
		if err != nil {
			return nil, "", err
		}

		steps = append(steps, step)
	}

	return steps, root, nil
}

func compileStep(manifestStep v1alpha1.Step, root string, manager pkgmgr.Manager) (Step, error) {
	switch {
	case len(manifestStep.Packages) > 0:
		return &PackagesStep{
			StepID:     manifestStep.ID(),
			IsOptional: manifestStep.Optional,
			Packages:   manifestStep.Packages,
			Manager:    manager,
		}, nil
	case len(manifestStep.Directories) > 0:
		paths := make([]string, 0, len(manifestStep.Directories))
		for _, dir := range manifestStep.Directories {
			paths = append(paths, resolvePath(root, dir))
		}

		return &DirectoryTreeStep{
			StepID:     manifestStep.ID(),
			IsOptional: manifestStep.Optional,
			Paths:      paths,
		}, nil
	case manifestStep.File != nil:
		mode, modeSet, err := manifestStep.File.Mode.Perm()
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", manifestStep.ID(), err)
		}

		return &FileStep{
			StepID:     manifestStep.ID(),
			IsOptional: manifestStep.Optional,
			Path:       resolvePath(root, manifestStep.File.Path),
			Content:    []byte(manifestStep.File.Content),
			Mode:       mode,
			ModeSet:    modeSet,
		}, nil
	default:
		// Unreachable after Validate, kept for safety.
		return nil, fmt.Errorf("step %s: %w", manifestStep.ID(), v1alpha1.ErrEmptyStep)
	}
}

// resolvePath anchors a manifest path: ~/ paths resolve against the user's
// home directory, everything else against the workspace root.
func resolvePath(root, path string) string {
	if strings.HasPrefix(path, "~/") {
		expanded, err := fileutil.ExpandHomePath(path)
		if err == nil {
			return expanded
		}
	}

	return filepath.Join(root, path)
}
