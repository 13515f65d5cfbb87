package provisioner

import (
	"context"
	"errors"
	"fmt"
	"os"
)

const dirPerm = 0o750

// DirectoryTreeStep creates a set of directories, including missing
// intermediate parents. Pre-existing directories are a no-op; a step whose
// paths all exist reports Skipped so repeated runs stay side-effect free.
type DirectoryTreeStep struct {
	StepID     string
	IsOptional bool

	// Paths are absolute directory paths to ensure.
	Paths []string
}

var _ Step = (*DirectoryTreeStep)(nil)

// ID implements Step.
func (s *DirectoryTreeStep) ID() string { return s.StepID }

// Optional implements Step.
func (s *DirectoryTreeStep) Optional() bool { return s.IsOptional }

// Reconcile creates missing directories in declaration order.
func (s *DirectoryTreeStep) Reconcile(_ context.Context) Result {
	created := 0

	for _, path := range s.Paths {
		info, err := os.Stat(path)

		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return failedResult(s.StepID, fmt.Errorf(
				"%w: %s exists and is not a directory", ErrFilesystem, path,
			))
		case !errors.Is(err, os.ErrNotExist):
			return failedResult(s.StepID, fmt.Errorf(
				"%w: failed to inspect %s: %w", ErrFilesystem, path, err,
			))
		}

		err = os.MkdirAll(path, dirPerm)
		if err != nil {
			return failedResult(s.StepID, fmt.Errorf(
				"%w: failed to create %s: %w", ErrFilesystem, path, err,
			))
		}

		created++
	}

	if created == 0 {
		return skippedResult(s.StepID, fmt.Sprintf(
			"all %d directories already present", len(s.Paths),
		))
	}

	return successResult(s.StepID, fmt.Sprintf(
		"created %d of %d directories", created, len(s.Paths),
	))
}
