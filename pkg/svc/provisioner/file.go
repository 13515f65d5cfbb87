package provisioner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const filePerm = 0o600

// FileStep writes a file with fixed content. The desired state is the
// content itself, so the step always rewrites the file and reports Success;
// rewriting identical bytes is still idempotent.
type FileStep struct {
	StepID     string
	IsOptional bool

	// Path is the absolute destination file path.
	Path string

	// Content is the exact byte content to write.
	Content []byte

	// Mode is applied after writing when ModeSet is true. Otherwise new files
	// get the default permission and existing files keep theirs.
	Mode    os.FileMode
	ModeSet bool
}

var _ Step = (*FileStep)(nil)

// ID implements Step.
func (s *FileStep) ID() string { return s.StepID }

// Optional implements Step.
func (s *FileStep) Optional() bool { return s.IsOptional }

// Reconcile creates the parent directory if needed and writes the content
// byte for byte, overwriting any previous version.
func (s *FileStep) Reconcile(_ context.Context) Result {
	info, err := os.Stat(s.Path)
	if err == nil && info.IsDir() {
		return failedResult(s.StepID, fmt.Errorf(
			"%w: %s exists and is a directory", ErrConfigWrite, s.Path,
		))
	}

	err = os.MkdirAll(filepath.Dir(s.Path), dirPerm)
	if err != nil {
		return failedResult(s.StepID, fmt.Errorf(
			"%w: failed to create parent of %s: %w", ErrConfigWrite, s.Path, err,
		))
	}

	err = os.WriteFile(s.Path, s.Content, filePerm)
	if err != nil {
		return failedResult(s.StepID, fmt.Errorf(
			"%w: failed to write %s: %w", ErrConfigWrite, s.Path, err,
		))
	}

	if s.ModeSet {
		err = os.Chmod(s.Path, s.Mode)
		if err != nil {
			return failedResult(s.StepID, fmt.Errorf(
				"%w: failed to set mode on %s: %w", ErrConfigWrite, s.Path, err,
			))
		}
	}

	return successResult(s.StepID, fmt.Sprintf(
		"wrote %d bytes to %s", len(s.Content), s.Path,
	))
}
