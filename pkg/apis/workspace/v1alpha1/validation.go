package v1alpha1

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks the manifest for structural problems before any step runs.
// It does not touch the filesystem; runtime failures (permissions, missing
// package manager) surface during reconciliation instead.
func (w *Workspace) Validate() error {
	if w.APIVersion != "" && w.APIVersion != APIVersion {
		return fmt.Errorf("%w: %q (expected %q)", ErrInvalidAPIVersion, w.APIVersion, APIVersion)
	}

	if w.Kind != "" && w.Kind != Kind {
		return fmt.Errorf("%w: %q (expected %q)", ErrInvalidKind, w.Kind, Kind)
	}

	if strings.TrimSpace(w.Spec.Root) == "" {
		return ErrEmptyRoot
	}

	for index, step := range w.Spec.Steps {
		err := step.validate()
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", index, step.ID(), err)
		}
	}

	return nil
}

func (s Step) validate() error {
	kinds := 0
	if len(s.Packages) > 0 {
		kinds++
	}

	if len(s.Directories) > 0 {
		kinds++
	}

	if s.File != nil {
		kinds++
	}

	switch {
	case kinds == 0:
		return ErrEmptyStep
	case kinds > 1:
		return ErrAmbiguousStep
	}

	for _, name := range s.Packages {
		if strings.TrimSpace(name) == "" {
			return ErrEmptyPackageName
		}
	}

	for _, dir := range s.Directories {
		err := validateRelativePath(dir)
		if err != nil {
			return err
		}
	}

	if s.File != nil {
		err := validateRelativePath(s.File.Path)
		if err != nil {
			return err
		}

		_, _, err = s.File.Mode.Perm()
		if err != nil {
			return err
		}
	}

	return nil
}

// validateRelativePath rejects empty, absolute, and root-escaping paths.
// Manifest paths are relative to the workspace root, or home-anchored with
// a ~/ prefix (for files like ~/.termux/termux.properties).
func validateRelativePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}

	if strings.HasPrefix(path, "~/") {
		path = path[2:]
	}

	if filepath.IsAbs(path) {
		return fmt.Errorf("%w: %q is absolute, paths must be relative to the root or ~/", ErrInvalidPath, path)
	}

	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes the workspace root", ErrInvalidPath, path)
	}

	return nil
}
