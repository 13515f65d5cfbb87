package v1alpha1

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// Group is the API group for FMAA manifests.
	Group = "fmaa.dev"
	// Version is the API version for FMAA manifests.
	Version = "v1alpha1"
	// Kind is the kind for workspace manifests.
	Kind = "Workspace"
	// APIVersion is the full API version for FMAA manifests.
	APIVersion = Group + "/" + Version
)

// --- Core Types ---

// TypeMeta identifies the schema of a manifest document.
type TypeMeta struct {
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty" mapstructure:"apiVersion"`
	Kind       string `json:"kind,omitempty"       yaml:"kind,omitempty"       mapstructure:"kind"`
}

// Workspace represents a workspace manifest including API metadata and the
// desired state of the environment.
type Workspace struct {
	TypeMeta `json:",inline" yaml:",inline" mapstructure:",squash"`

	Spec Spec `json:"spec,omitempty" yaml:"spec,omitempty" mapstructure:"spec"`
}

// Spec defines the desired state of an FMAA workspace.
type Spec struct {
	// Root is the directory every relative path in the manifest resolves
	// against. Supports ~/ expansion. Steps never rely on the process
	// working directory.
	Root string `json:"root,omitempty" yaml:"root,omitempty" mapstructure:"root"`

	// Steps is the ordered list of desired-state steps. Order matters:
	// directories must be declared before files written inside them.
	Steps []Step `json:"steps,omitempty" yaml:"steps,omitempty" mapstructure:"steps"`
}

// Step declares one desired-state reconciliation unit. Exactly one of
// Packages, Directories, or File must be set.
type Step struct {
	// Name is an optional step identifier used in status lines and results.
	// When empty, an identifier is derived from the step's payload.
	Name string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`

	// Optional steps log a warning on failure and let the run continue.
	// Required (non-optional) steps abort the run on failure.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty" mapstructure:"optional"`

	// Packages lists OS package names to ensure via the platform package
	// manager. Install order is preserved for log readability.
	Packages []string `json:"packages,omitempty" yaml:"packages,omitempty" mapstructure:"packages"`

	// Directories lists paths (relative to the root) to create, including
	// missing parents. Pre-existing directories are not an error.
	Directories []string `json:"directories,omitempty" yaml:"directories,omitempty" mapstructure:"directories"`

	// File declares a file to write verbatim (desired-state overwrite).
	File *FileSpec `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// FileSpec declares a file's target path, literal content, and optional
// permission bits.
type FileSpec struct {
	// Path is the target path relative to the root.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// Content is written byte-for-byte, overwriting any existing file.
	Content string `json:"content" yaml:"content" mapstructure:"content"`

	// Mode holds octal POSIX permission bits as a string (e.g. "0755").
	// Empty means the default file mode.
	Mode FileMode `json:"mode,omitempty" yaml:"mode,omitempty" mapstructure:"mode"`
}

// FileMode is an octal permission string such as "0755". A string keeps the
// YAML representation unambiguous (bare 0755 would parse as decimal 755).
type FileMode string

// Perm parses the mode string into permission bits. An empty mode returns
// (0, false, nil) meaning "not specified".
func (m FileMode) Perm() (os.FileMode, bool, error) {
	if m == "" {
		return 0, false, nil
	}

	bits, err := strconv.ParseUint(string(m), 8, 32)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q is not an octal mode", ErrInvalidFileMode, string(m))
	}

	if bits > 0o777 {
		return 0, false, fmt.Errorf("%w: %q exceeds 0777", ErrInvalidFileMode, string(m))
	}

	return os.FileMode(bits), true, nil
}

// ID returns the step identifier: the explicit name when set, otherwise an
// identifier derived from the step payload.
func (s Step) ID() string {
	if s.Name != "" {
		return s.Name
	}

	switch {
	case len(s.Packages) > 0:
		return "packages"
	case len(s.Directories) > 0:
		return "directories"
	case s.File != nil:
		return "file:" + s.File.Path
	default:
		return "empty"
	}
}
